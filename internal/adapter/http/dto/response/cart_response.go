package response

import "pata_amiga/internal/domain/entities"

type CartLineItemResponse struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name,omitempty"`
	UnitPrice     float64 `json:"unit_price"`
	Quantity      int     `json:"quantity"`
	PurchaseMode  string  `json:"purchase_mode"`
	FrequencyDays int     `json:"frequency_days,omitempty"`
}

type CartResponse struct {
	SessionID string                 `json:"session_id"`
	Items     []CartLineItemResponse `json:"items"`
	Subtotal  float64                `json:"subtotal"`
	ItemCount int                    `json:"item_count"`
}

func FromCart(cart entities.Cart) CartResponse {
	items := make([]CartLineItemResponse, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, CartLineItemResponse{
			ProductID:     it.ProductID,
			Name:          it.Name,
			UnitPrice:     it.UnitPrice,
			Quantity:      it.Quantity,
			PurchaseMode:  string(it.PurchaseMode),
			FrequencyDays: it.FrequencyDays,
		})
	}
	return CartResponse{
		SessionID: cart.SessionID,
		Items:     items,
		Subtotal:  cart.Subtotal(),
		ItemCount: cart.ItemCount(),
	}
}
