package response

import (
	"time"

	"pata_amiga/internal/domain/entities"
)

type OrderResponse struct {
	ID            string                   `json:"id"`
	Status        string                   `json:"status"`
	Items         []CartLineItemResponse   `json:"items"`
	Address       AddressResponse          `json:"address"`
	ShippingQuote ShippingQuoteResponse    `json:"shipping_quote"`
	Subtotal      float64                  `json:"subtotal"`
	Total         float64                  `json:"total"`
	CreatedAt     time.Time                `json:"created_at"`
	Attempts      []PaymentAttemptResponse `json:"attempts,omitempty"`
}

type PaymentAttemptResponse struct {
	ID           string    `json:"id"`
	Instrument   string    `json:"instrument"`
	Status       string    `json:"status"`
	StatusDetail string    `json:"status_detail,omitempty"`
	QRCode       string    `json:"qr_code,omitempty"`
	Date         time.Time `json:"date"`
}

func FromOrder(o entities.Order, attempts []entities.PaymentAttempt) OrderResponse {
	items := make([]CartLineItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, CartLineItemResponse{
			ProductID:     it.ProductID,
			Name:          it.Name,
			UnitPrice:     it.UnitPrice,
			Quantity:      it.Quantity,
			PurchaseMode:  string(it.PurchaseMode),
			FrequencyDays: it.FrequencyDays,
		})
	}
	as := make([]PaymentAttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		as = append(as, PaymentAttemptResponse{
			ID:           a.ID,
			Instrument:   string(a.Instrument),
			Status:       a.Status,
			StatusDetail: a.StatusDetail,
			QRCode:       a.QRCode,
			Date:         a.Date,
		})
	}
	return OrderResponse{
		ID:     o.ID,
		Status: string(o.Status),
		Items:  items,
		Address: AddressResponse{
			PostalCode: o.Address.PostalCode,
			Street:     o.Address.Street,
			District:   o.Address.District,
			City:       o.Address.City,
			RegionCode: o.Address.RegionCode,
		},
		ShippingQuote: ShippingQuoteResponse{
			ID:       o.ShippingQuote.ID,
			Label:    o.ShippingQuote.Label,
			Price:    o.ShippingQuote.Price,
			Delivery: o.ShippingQuote.Delivery,
		},
		Subtotal:  o.Subtotal,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
		Attempts:  as,
	}
}
