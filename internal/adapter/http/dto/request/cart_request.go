package request

// CartAddItemRequest adds a product to the session cart. The unit price is a
// snapshot taken by the caller at add-time.

type CartAddItemRequest struct {
	ProductID     string  `json:"product_id" binding:"required"`
	Name          string  `json:"name"`
	UnitPrice     float64 `json:"unit_price" binding:"required"`
	Quantity      int     `json:"quantity" binding:"required"`
	PurchaseMode  string  `json:"purchase_mode" binding:"required"`
	FrequencyDays int     `json:"frequency_days"`
}

// CartSetQuantityRequest changes a line item quantity; values below 1 remove
// the item.

type CartSetQuantityRequest struct {
	Quantity int `json:"quantity"`
}
