package entities

// PurchaseMode distinguishes one-time purchases from recurring subscriptions.
//
// A cart never mixes modes: subscriptions are billed through a different
// gateway flow (preapproval) and cannot share an order with one-time items.

type PurchaseMode string

const (
	PurchaseModeOneTime      PurchaseMode = "one_time"
	PurchaseModeSubscription PurchaseMode = "subscription"
)

// CartLineItem is a single product entry in a cart.
//
// UnitPrice is snapshotted at add-time; catalog price changes after the item
// was added do not retroactively change the cart.

type CartLineItem struct {
	ProductID     string       `json:"product_id"`
	Name          string       `json:"name"`
	UnitPrice     float64      `json:"unit_price"`
	Quantity      int          `json:"quantity"`
	PurchaseMode  PurchaseMode `json:"purchase_mode"`
	FrequencyDays int          `json:"frequency_days,omitempty"`
}

// Cart is the persisted set of line items for one checkout session.
//
// Items are kept in insertion order and keyed by product id (unique).
// Mutation happens exclusively through the cart use case.

type Cart struct {
	SessionID string         `json:"session_id"`
	Items     []CartLineItem `json:"items"`
}

// Mode returns the purchase mode shared by every item, or "" for an empty cart.
func (c Cart) Mode() PurchaseMode {
	if len(c.Items) == 0 {
		return ""
	}
	return c.Items[0].PurchaseMode
}

// Subtotal recomputes the items total from live state on every call.
func (c Cart) Subtotal() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}

// ItemCount is the number of units across all line items.
func (c Cart) ItemCount() int {
	var n int
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}
