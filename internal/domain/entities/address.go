package entities

// Address is a normalized delivery address produced by the postal resolver
// and consumed read-only by the checkout coordinator.

type Address struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	PostalCode string `json:"postal_code"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	RegionCode string `json:"region_code"`
}

// ShippingQuote is one shipping option for a resolved address.
// Exactly one quote must be selected before an order can be created.

type ShippingQuote struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Price    float64 `json:"price"`
	Delivery string  `json:"delivery"`
}
