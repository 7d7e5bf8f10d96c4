package request

// CheckoutSubmitRequest starts a checkout attempt for a session.

type CheckoutSubmitRequest struct {
	Instrument      string                 `json:"instrument" binding:"required"`
	Payer           CheckoutPayerRequest   `json:"payer" binding:"required"`
	ShippingAddress CheckoutAddressRequest `json:"shipping_address" binding:"required"`
	ShippingQuote   CheckoutQuoteRequest   `json:"shipping_quote" binding:"required"`
}

type CheckoutPayerRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	TaxID     string `json:"tax_id"`
}

type CheckoutAddressRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	PostalCode string `json:"postal_code"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	RegionCode string `json:"region_code"`
}

type CheckoutQuoteRequest struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Price    float64 `json:"price"`
	Delivery string  `json:"delivery"`
}

// CheckoutCardFormRequest is the tokenizing widget callback payload. Raw card
// data is tokenized immediately and never persisted.

type CheckoutCardFormRequest struct {
	CardNumber      string `json:"card_number" binding:"required"`
	ExpirationMonth string `json:"expiration_month" binding:"required"`
	ExpirationYear  string `json:"expiration_year" binding:"required"`
	SecurityCode    string `json:"security_code" binding:"required"`
	CardholderName  string `json:"cardholder_name"`
	TaxID           string `json:"tax_id"`
	Installments    int    `json:"installments"`
	IssuerID        string `json:"issuer_id"`
	PaymentMethodID string `json:"payment_method_id"`
}
