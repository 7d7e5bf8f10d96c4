package interfaces

import (
	"context"

	"pata_amiga/internal/domain/entities"
)

// CardForm is the raw card data the tokenizing widget collects. It never
// leaves the widget adapter: tokenization turns it into a PaymentCredential
// and only the token travels further.

type CardForm struct {
	CardNumber      string
	ExpirationMonth string
	ExpirationYear  string
	SecurityCode    string
	CardholderName  string
	TaxID           string
	Installments    int
	IssuerID        string
	PaymentMethodID string
}

// ICardTokenizer abstracts the provider-side card tokenization (Mercado Pago
// card token API).

type ICardTokenizer interface {
	Tokenize(ctx context.Context, form CardForm) (entities.PaymentCredential, error)
}
