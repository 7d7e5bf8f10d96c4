package interfaces

import (
	"context"
	"encoding/json"

	"pata_amiga/internal/domain/entities"
)

// GatewayResult is the normalized outcome of a gateway call. Status and
// StatusDetail carry the provider vocabulary untranslated; the status
// resolver maps them onto the domain enum. RawPayload keeps the original
// provider response for traceability/audit.

type GatewayResult struct {
	ProviderPaymentID string
	Status            string
	StatusDetail      string
	QRCode            string
	QRCodeBase64      string
	RawPayload        json.RawMessage
}

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// Three submission shapes:
//   - card: one-time payment with a widget token
//   - pix: asynchronous bank transfer, response carries the QR payload
//   - subscription: recurring preapproval authorized with a card token

type IPaymentGateway interface {
	CreateCardPayment(ctx context.Context, orderID string, amount float64, credential entities.PaymentCredential, payer entities.Payer) (GatewayResult, error)
	CreatePixPayment(ctx context.Context, orderID string, amount float64, payer entities.Payer) (GatewayResult, error)
	CreateSubscription(ctx context.Context, orderID string, amount float64, frequencyDays int, credential entities.PaymentCredential, payer entities.Payer) (GatewayResult, error)
}
