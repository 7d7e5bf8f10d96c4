package entities

import (
	"encoding/json"
	"time"
)

// Instrument is the chosen payment method.

type Instrument string

const (
	InstrumentCard Instrument = "card"
	InstrumentPix  Instrument = "pix"
)

// CredentialKind discriminates PaymentCredential variants.

type CredentialKind string

const (
	CredentialKindCard CredentialKind = "card"
	CredentialKindPix  CredentialKind = "pix"
)

// PaymentCredential is the instrument-specific proof submitted to the payment
// gateway. Card carries the widget token plus the fields the tokenizing form
// reports; PIX needs no upfront credential.

type PaymentCredential struct {
	Kind            CredentialKind `json:"kind"`
	Token           string         `json:"token,omitempty"`
	Installments    int            `json:"installments,omitempty"`
	IssuerID        string         `json:"issuer_id,omitempty"`
	PaymentMethodID string         `json:"payment_method_id,omitempty"`
}

// Payer identifies who is paying. TaxID (CPF) is mandatory for PIX.

type Payer struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
}

// PaymentAttempt records one payment submission against an order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// At most one attempt per order is in flight; a new attempt may only start
// after the prior one reached a terminal gateway status.
//
// ProviderPayloadRaw keeps the original gateway response (JSON) for
// traceability/audit.

type PaymentAttempt struct {
	ID           string     `json:"id"`
	OrderID      string     `json:"order_id"`
	Instrument   Instrument `json:"instrument"`
	Status       string     `json:"status"`
	StatusDetail string     `json:"status_detail"`
	QRCode       string     `json:"qr_code,omitempty"`
	QRCodeBase64 string     `json:"qr_code_base64,omitempty"`
	Date         time.Time  `json:"date"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}

// PixExpiry is how long a PIX QR code is displayed as valid. The cutoff is
// informational; expiry is enforced server-side by the gateway.
const PixExpiry = 30 * time.Minute

// PaymentResolution is the outcome of a checkout attempt after the gateway
// status was mapped onto the domain vocabulary.

type PaymentResolution struct {
	OrderID      string      `json:"order_id"`
	Status       OrderStatus `json:"status"`
	StatusDetail string      `json:"status_detail,omitempty"`
	QRCode       string      `json:"qr_code,omitempty"`
	QRCodeBase64 string      `json:"qr_code_base64,omitempty"`
	ExpiresAt    *time.Time  `json:"expires_at,omitempty"`
}
