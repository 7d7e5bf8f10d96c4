package response

import (
	"time"

	"pata_amiga/internal/domain/entities"
	"pata_amiga/internal/usecase"
)

// CheckoutResponse reports where a checkout attempt stands. Resolution is
// present once the attempt reached a terminal state; for PIX it carries the
// QR payload and its display expiry.

type CheckoutResponse struct {
	State      string              `json:"state"`
	OrderID    string              `json:"order_id,omitempty"`
	Resolution *ResolutionResponse `json:"resolution,omitempty"`
}

type ResolutionResponse struct {
	OrderID      string     `json:"order_id"`
	Status       string     `json:"status"`
	StatusDetail string     `json:"status_detail,omitempty"`
	QRCode       string     `json:"qr_code,omitempty"`
	QRCodeBase64 string     `json:"qr_code_base64,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

func FromSubmitResult(res usecase.SubmitResult) CheckoutResponse {
	out := CheckoutResponse{
		State:   string(res.State),
		OrderID: res.OrderID,
	}
	if res.Resolution != nil {
		r := FromResolution(*res.Resolution)
		out.Resolution = &r
	}
	return out
}

func FromResolution(r entities.PaymentResolution) ResolutionResponse {
	return ResolutionResponse{
		OrderID:      r.OrderID,
		Status:       string(r.Status),
		StatusDetail: r.StatusDetail,
		QRCode:       r.QRCode,
		QRCodeBase64: r.QRCodeBase64,
		ExpiresAt:    r.ExpiresAt,
	}
}
