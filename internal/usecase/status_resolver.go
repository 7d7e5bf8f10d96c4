package usecase

import (
	"time"

	"pata_amiga/internal/domain/entities"
	"pata_amiga/internal/usecase/interfaces"
)

// Gateway status vocabulary (Mercado Pago).
const (
	gatewayStatusApproved   = "approved"
	gatewayStatusAuthorized = "authorized"
	gatewayStatusPending    = "pending"
	gatewayStatusInProcess  = "in_process"
)

// ResolvePaymentStatus maps the externally-reported payment outcome onto the
// domain order status:
//
//	approved | authorized  -> Paid
//	pending  | in_process  -> PendingConfirmation
//	anything else          -> Failed
//
// authorized is the preapproval (subscription) success status. For PIX the
// resolution also carries the QR payload and a fixed 30-minute expiry; the
// expiry is display-only, the authoritative cutoff lives server-side.
func ResolvePaymentStatus(orderID string, result interfaces.GatewayResult, now time.Time) entities.PaymentResolution {
	res := entities.PaymentResolution{
		OrderID:      orderID,
		StatusDetail: result.StatusDetail,
	}

	switch result.Status {
	case gatewayStatusApproved, gatewayStatusAuthorized:
		res.Status = entities.OrderStatusPaid
	case gatewayStatusPending, gatewayStatusInProcess:
		res.Status = entities.OrderStatusPendingConfirmation
	default:
		res.Status = entities.OrderStatusFailed
	}

	if result.QRCode != "" {
		res.QRCode = result.QRCode
		res.QRCodeBase64 = result.QRCodeBase64
		expires := now.Add(entities.PixExpiry)
		res.ExpiresAt = &expires
	}
	return res
}
