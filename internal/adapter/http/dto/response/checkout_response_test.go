package response

import (
	"testing"
	"time"

	"pata_amiga/internal/domain/entities"
	"pata_amiga/internal/usecase"
)

func TestFromSubmitResult(t *testing.T) {
	t.Run("without resolution", func(t *testing.T) {
		res := FromSubmitResult(usecase.SubmitResult{State: entities.CheckoutStateAwaitingCredential, OrderID: "ord-1"})
		if res.State != "awaiting_credential" || res.OrderID != "ord-1" {
			t.Fatalf("unexpected mapped fields: %+v", res)
		}
		if res.Resolution != nil {
			t.Fatalf("expected nil resolution, got %+v", res.Resolution)
		}
	})

	t.Run("with pix resolution", func(t *testing.T) {
		expires := time.Date(2025, 4, 12, 15, 30, 0, 0, time.UTC)
		res := FromSubmitResult(usecase.SubmitResult{
			State:   entities.CheckoutStateResolved,
			OrderID: "ord-1",
			Resolution: &entities.PaymentResolution{
				OrderID:      "ord-1",
				Status:       entities.OrderStatusPendingConfirmation,
				StatusDetail: "pending_waiting_transfer",
				QRCode:       "00020126pix",
				QRCodeBase64: "aW1n",
				ExpiresAt:    &expires,
			},
		})
		if res.Resolution == nil {
			t.Fatal("expected a resolution")
		}
		if res.Resolution.Status != "pending_confirmation" || res.Resolution.QRCode != "00020126pix" {
			t.Fatalf("unexpected mapped resolution: %+v", res.Resolution)
		}
		if res.Resolution.ExpiresAt == nil || !res.Resolution.ExpiresAt.Equal(expires) {
			t.Fatalf("unexpected expiry: %+v", res.Resolution.ExpiresAt)
		}
	})
}
