package usecase

import (
	"testing"
	"time"

	"pata_amiga/internal/domain/entities"
	"pata_amiga/internal/usecase/interfaces"
)

func TestResolvePaymentStatus(t *testing.T) {
	now := time.Date(2025, 4, 12, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		status string
		want   entities.OrderStatus
	}{
		{"approved maps to paid", "approved", entities.OrderStatusPaid},
		{"authorized preapproval maps to paid", "authorized", entities.OrderStatusPaid},
		{"pending maps to pending confirmation", "pending", entities.OrderStatusPendingConfirmation},
		{"in_process maps to pending confirmation", "in_process", entities.OrderStatusPendingConfirmation},
		{"rejected maps to failed", "rejected", entities.OrderStatusFailed},
		{"cancelled maps to failed", "cancelled", entities.OrderStatusFailed},
		{"unknown vocabulary maps to failed", "charged_back", entities.OrderStatusFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := ResolvePaymentStatus("ord-1", interfaces.GatewayResult{Status: tc.status, StatusDetail: "detail"}, now)
			if res.Status != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, res.Status)
			}
			if res.OrderID != "ord-1" || res.StatusDetail != "detail" {
				t.Fatalf("unexpected resolution %+v", res)
			}
			if res.ExpiresAt != nil {
				t.Fatalf("expected no expiry without a QR code, got %v", res.ExpiresAt)
			}
		})
	}

	t.Run("pix carries the qr payload and a 30 minute expiry", func(t *testing.T) {
		result := interfaces.GatewayResult{
			Status:       "pending",
			StatusDetail: "pending_waiting_transfer",
			QRCode:       "00020126pix",
			QRCodeBase64: "aW1n",
		}
		res := ResolvePaymentStatus("ord-1", result, now)
		if res.Status != entities.OrderStatusPendingConfirmation {
			t.Fatalf("expected pending confirmation, got %s", res.Status)
		}
		if res.QRCode != "00020126pix" || res.QRCodeBase64 != "aW1n" {
			t.Fatalf("expected qr payload carried over, got %+v", res)
		}
		if res.ExpiresAt == nil || !res.ExpiresAt.Equal(now.Add(30*time.Minute)) {
			t.Fatalf("expected expiry at now+30m, got %v", res.ExpiresAt)
		}
	})
}
