package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pata_amiga/internal/adapter/http/handlers/mocks"
	"pata_amiga/internal/domain/entities"
	"pata_amiga/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with attempts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		now := time.Now().UTC()
		uc.EXPECT().GetOrder(gomock.Any(), "ord-1").Return(
			entities.Order{
				ID:       "ord-1",
				Status:   entities.OrderStatusPaid,
				Items:    []entities.CartLineItem{{ProductID: "p-1", UnitPrice: 25, Quantity: 2, PurchaseMode: entities.PurchaseModeOneTime}},
				Subtotal: 50,
				Total:    59.9,
			},
			[]entities.PaymentAttempt{{ID: "mp-1", OrderID: "ord-1", Instrument: entities.InstrumentCard, Status: "approved", Date: now}},
			nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "ord-1" || body["status"] != "paid" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
		if attempts, ok := body["attempts"].([]any); !ok || len(attempts) != 1 {
			t.Fatalf("expected 1 attempt in body, got %s", w.Body.String())
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		uc.EXPECT().GetOrder(gomock.Any(), "ord-404").
			Return(entities.Order{}, nil, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("repository failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		uc.EXPECT().GetOrder(gomock.Any(), "ord-1").
			Return(entities.Order{}, nil, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
