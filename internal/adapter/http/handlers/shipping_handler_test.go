package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pata_amiga/internal/adapter/http/handlers/mocks"
	"pata_amiga/internal/domain/entities"
	"pata_amiga/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestShippingHandler_ResolvePostalCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShippingUseCase(ctrl)
		h := NewShippingHandler(uc)

		r := gin.New()
		r.GET("/v1/shipping/:postal_code", h.ResolvePostalCode)

		uc.EXPECT().ResolvePostalCode(gomock.Any(), "01310100").Return(
			entities.Address{PostalCode: "01310100", Street: "Avenida Paulista", City: "São Paulo", RegionCode: "SP"},
			[]entities.ShippingQuote{
				{ID: "frete_fixo_nacional", Label: "Frete Fixo (Brasil)", Price: 9.90, Delivery: "Em até 7 dias úteis"},
				{ID: "frete_expresso", Label: "Frete Expresso", Price: 19.90, Delivery: "Em até 2 dias úteis"},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/shipping/01310100", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Address struct {
				City string `json:"city"`
			} `json:"address"`
			Quotes []struct {
				ID string `json:"id"`
			} `json:"quotes"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Address.City != "São Paulo" || len(body.Quotes) != 2 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("unknown postal code maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShippingUseCase(ctrl)
		h := NewShippingHandler(uc)

		r := gin.New()
		r.GET("/v1/shipping/:postal_code", h.ResolvePostalCode)

		uc.EXPECT().ResolvePostalCode(gomock.Any(), "99999999").
			Return(entities.Address{}, nil, interfaces.ErrPostalCodeNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/shipping/99999999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("upstream failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShippingUseCase(ctrl)
		h := NewShippingHandler(uc)

		r := gin.New()
		r.GET("/v1/shipping/:postal_code", h.ResolvePostalCode)

		uc.EXPECT().ResolvePostalCode(gomock.Any(), "01310100").
			Return(entities.Address{}, nil, errors.New("timeout"))

		req := httptest.NewRequest(http.MethodGet, "/v1/shipping/01310100", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
