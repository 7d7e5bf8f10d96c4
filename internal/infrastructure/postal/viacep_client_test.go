package postal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pata_amiga/internal/usecase/interfaces"
)

func testClient(baseURL string) *ViaCEPClient {
	return &ViaCEPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 2 * time.Second},
	}
}

func TestViaCEPClient_Resolve(t *testing.T) {
	t.Run("resolves a known cep", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/ws/01310100/json/" {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"cep":"01310-100","logradouro":"Avenida Paulista","bairro":"Bela Vista","localidade":"São Paulo","uf":"SP"}`))
		}))
		defer srv.Close()

		addr, err := testClient(srv.URL).Resolve(context.Background(), "01310-100")
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if addr.Street != "Avenida Paulista" || addr.City != "São Paulo" || addr.RegionCode != "SP" {
			t.Fatalf("unexpected address %+v", addr)
		}
		if addr.PostalCode != "01310100" {
			t.Fatalf("expected normalized cep, got %s", addr.PostalCode)
		}
	})

	t.Run("unknown cep answers erro true", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"erro": true}`))
		}))
		defer srv.Close()

		_, err := testClient(srv.URL).Resolve(context.Background(), "99999999")
		if !errors.Is(err, interfaces.ErrPostalCodeNotFound) {
			t.Fatalf("expected ErrPostalCodeNotFound, got %v", err)
		}
	})

	t.Run("malformed cep fails before the network", func(t *testing.T) {
		// No server: a request would fail with a different error.
		_, err := testClient("http://127.0.0.1:0").Resolve(context.Background(), "123")
		if !errors.Is(err, interfaces.ErrPostalCodeNotFound) {
			t.Fatalf("expected ErrPostalCodeNotFound, got %v", err)
		}
	})

	t.Run("non-200 is an upstream error, not a miss", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := testClient(srv.URL).Resolve(context.Background(), "01310100")
		if err == nil || errors.Is(err, interfaces.ErrPostalCodeNotFound) {
			t.Fatalf("expected upstream error, got %v", err)
		}
	})
}
