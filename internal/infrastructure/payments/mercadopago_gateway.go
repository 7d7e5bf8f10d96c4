package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"pata_amiga/internal/domain/entities"
	"pata_amiga/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preapproval"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway submits payments and subscription preapprovals to
// Mercado Pago. Mock mode (PAYMENT_GATEWAY_MOCK) approves everything locally
// for development without sandbox credentials.

type MercadoPagoGateway struct {
	payments     payment.Client
	preapprovals preapproval.Client
	mockMode     bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		payments:     payment.NewClient(cfg),
		preapprovals: preapproval.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) CreateCardPayment(ctx context.Context, orderID string, amount float64, credential entities.PaymentCredential, payer entities.Payer) (interfaces.GatewayResult, error) {
	if g != nil && g.mockMode {
		return g.mockResult(orderID, "approved", "accredited")
	}
	if g == nil || g.payments == nil {
		return interfaces.GatewayResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	installments := credential.Installments
	if installments < 1 {
		installments = 1
	}
	req := payment.Request{
		TransactionAmount: amount,
		Token:             credential.Token,
		Installments:      installments,
		IssuerID:          credential.IssuerID,
		PaymentMethodID:   credential.PaymentMethodID,
		ExternalReference: orderID,
		Description:       fmt.Sprintf("Pedido %s", orderID),
		Payer:             toPayerRequest(payer),
	}

	log.Printf("[payment][gateway] card create start order_id=%s amount=%.2f", orderID, amount)
	resp, err := g.payments.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] card create failed order_id=%s err=%v", orderID, err)
		return interfaces.GatewayResult{}, err
	}
	log.Printf("[payment][gateway] card create success order_id=%s provider_payment_id=%d provider_status=%s", orderID, resp.ID, resp.Status)
	return fromPaymentResponse(resp)
}

func (g *MercadoPagoGateway) CreatePixPayment(ctx context.Context, orderID string, amount float64, payer entities.Payer) (interfaces.GatewayResult, error) {
	if g != nil && g.mockMode {
		res, err := g.mockResult(orderID, "pending", "pending_waiting_transfer")
		res.QRCode = "00020126mockpixcopypaste5204000053039865802BR"
		res.QRCodeBase64 = "bW9jay1waXgtcXI="
		return res, err
	}
	if g == nil || g.payments == nil {
		return interfaces.GatewayResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	req := payment.Request{
		TransactionAmount: amount,
		PaymentMethodID:   "pix",
		ExternalReference: orderID,
		Description:       fmt.Sprintf("Pedido %s", orderID),
		Payer:             toPayerRequest(payer),
	}

	log.Printf("[payment][gateway] pix create start order_id=%s amount=%.2f", orderID, amount)
	resp, err := g.payments.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] pix create failed order_id=%s err=%v", orderID, err)
		return interfaces.GatewayResult{}, err
	}
	log.Printf("[payment][gateway] pix create success order_id=%s provider_payment_id=%d provider_status=%s", orderID, resp.ID, resp.Status)
	return fromPaymentResponse(resp)
}

func (g *MercadoPagoGateway) CreateSubscription(ctx context.Context, orderID string, amount float64, frequencyDays int, credential entities.PaymentCredential, payer entities.Payer) (interfaces.GatewayResult, error) {
	if g != nil && g.mockMode {
		return g.mockResult(orderID, "authorized", "")
	}
	if g == nil || g.preapprovals == nil {
		return interfaces.GatewayResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	req := preapproval.Request{
		AutoRecurring: &preapproval.AutoRecurringRequest{
			Frequency:         frequencyDays,
			FrequencyType:     "days",
			TransactionAmount: amount,
			CurrencyID:        "BRL",
		},
		ExternalReference: orderID,
		PayerEmail:        payer.Email,
		Reason:            fmt.Sprintf("Assinatura pedido %s", orderID),
		CardTokenID:       credential.Token,
		Status:            "authorized",
	}

	log.Printf("[payment][gateway] subscription create start order_id=%s amount=%.2f frequency_days=%d", orderID, amount, frequencyDays)
	resp, err := g.preapprovals.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] subscription create failed order_id=%s err=%v", orderID, err)
		return interfaces.GatewayResult{}, err
	}
	log.Printf("[payment][gateway] subscription create success order_id=%s preapproval_id=%s provider_status=%s", orderID, resp.ID, resp.Status)

	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.GatewayResult{}, err
	}
	return interfaces.GatewayResult{
		ProviderPaymentID: resp.ID,
		Status:            resp.Status,
		RawPayload:        raw,
	}, nil
}

func toPayerRequest(p entities.Payer) *payment.PayerRequest {
	req := &payment.PayerRequest{
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
	}
	if strings.TrimSpace(p.TaxID) != "" {
		req.Identification = &payment.IdentificationRequest{
			Type:   "CPF",
			Number: p.TaxID,
		}
	}
	return req
}

func fromPaymentResponse(resp *payment.Response) (interfaces.GatewayResult, error) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.GatewayResult{}, err
	}
	return interfaces.GatewayResult{
		ProviderPaymentID: fmt.Sprintf("%d", resp.ID),
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
		QRCode:            resp.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64:      resp.PointOfInteraction.TransactionData.QRCodeBase64,
		RawPayload:        raw,
	}, nil
}

func (g *MercadoPagoGateway) mockResult(orderID, status, statusDetail string) (interfaces.GatewayResult, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := map[string]any{
		"id":                 id,
		"status":             status,
		"status_detail":      statusDetail,
		"external_reference": orderID,
		"date_created":       now,
	}
	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return interfaces.GatewayResult{}, err
	}
	log.Printf("[payment][gateway] mock create success order_id=%s provider_payment_id=%s provider_status=%s", orderID, id, status)
	return interfaces.GatewayResult{
		ProviderPaymentID: id,
		Status:            status,
		StatusDetail:      statusDetail,
		RawPayload:        b,
	}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
