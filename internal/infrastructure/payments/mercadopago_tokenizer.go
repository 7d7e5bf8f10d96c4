package payments

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"pata_amiga/internal/domain/entities"
	"pata_amiga/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/cardtoken"
	"github.com/mercadopago/sdk-go/pkg/config"
)

// MercadoPagoTokenizer turns raw card form data into a single-use card token
// via the Mercado Pago card token API. Raw card data never travels past this
// boundary. Mock mode issues local tokens.

type MercadoPagoTokenizer struct {
	tokens   cardtoken.Client
	mockMode bool
}

var _ interfaces.ICardTokenizer = (*MercadoPagoTokenizer)(nil)

func NewMercadoPagoTokenizer(accessToken string) (*MercadoPagoTokenizer, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[tokenizer][gateway] mock mode enabled")
		return &MercadoPagoTokenizer{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[tokenizer][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &MercadoPagoTokenizer{tokens: cardtoken.NewClient(cfg)}, nil
}

func (t *MercadoPagoTokenizer) Tokenize(ctx context.Context, form interfaces.CardForm) (entities.PaymentCredential, error) {
	if t != nil && t.mockMode {
		token := "mock-card-token-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[tokenizer][gateway] mock token issued")
		return entities.PaymentCredential{Kind: entities.CredentialKindCard, Token: token}, nil
	}
	if t == nil || t.tokens == nil {
		return entities.PaymentCredential{}, ErrMercadoPagoGatewayNotConfigured
	}

	req := cardtoken.Request{
		SiteID:          "MLB",
		CardNumber:      strings.ReplaceAll(form.CardNumber, " ", ""),
		ExpirationMonth: form.ExpirationMonth,
		ExpirationYear:  form.ExpirationYear,
		SecurityCode:    form.SecurityCode,
		Cardholder: &cardtoken.CardholderRequest{
			Name: form.CardholderName,
			Identification: &cardtoken.IdentificationRequest{
				Type:   "CPF",
				Number: form.TaxID,
			},
		},
	}

	resp, err := t.tokens.Create(ctx, req)
	if err != nil {
		log.Printf("[tokenizer][gateway] tokenization failed err=%v", err)
		return entities.PaymentCredential{}, err
	}
	log.Printf("[tokenizer][gateway] token issued")
	return entities.PaymentCredential{Kind: entities.CredentialKindCard, Token: resp.ID}, nil
}
