package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"pata_amiga/internal/domain/entities"
	"pata_amiga/internal/usecase/interfaces"
)

const defaultViaCEPBaseURL = "https://viacep.com.br"

// ViaCEPClient resolves Brazilian postal codes (CEP) through the public
// ViaCEP API: GET {base}/ws/{cep}/json/. A known code returns the street,
// district, city and region; unknown codes answer {"erro": true}.

type ViaCEPClient struct {
	baseURL string
	http    *http.Client
}

var _ interfaces.IPostalLookup = (*ViaCEPClient)(nil)

func NewViaCEPClient() *ViaCEPClient {
	base := os.Getenv("VIACEP_BASE_URL")
	if base == "" {
		base = defaultViaCEPBaseURL
	}
	return &ViaCEPClient{
		baseURL: strings.TrimRight(base, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type viaCEPResponse struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

func (c *ViaCEPClient) Resolve(ctx context.Context, postalCode string) (entities.Address, error) {
	cep := onlyDigits(postalCode)
	if len(cep) != 8 {
		log.Printf("[postal][viacep] invalid postal code postal_code=%q", postalCode)
		return entities.Address{}, interfaces.ErrPostalCodeNotFound
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entities.Address{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[postal][viacep] lookup failed postal_code=%s err=%v", cep, err)
		return entities.Address{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[postal][viacep] unexpected status postal_code=%s status=%d", cep, resp.StatusCode)
		return entities.Address{}, fmt.Errorf("viacep: unexpected status %d", resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.Address{}, err
	}
	if body.Erro {
		log.Printf("[postal][viacep] not found postal_code=%s", cep)
		return entities.Address{}, interfaces.ErrPostalCodeNotFound
	}

	log.Printf("[postal][viacep] resolved postal_code=%s city=%s uf=%s", cep, body.Localidade, body.UF)
	return entities.Address{
		PostalCode: cep,
		Street:     body.Logradouro,
		District:   body.Bairro,
		City:       body.Localidade,
		RegionCode: body.UF,
	}, nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
