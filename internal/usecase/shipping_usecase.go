package usecase

import (
	"context"
	"log"

	"pata_amiga/internal/domain/entities"
	"pata_amiga/internal/usecase/interfaces"
)

// IShippingUseCase resolves a postal code into a normalized address plus the
// shipping quotes available for it. Resolution and quoting are independent
// steps; the checkout coordinator never assumes an implicit default quote.

type IShippingUseCase interface {
	ResolvePostalCode(ctx context.Context, postalCode string) (entities.Address, []entities.ShippingQuote, error)
}

type ShippingUseCase struct {
	lookup interfaces.IPostalLookup
}

var _ IShippingUseCase = (*ShippingUseCase)(nil)

func NewShippingUseCase(lookup interfaces.IPostalLookup) *ShippingUseCase {
	return &ShippingUseCase{lookup: lookup}
}

func (s *ShippingUseCase) ResolvePostalCode(ctx context.Context, postalCode string) (entities.Address, []entities.ShippingQuote, error) {
	addr, err := s.lookup.Resolve(ctx, postalCode)
	if err != nil {
		log.Printf("[shipping][usecase] postal lookup failed postal_code=%s err=%v", postalCode, err)
		return entities.Address{}, nil, err
	}
	log.Printf("[shipping][usecase] postal lookup success postal_code=%s city=%s", addr.PostalCode, addr.City)
	return addr, Quote(addr), nil
}

// Quote returns the shipping options for an address. The storefront ships a
// fixed national table; the express option derives from it.
func Quote(_ entities.Address) []entities.ShippingQuote {
	return []entities.ShippingQuote{
		{
			ID:       "frete_fixo_nacional",
			Label:    "Frete Fixo (Brasil)",
			Price:    9.90,
			Delivery: "Em até 7 dias úteis",
		},
		{
			ID:       "frete_expresso",
			Label:    "Frete Expresso",
			Price:    19.90,
			Delivery: "Em até 2 dias úteis",
		},
	}
}
