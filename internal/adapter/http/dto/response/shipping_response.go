package response

import "pata_amiga/internal/domain/entities"

type AddressResponse struct {
	PostalCode string `json:"postal_code"`
	Street     string `json:"street"`
	District   string `json:"district"`
	City       string `json:"city"`
	RegionCode string `json:"region_code"`
}

type ShippingQuoteResponse struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Price    float64 `json:"price"`
	Delivery string  `json:"delivery"`
}

type ShippingResponse struct {
	Address AddressResponse         `json:"address"`
	Quotes  []ShippingQuoteResponse `json:"quotes"`
}

func FromShipping(addr entities.Address, quotes []entities.ShippingQuote) ShippingResponse {
	qs := make([]ShippingQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		qs = append(qs, ShippingQuoteResponse{ID: q.ID, Label: q.Label, Price: q.Price, Delivery: q.Delivery})
	}
	return ShippingResponse{
		Address: AddressResponse{
			PostalCode: addr.PostalCode,
			Street:     addr.Street,
			District:   addr.District,
			City:       addr.City,
			RegionCode: addr.RegionCode,
		},
		Quotes: qs,
	}
}
