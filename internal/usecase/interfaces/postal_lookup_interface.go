package interfaces

import (
	"context"
	"errors"

	"pata_amiga/internal/domain/entities"
)

// ErrPostalCodeNotFound is returned for malformed or unknown postal codes.
var ErrPostalCodeNotFound = errors.New("postal code not found")

// IPostalLookup abstracts the external postal-code collaborator (ViaCEP).

type IPostalLookup interface {
	Resolve(ctx context.Context, postalCode string) (entities.Address, error)
}
