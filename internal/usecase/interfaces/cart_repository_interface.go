package interfaces

import (
	"context"

	"pata_amiga/internal/domain/entities"
)

// ICartRepository abstracts DynamoDB persistence for the per-session cart.
//
// The cart use case is the only writer; no other component touches the cart
// table directly.

type ICartRepository interface {
	Get(ctx context.Context, sessionID string) (entities.Cart, error)
	Save(ctx context.Context, cart entities.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
