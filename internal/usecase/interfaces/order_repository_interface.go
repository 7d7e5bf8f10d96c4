package interfaces

import (
	"context"

	"pata_amiga/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// GetByIdempotencyKey is the retry-dedup lookup: a submission whose cart,
// shipping selection and session are unchanged resolves to the order created
// by the previous attempt instead of creating a new one.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByIdempotencyKey(ctx context.Context, key string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}
