package interfaces

import (
	"context"

	"pata_amiga/internal/domain/entities"
)

// IPaymentAttemptRepository abstracts DynamoDB persistence for PaymentAttempt.

type IPaymentAttemptRepository interface {
	Create(ctx context.Context, a entities.PaymentAttempt) (entities.PaymentAttempt, error)
	GetByID(ctx context.Context, id string) (entities.PaymentAttempt, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentAttempt, error)
}
