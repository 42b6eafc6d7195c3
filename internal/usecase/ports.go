package usecase

import (
	"context"
	"time"

	"order-engine/internal/domain/authorization"
	"order-engine/internal/domain/order"
	"order-engine/internal/domain/transaction"

	"github.com/google/uuid"
)

type TransactionRepository interface {
	Start(ctx context.Context, txn *transaction.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error)
	SetOrderNumberIfAbsent(ctx context.Context, id uuid.UUID, number string) (string, error)
	SetConfirmationNumberIfAbsent(ctx context.Context, id uuid.UUID, number int64) (int64, error)
	Confirm(ctx context.Context, txn *transaction.Transaction, snapshot []*authorization.Authorization) error
}

type AuthorizationRepository interface {
	Add(ctx context.Context, a *authorization.Authorization) error
	FindByID(ctx context.Context, id uuid.UUID) (*authorization.Authorization, error)
	Update(ctx context.Context, a *authorization.Authorization) error
	ListCompleted(ctx context.Context, transactionID uuid.UUID, asOf time.Time) ([]*authorization.Authorization, error)
}

type OrderRepository interface {
	FindByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error)
	FindByConfirmation(ctx context.Context, confirmationNumber int64, pass string) (*order.Order, error)
}

type SequenceAllocator interface {
	AllocateOrderNumber(ctx context.Context, at time.Time) (string, error)
	AllocateConfirmationNumber(ctx context.Context) (int64, error)
}

type LockManager interface {
	Acquire(ctx context.Context, key, ownerToken string) error
	Release(ctx context.Context, key string) error
}

// VoidHandler releases the external hold behind an authorize action when it
// is canceled. Best effort: a failure is logged, never blocks the cancel.
type VoidHandler interface {
	Void(ctx context.Context, a *authorization.Authorization) error
}

// NoopVoidHandler is used when no subsystem integration is wired.
type NoopVoidHandler struct{}

func (NoopVoidHandler) Void(context.Context, *authorization.Authorization) error {
	return nil
}
