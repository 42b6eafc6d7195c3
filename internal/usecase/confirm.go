package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"order-engine/internal/domain/order"
	"order-engine/internal/domain/plan"
	"order-engine/internal/domain/transaction"
	"order-engine/internal/infra"
	"order-engine/internal/pkg/clock"
	"order-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTransactionExpired  = errs.New("transaction has expired")
	ErrTransactionCanceled = errs.New("transaction is canceled")
	ErrOrderNumberTaken    = errs.New("order number already in use")
)

// ConfirmParams drives one confirmation attempt. AgentID is the caller's
// claimed identity; nil skips the ownership check (trusted internal
// callers). OrderDate doubles as the snapshot instant for the authorize
// action ledger.
type ConfirmParams struct {
	TransactionID       uuid.UUID
	AgentID             *uuid.UUID
	OrderDate           time.Time
	MinItems            *int
	MaxItems            *int
	PointAwardParams    []plan.GivePointAwardParams
	NotificationTargets []plan.NotificationTarget
}

type ConfirmUseCase interface {
	Confirm(ctx context.Context, params ConfirmParams) (*order.Order, error)
}

type confirmUseCaseImpl struct {
	transactionRepo   TransactionRepository
	authorizationRepo AuthorizationRepository
	sequence          SequenceAllocator
	clock             clock.Clock
	priceCurrency     string
}

func NewConfirmUseCase(
	transactionRepo TransactionRepository,
	authorizationRepo AuthorizationRepository,
	sequence SequenceAllocator,
	clock clock.Clock,
	priceCurrency string,
) ConfirmUseCase {
	return &confirmUseCaseImpl{
		transactionRepo:   transactionRepo,
		authorizationRepo: authorizationRepo,
		sequence:          sequence,
		clock:             clock,
		priceCurrency:     priceCurrency,
	}
}

// Confirm runs the terminal transition. Every step before the final write
// is either side-effect-free or idempotent, so a retried call re-enters
// safely and converges on the same Order.
func (u *confirmUseCaseImpl) Confirm(ctx context.Context, params ConfirmParams) (*order.Order, error) {
	txn, err := u.transactionRepo.FindByID(ctx, params.TransactionID)
	if err != nil {
		return nil, markTransactionLookupErr(err)
	}

	// Idempotent short-circuit: the primary defense against duplicate
	// confirm calls racing or retrying.
	if txn.Status() == transaction.StatusConfirmed {
		return txn.Result(), nil
	}
	switch txn.Status() {
	case transaction.StatusExpired:
		return nil, errs.Mark(ErrTransactionExpired, errs.ErrArgument)
	case transaction.StatusCanceled:
		return nil, errs.Mark(ErrTransactionCanceled, errs.ErrArgument)
	}

	if params.AgentID != nil && !txn.BelongsTo(*params.AgentID) {
		return nil, errs.Mark(ErrAgentMismatch, errs.ErrForbidden)
	}

	orderDate := params.OrderDate
	if orderDate.IsZero() {
		orderDate = u.clock.Now()
	}
	if txn.IsExpiredAt(orderDate) {
		return nil, errs.Mark(ErrTransactionExpired, errs.ErrArgument)
	}

	snapshot, err := u.authorizationRepo.ListCompleted(ctx, txn.ID(), orderDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrServiceUnavailable)
	}

	orderNumber, err := u.ensureOrderNumber(ctx, txn, orderDate)
	if err != nil {
		return nil, err
	}
	confirmationNumber, err := u.ensureConfirmationNumber(ctx, txn)
	if err != nil {
		return nil, err
	}

	identifier := []order.IdentifierTag{
		{Name: order.IdentifierConfirmationNumber, Value: strconv.FormatInt(confirmationNumber, 10)},
		{Name: order.IdentifierLookupID, Value: order.LookupIdentifier(confirmationNumber, orderDate)},
		{Name: order.IdentifierLookupPass, Value: order.LookupPass(txn.Object().Customer.Telephone)},
	}

	ord, err := order.BuildOrder(order.BuildParams{
		OrderNumber:        orderNumber,
		ConfirmationNumber: confirmationNumber,
		Identifier:         identifier,
		Seller:             txn.Seller(),
		Customer:           txn.Object().Customer,
		Authorizations:     snapshot,
		OrderDate:          orderDate,
		PriceCurrency:      u.priceCurrency,
		MinItems:           params.MinItems,
		MaxItems:           params.MaxItems,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrArgument)
	}

	actions, err := plan.Build(plan.BuildParams{
		Order:               ord,
		Authorizations:      snapshot,
		PointAwardParams:    params.PointAwardParams,
		NotificationTargets: params.NotificationTargets,
		StandingTargets:     txn.Object().OnConfirmed,
	})
	if err != nil {
		if errors.Is(err, plan.ErrUnsupportedBillingUnit) {
			return nil, errs.Mark(err, errs.ErrNotImplemented)
		}
		return nil, errs.Mark(err, errs.ErrArgument)
	}

	if err := txn.Confirm(ord, actions, u.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrArgument)
	}

	if err := u.transactionRepo.Confirm(ctx, txn, snapshot); err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			// A concurrent confirm elsewhere claimed this exact number.
			return nil, errs.Mark(ErrOrderNumberTaken, errs.ErrAlreadyInUse)
		case infra.IsKind(err, infra.KindConflict):
			// Lost the status race; if the winner was a duplicate of this
			// very confirm, its Order is already stored.
			return u.reloadConfirmed(ctx, txn.ID())
		default:
			return nil, errs.Mark(err, errs.ErrServiceUnavailable)
		}
	}

	return ord, nil
}

// ensureOrderNumber allocates an order number if the transaction has none,
// then settles on whatever the conditional write left in place. Leaving an
// allocated number behind on a failed confirm is intentional: the next
// attempt needs the same number.
func (u *confirmUseCaseImpl) ensureOrderNumber(ctx context.Context, txn *transaction.Transaction, orderDate time.Time) (string, error) {
	if current := txn.Object().OrderNumber; current != nil {
		return *current, nil
	}

	allocated, err := u.sequence.AllocateOrderNumber(ctx, orderDate)
	if err != nil {
		return "", err
	}
	number, err := u.transactionRepo.SetOrderNumberIfAbsent(ctx, txn.ID(), allocated)
	if err != nil {
		return "", errs.Mark(err, errs.ErrServiceUnavailable)
	}
	return number, nil
}

func (u *confirmUseCaseImpl) ensureConfirmationNumber(ctx context.Context, txn *transaction.Transaction) (int64, error) {
	if current := txn.Object().ConfirmationNumber; current != nil {
		return *current, nil
	}

	allocated, err := u.sequence.AllocateConfirmationNumber(ctx)
	if err != nil {
		return 0, err
	}
	number, err := u.transactionRepo.SetConfirmationNumberIfAbsent(ctx, txn.ID(), allocated)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrServiceUnavailable)
	}
	return number, nil
}

func (u *confirmUseCaseImpl) reloadConfirmed(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	txn, err := u.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, markTransactionLookupErr(err)
	}
	if txn.Status() == transaction.StatusConfirmed && txn.Result() != nil {
		return txn.Result(), nil
	}
	return nil, errs.Mark(errs.New("transaction left InProgress after conflict"), errs.ErrServiceUnavailable)
}
