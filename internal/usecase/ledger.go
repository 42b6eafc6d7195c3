package usecase

import (
	"context"
	"log/slog"

	"order-engine/internal/domain/authorization"
	"order-engine/internal/domain/transaction"
	"order-engine/internal/infra"
	"order-engine/internal/pkg/clock"
	"order-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAuthorizationNotFound = errs.New("authorize action not found")
	ErrTransactionTerminal   = errs.New("transaction is not in progress")
	ErrAgentMismatch         = errs.New("caller does not own this transaction")
	ErrWrongTransaction      = errs.New("authorize action belongs to another transaction")
)

// AddAuthorizationParams attaches one completed unit of agreed work. The
// originating subsystem has already driven the record to its outcome; the
// ledger records the agreement against the transaction.
type AddAuthorizationParams struct {
	TransactionID uuid.UUID
	AgentID       uuid.UUID
	Object        authorization.Object
	Result        authorization.Result
}

// AuthorizationLedger is the append/cancel/replace log of authorize actions
// attached to an in-progress transaction.
type AuthorizationLedger interface {
	Add(ctx context.Context, params AddAuthorizationParams) (*authorization.Authorization, error)
	Cancel(ctx context.Context, transactionID, agentID, authorizationID uuid.UUID) error
	Replace(ctx context.Context, authorizationID uuid.UUID, params AddAuthorizationParams) (*authorization.Authorization, error)
}

type authorizationLedgerImpl struct {
	transactionRepo   TransactionRepository
	authorizationRepo AuthorizationRepository
	voidHandler       VoidHandler
	clock             clock.Clock
}

func NewAuthorizationLedger(
	transactionRepo TransactionRepository,
	authorizationRepo AuthorizationRepository,
	voidHandler VoidHandler,
	clock clock.Clock,
) AuthorizationLedger {
	return &authorizationLedgerImpl{
		transactionRepo:   transactionRepo,
		authorizationRepo: authorizationRepo,
		voidHandler:       voidHandler,
		clock:             clock,
	}
}

func (u *authorizationLedgerImpl) Add(ctx context.Context, params AddAuthorizationParams) (*authorization.Authorization, error) {
	if _, err := u.guardTransaction(ctx, params.TransactionID, params.AgentID); err != nil {
		return nil, err
	}

	now := u.clock.Now()
	record, err := authorization.New(params.TransactionID, params.AgentID, params.Object, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrArgument)
	}
	if err := record.Complete(params.Result, now); err != nil {
		return nil, errs.Mark(err, errs.ErrArgument)
	}

	if err := u.authorizationRepo.Add(ctx, record); err != nil {
		return nil, errs.Mark(err, errs.ErrServiceUnavailable)
	}
	return record, nil
}

func (u *authorizationLedgerImpl) Cancel(ctx context.Context, transactionID, agentID, authorizationID uuid.UUID) error {
	if _, err := u.guardTransaction(ctx, transactionID, agentID); err != nil {
		return err
	}

	record, err := u.findRecord(ctx, transactionID, authorizationID)
	if err != nil {
		return err
	}

	// Release the external hold before the local cancel. Best effort: a
	// failed release is logged and the cancel still completes.
	if voidErr := u.voidHandler.Void(ctx, record); voidErr != nil {
		slog.Warn("failed to void external hold",
			"authorization_id", authorizationID, "error", voidErr)
	}

	if err := record.Cancel(); err != nil {
		return errs.Mark(err, errs.ErrArgument)
	}
	if err := u.authorizationRepo.Update(ctx, record); err != nil {
		return errs.Mark(err, errs.ErrServiceUnavailable)
	}
	return nil
}

func (u *authorizationLedgerImpl) Replace(ctx context.Context, authorizationID uuid.UUID, params AddAuthorizationParams) (*authorization.Authorization, error) {
	if err := u.Cancel(ctx, params.TransactionID, params.AgentID, authorizationID); err != nil {
		return nil, err
	}
	return u.Add(ctx, params)
}

// guardTransaction enforces the ledger preconditions: the transaction must
// be InProgress and the caller's claimed identity must match its agent.
func (u *authorizationLedgerImpl) guardTransaction(ctx context.Context, transactionID, agentID uuid.UUID) (*transaction.Transaction, error) {
	txn, err := u.transactionRepo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, markTransactionLookupErr(err)
	}
	if txn.Status() != transaction.StatusInProgress {
		return nil, errs.Mark(ErrTransactionTerminal, errs.ErrArgument)
	}
	if !txn.BelongsTo(agentID) {
		return nil, errs.Mark(ErrAgentMismatch, errs.ErrForbidden)
	}
	return txn, nil
}

func (u *authorizationLedgerImpl) findRecord(ctx context.Context, transactionID, authorizationID uuid.UUID) (*authorization.Authorization, error) {
	record, err := u.authorizationRepo.FindByID(ctx, authorizationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrAuthorizationNotFound, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrServiceUnavailable)
	}
	if record.Purpose() != transactionID {
		return nil, errs.Mark(ErrWrongTransaction, errs.ErrNotFound)
	}
	return record, nil
}

func markTransactionLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(ErrTransactionNotFound, errs.ErrNotFound)
	}
	return errs.Mark(err, errs.ErrServiceUnavailable)
}
