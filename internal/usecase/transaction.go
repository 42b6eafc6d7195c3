package usecase

import (
	"context"
	"time"

	"order-engine/internal/domain/party"
	"order-engine/internal/domain/plan"
	"order-engine/internal/domain/transaction"
	"order-engine/internal/pkg/clock"
	"order-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrTransactionNotFound = errs.New("transaction not found")

type StartTransactionParams struct {
	AgentID       uuid.UUID
	Seller        party.Seller
	Project       party.Project
	Customer      party.Person
	Expires       time.Time
	PassportToken string
	OnConfirmed   []plan.NotificationTarget
	Name          string
	Broker        string
}

type TransactionUseCase interface {
	Start(ctx context.Context, params StartTransactionParams) (*transaction.Transaction, error)
	Get(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error)
}

type transactionUseCaseImpl struct {
	transactionRepo TransactionRepository
	clock           clock.Clock
}

func NewTransactionUseCase(transactionRepo TransactionRepository, clock clock.Clock) TransactionUseCase {
	return &transactionUseCaseImpl{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

func (u *transactionUseCaseImpl) Start(ctx context.Context, params StartTransactionParams) (*transaction.Transaction, error) {
	object := transaction.Object{
		Customer:      params.Customer,
		PassportToken: params.PassportToken,
		OnConfirmed:   params.OnConfirmed,
		Name:          params.Name,
		Broker:        params.Broker,
	}

	txn, err := transaction.New(params.AgentID, params.Seller, params.Project, object, params.Expires, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrArgument)
	}

	if err := u.transactionRepo.Start(ctx, txn); err != nil {
		return nil, errs.Mark(err, errs.ErrServiceUnavailable)
	}
	return txn, nil
}

func (u *transactionUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	txn, err := u.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, markTransactionLookupErr(err)
	}
	return txn, nil
}
