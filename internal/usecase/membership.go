package usecase

import (
	"context"
	"log/slog"
	"time"

	"order-engine/internal/domain/authorization"
	"order-engine/internal/domain/order"
	"order-engine/internal/domain/party"
	"order-engine/internal/infra/lock"
	"order-engine/internal/pkg/clock"

	"github.com/google/uuid"
)

const registrationWindow = 5 * time.Minute

// RegisterMembershipParams describes one recurring-membership purchase.
type RegisterMembershipParams struct {
	AgentID         uuid.UUID
	Customer        party.Person
	Seller          party.Seller
	Project         party.Project
	Offer           authorization.MembershipObject
	Price           int64
	Currency        string
	PaymentMethodID string
}

// MembershipUseCase runs the whole registration workflow: serialize per
// (agent, offer), open a transaction, attach the membership and payment
// authorize actions, confirm. The confirmed plan carries the schedule for
// the next recurring order.
type MembershipUseCase interface {
	Register(ctx context.Context, params RegisterMembershipParams) (*order.Order, error)
}

type membershipUseCaseImpl struct {
	lockManager  LockManager
	transactions TransactionUseCase
	ledger       AuthorizationLedger
	confirm      ConfirmUseCase
	clock        clock.Clock
}

func NewMembershipUseCase(
	lockManager LockManager,
	transactions TransactionUseCase,
	ledger AuthorizationLedger,
	confirm ConfirmUseCase,
	clock clock.Clock,
) MembershipUseCase {
	return &membershipUseCaseImpl{
		lockManager:  lockManager,
		transactions: transactions,
		ledger:       ledger,
		confirm:      confirm,
		clock:        clock,
	}
}

// Register acquires the per-subject lock first so the same purchaser cannot
// register the same membership twice concurrently, and releases it on every
// exit path rather than letting the TTL burn on a retry.
func (u *membershipUseCaseImpl) Register(ctx context.Context, params RegisterMembershipParams) (*order.Order, error) {
	key := lock.Key(params.AgentID.String(), params.Offer.OfferID)
	if err := u.lockManager.Acquire(ctx, key, uuid.NewString()); err != nil {
		return nil, err
	}
	defer func() {
		if releaseErr := u.lockManager.Release(ctx, key); releaseErr != nil {
			slog.Warn("failed to release registration lock", "key", key, "error", releaseErr)
		}
	}()

	txn, err := u.transactions.Start(ctx, StartTransactionParams{
		AgentID:  params.AgentID,
		Seller:   params.Seller,
		Project:  params.Project,
		Customer: params.Customer,
		Expires:  u.clock.Now().Add(registrationWindow),
		Name:     "recurring-membership-registration",
	})
	if err != nil {
		return nil, err
	}

	if _, err := u.ledger.Add(ctx, AddAuthorizationParams{
		TransactionID: txn.ID(),
		AgentID:       params.AgentID,
		Object: authorization.Object{
			Kind:       authorization.KindRecurringMembership,
			Membership: &params.Offer,
		},
		Result: authorization.Result{
			Price:    params.Price,
			Currency: params.Currency,
			AcceptedOffers: []authorization.Offer{{
				ID:   params.Offer.OfferID,
				Name: params.Offer.ProgramName,
				PriceSpec: authorization.PriceSpecification{
					Price:         params.Price,
					PriceCurrency: params.Currency,
				},
			}},
		},
	}); err != nil {
		return nil, err
	}

	if _, err := u.ledger.Add(ctx, AddAuthorizationParams{
		TransactionID: txn.ID(),
		AgentID:       params.AgentID,
		Object: authorization.Object{
			Kind: authorization.KindCardPayment,
			CardPayment: &authorization.CardPaymentObject{
				PaymentMethodID: params.PaymentMethodID,
				Amount:          params.Price,
				Currency:        params.Currency,
			},
		},
		Result: authorization.Result{
			Price:    0,
			Currency: params.Currency,
			PaymentMethod: &authorization.PaymentMethodResult{
				Kind:            authorization.PaymentMethodCreditCard,
				Name:            "CreditCard",
				PaymentMethodID: params.PaymentMethodID,
				TotalAmount:     params.Price,
				Currency:        params.Currency,
				Due:             true,
			},
		},
	}); err != nil {
		return nil, err
	}

	return u.confirm.Confirm(ctx, ConfirmParams{
		TransactionID: txn.ID(),
		AgentID:       &params.AgentID,
		OrderDate:     u.clock.Now(),
	})
}
