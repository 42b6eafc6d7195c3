//go:build unit || e2e

package builder

import (
	"time"

	"order-engine/internal/domain/authorization"

	"github.com/google/uuid"
)

// AuthorizationBuilder assembles completed authorize actions. The default is
// a reservation authorization with one accepted offer priced 1000 JPY.
type AuthorizationBuilder struct {
	TransactionID uuid.UUID
	AgentID       uuid.UUID
	Object        authorization.Object
	Result        authorization.Result
	CreatedAt     time.Time
	EndDate       time.Time
}

func NewAuthorizationBuilder() *AuthorizationBuilder {
	now := time.Date(2024, 6, 1, 11, 30, 0, 0, time.UTC)
	return &AuthorizationBuilder{
		TransactionID: uuid.New(),
		AgentID:       uuid.New(),
		Object: authorization.Object{
			Kind: authorization.KindReservation,
			Reservation: &authorization.ReservationObject{
				EventID:     "event-001",
				SeatNumbers: []string{"A-1"},
			},
		},
		Result: authorization.Result{
			Price:    1000,
			Currency: "JPY",
			AcceptedOffers: []authorization.Offer{{
				ID:   "offer-001",
				Name: "Standard Seat",
				PriceSpec: authorization.PriceSpecification{
					Price:         1000,
					PriceCurrency: "JPY",
				},
			}},
		},
		CreatedAt: now,
		EndDate:   now,
	}
}

func (b *AuthorizationBuilder) With(mutate func(*AuthorizationBuilder)) *AuthorizationBuilder {
	mutate(b)
	return b
}

func (b *AuthorizationBuilder) WithTransactionID(id uuid.UUID) *AuthorizationBuilder {
	b.TransactionID = id
	return b
}

func (b *AuthorizationBuilder) WithAgentID(id uuid.UUID) *AuthorizationBuilder {
	b.AgentID = id
	return b
}

func (b *AuthorizationBuilder) WithEndDate(t time.Time) *AuthorizationBuilder {
	b.EndDate = t
	return b
}

// AsCardPayment turns the builder into a card payment settling amount in
// currency. The seller-side price is zero: payments settle, they do not sell.
func (b *AuthorizationBuilder) AsCardPayment(amount int64, currency string, due bool) *AuthorizationBuilder {
	b.Object = authorization.Object{
		Kind: authorization.KindCardPayment,
		CardPayment: &authorization.CardPaymentObject{
			PaymentMethodID: "pm-001",
			Amount:          amount,
			Currency:        currency,
		},
	}
	b.Result = authorization.Result{
		Price:    0,
		Currency: currency,
		PaymentMethod: &authorization.PaymentMethodResult{
			Kind:            authorization.PaymentMethodCreditCard,
			Name:            "CreditCard",
			PaymentMethodID: "pm-001",
			TotalAmount:     amount,
			Currency:        currency,
			Due:             due,
		},
	}
	return b
}

func (b *AuthorizationBuilder) AsPointPayment(amount int64) *AuthorizationBuilder {
	b.Object = authorization.Object{
		Kind: authorization.KindPointPayment,
		Point: &authorization.PointPaymentObject{
			AccountID: "acct-001",
			Amount:    amount,
		},
	}
	b.Result = authorization.Result{
		Price: 0,
		PaymentMethod: &authorization.PaymentMethodResult{
			Kind:        authorization.PaymentMethodAccount,
			Name:        "Point",
			AccountID:   "acct-001",
			TotalAmount: amount,
			Currency:    "Point",
		},
	}
	return b
}

func (b *AuthorizationBuilder) AsPointAward(amount int64) *AuthorizationBuilder {
	b.Object = authorization.Object{
		Kind: authorization.KindPointAward,
		Award: &authorization.PointAwardObject{
			AccountID: "acct-001",
			Amount:    amount,
		},
	}
	b.Result = authorization.Result{
		Price: 0,
		PointAward: &authorization.PointAwardResult{
			AccountID: "acct-001",
			Amount:    amount,
		},
	}
	return b
}

func (b *AuthorizationBuilder) AsMembership(offerID, programName string, period authorization.BillingPeriod, price int64) *AuthorizationBuilder {
	b.Object = authorization.Object{
		Kind: authorization.KindRecurringMembership,
		Membership: &authorization.MembershipObject{
			OfferID:       offerID,
			ProgramName:   programName,
			BillingPeriod: period,
		},
	}
	b.Result = authorization.Result{
		Price:    price,
		Currency: "JPY",
		AcceptedOffers: []authorization.Offer{{
			ID:   offerID,
			Name: programName,
			PriceSpec: authorization.PriceSpecification{
				Price:         price,
				PriceCurrency: "JPY",
			},
		}},
	}
	return b
}

func (b *AuthorizationBuilder) BuildDomain() (*authorization.Authorization, error) {
	record, err := authorization.New(b.TransactionID, b.AgentID, b.Object, b.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := record.Complete(b.Result, b.EndDate); err != nil {
		return nil, err
	}
	return record, nil
}
