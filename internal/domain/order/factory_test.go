//go:build unit

package order_test

import (
	"testing"
	"time"

	"order-engine/internal/domain/authorization"
	"order-engine/internal/domain/order"
	"order-engine/internal/domain/party"
	"order-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type factoryFixture struct {
	transactionID uuid.UUID
	agentID       uuid.UUID
	params        order.BuildParams
}

func newFactoryFixture(t *testing.T) *factoryFixture {
	t.Helper()
	f := &factoryFixture{
		transactionID: uuid.New(),
		agentID:       uuid.New(),
	}
	f.params = order.BuildParams{
		OrderNumber:        "ORD-3123-4567-8901-2345",
		ConfirmationNumber: 42,
		Identifier: []order.IdentifierTag{
			{Name: order.IdentifierConfirmationNumber, Value: "42"},
		},
		Seller: party.Seller{ID: uuid.New(), Name: "Test Seller"},
		Customer: party.Person{
			ID:         uuid.New(),
			GivenName:  "Taro",
			FamilyName: "Yamada",
			Email:      "taro@example.com",
			Telephone:  "09012345678",
		},
		OrderDate:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		PriceCurrency: "JPY",
	}
	return f
}

func (f *factoryFixture) auth(t *testing.T, mutate func(*builder.AuthorizationBuilder)) *authorization.Authorization {
	t.Helper()
	b := builder.NewAuthorizationBuilder().
		WithTransactionID(f.transactionID).
		WithAgentID(f.agentID)
	if mutate != nil {
		mutate(b)
	}
	record, err := b.BuildDomain()
	require.NoError(t, err)
	return record
}

func TestBuildOrder(t *testing.T) {
	t.Run("reconciles a reservation settled by card", func(t *testing.T) {
		f := newFactoryFixture(t)
		f.params.Authorizations = []*authorization.Authorization{
			f.auth(t, nil),
			f.auth(t, func(b *builder.AuthorizationBuilder) { b.AsCardPayment(1000, "JPY", true) }),
		}

		ord, err := order.BuildOrder(f.params)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), ord.Price)
		assert.Equal(t, "JPY", ord.PriceCurrency)
		assert.Equal(t, order.StatusProcessing, ord.OrderStatus)
		assert.Len(t, ord.AcceptedOffers, 1)
		assert.Len(t, ord.PaymentMethods, 1)
		assert.Equal(t, int64(42), ord.ConfirmationNumber)
	})

	t.Run("rejects an empty order number", func(t *testing.T) {
		f := newFactoryFixture(t)
		f.params.OrderNumber = ""

		_, err := order.BuildOrder(f.params)
		assert.ErrorIs(t, err, order.ErrOrderNumberEmpty)
	})

	t.Run("rejects an incomplete customer profile", func(t *testing.T) {
		f := newFactoryFixture(t)
		f.params.Customer.Email = ""

		_, err := order.BuildOrder(f.params)
		assert.ErrorIs(t, err, order.ErrProfileIncomplete)
	})

	t.Run("price reconciliation", func(t *testing.T) {
		cases := []struct {
			name     string
			amount   int64
			currency string
			errIs    error
		}{
			{name: "exact match passes", amount: 1000, currency: "JPY"},
			{name: "underpayment fails", amount: 900, currency: "JPY", errIs: order.ErrPricesNotMatched},
			{name: "overpayment fails", amount: 1100, currency: "JPY", errIs: order.ErrPricesNotMatched},
			// A payment in another currency does not count toward the
			// settlement sum at all.
			{name: "foreign currency payment fails", amount: 1000, currency: "USD", errIs: order.ErrPricesNotMatched},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFactoryFixture(t)
				f.params.Authorizations = []*authorization.Authorization{
					f.auth(t, nil),
					f.auth(t, func(b *builder.AuthorizationBuilder) { b.AsCardPayment(tc.amount, tc.currency, true) }),
				}

				_, err := order.BuildOrder(f.params)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("point award cap", func(t *testing.T) {
		cases := []struct {
			name   string
			amount int64
			errIs  error
		}{
			{name: "at the cap passes", amount: order.MaxPointAwardPerOrder},
			{name: "above the cap fails", amount: order.MaxPointAwardPerOrder + 1, errIs: order.ErrPointAwardExceeds},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFactoryFixture(t)
				f.params.Authorizations = []*authorization.Authorization{
					f.auth(t, nil),
					f.auth(t, func(b *builder.AuthorizationBuilder) { b.AsCardPayment(1000, "JPY", true) }),
					f.auth(t, func(b *builder.AuthorizationBuilder) { b.AsPointAward(tc.amount) }),
				}

				_, err := order.BuildOrder(f.params)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("point balance must match exactly", func(t *testing.T) {
		cases := []struct {
			name     string
			required int64
			paid     int64
			errIs    error
		}{
			{name: "exact amount passes", required: 100, paid: 100},
			{name: "underpaid fails", required: 100, paid: 99, errIs: order.ErrPointBalance},
			{name: "overpaid fails", required: 100, paid: 101, errIs: order.ErrPointBalance},
			{name: "required but unpaid fails", required: 100, paid: 0, errIs: order.ErrPointBalance},
			{name: "paying points nobody required fails", required: 0, paid: 100, errIs: order.ErrPointBalance},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFactoryFixture(t)
				f.params.Authorizations = []*authorization.Authorization{
					f.auth(t, func(b *builder.AuthorizationBuilder) {
						b.Result.AcceptedOffers[0].PriceSpec.PointsRequired = tc.required
					}),
					f.auth(t, func(b *builder.AuthorizationBuilder) { b.AsCardPayment(1000, "JPY", true) }),
					f.auth(t, func(b *builder.AuthorizationBuilder) { b.AsPointPayment(tc.paid) }),
				}

				_, err := order.BuildOrder(f.params)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("offer eligibility by transaction volume", func(t *testing.T) {
		minVolume := int64(2000)
		f := newFactoryFixture(t)
		f.params.Authorizations = []*authorization.Authorization{
			f.auth(t, func(b *builder.AuthorizationBuilder) {
				b.Result.AcceptedOffers[0].PriceSpec.EligibleMinPrice = &minVolume
			}),
			f.auth(t, func(b *builder.AuthorizationBuilder) { b.AsCardPayment(1000, "JPY", true) }),
		}

		_, err := order.BuildOrder(f.params)
		assert.ErrorIs(t, err, order.ErrOfferIneligible)
	})

	t.Run("item count bounds", func(t *testing.T) {
		one, two := 1, 2
		cases := []struct {
			name     string
			minItems *int
			maxItems *int
			errIs    error
		}{
			{name: "within bounds passes", minItems: &one, maxItems: &one},
			{name: "below minimum fails", minItems: &two, errIs: order.ErrItemCountBounds},
			{name: "above maximum fails", maxItems: func() *int { z := 0; return &z }(), errIs: order.ErrItemCountBounds},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFactoryFixture(t)
				f.params.MinItems = tc.minItems
				f.params.MaxItems = tc.maxItems
				f.params.Authorizations = []*authorization.Authorization{
					f.auth(t, nil),
					f.auth(t, func(b *builder.AuthorizationBuilder) { b.AsCardPayment(1000, "JPY", true) }),
				}

				_, err := order.BuildOrder(f.params)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("rejects a completed record without a result", func(t *testing.T) {
		f := newFactoryFixture(t)
		broken := authorization.Reconstruct(
			uuid.New(), f.transactionID, f.agentID,
			authorization.StatusCompleted,
			authorization.Object{
				Kind:        authorization.KindReservation,
				Reservation: &authorization.ReservationObject{EventID: "event-001"},
			},
			nil, nil, time.Now(),
		)
		f.params.Authorizations = []*authorization.Authorization{broken}

		_, err := order.BuildOrder(f.params)
		assert.ErrorIs(t, err, order.ErrResultMissing)
	})
}
