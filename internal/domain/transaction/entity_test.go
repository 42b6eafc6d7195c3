//go:build unit

package transaction_test

import (
	"testing"
	"time"

	"order-engine/internal/domain/order"
	"order-engine/internal/domain/plan"
	"order-engine/internal/domain/transaction"
	"order-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionNew(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		txn, err := builder.NewTransactionBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, txn)

		assert.NotEqual(t, uuid.Nil, txn.ID())
		assert.Equal(t, transaction.StatusInProgress, txn.Status())
		assert.Nil(t, txn.Result())
		assert.Nil(t, txn.PotentialActions())
		assert.Nil(t, txn.EndedAt())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.TransactionBuilder)
			errIs  error
		}{
			{
				name:   "missing agent",
				mutate: func(b *builder.TransactionBuilder) { b.AgentID = uuid.Nil },
				errIs:  transaction.ErrAgentRequired,
			},
			{
				name:   "missing seller",
				mutate: func(b *builder.TransactionBuilder) { b.Seller.ID = uuid.Nil },
				errIs:  transaction.ErrSellerRequired,
			},
			{
				name:   "expiry in the past",
				mutate: func(b *builder.TransactionBuilder) { b.Expires = b.Now.Add(-time.Second) },
				errIs:  transaction.ErrExpiresInPast,
			},
			{
				name:   "expiry equals now",
				mutate: func(b *builder.TransactionBuilder) { b.Expires = b.Now },
				errIs:  transaction.ErrExpiresInPast,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := builder.NewTransactionBuilder().With(tc.mutate).BuildDomain()
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestTransactionConfirm(t *testing.T) {
	ord := &order.Order{OrderNumber: "ORD-3123-4567-8901-2345"}
	actions := &plan.PotentialActions{}

	t.Run("confirm sets terminal state exactly once", func(t *testing.T) {
		b := builder.NewTransactionBuilder()
		txn, err := b.BuildDomain()
		require.NoError(t, err)

		now := b.Now.Add(time.Minute)
		require.NoError(t, txn.Confirm(ord, actions, now))

		assert.Equal(t, transaction.StatusConfirmed, txn.Status())
		assert.Same(t, ord, txn.Result())
		assert.Same(t, actions, txn.PotentialActions())
		require.NotNil(t, txn.EndedAt())
		assert.Equal(t, now, *txn.EndedAt())

		err = txn.Confirm(ord, actions, now.Add(time.Second))
		assert.ErrorIs(t, err, transaction.ErrAlreadyConfirmed)
	})

	t.Run("confirm requires both order and plan", func(t *testing.T) {
		txn, err := builder.NewTransactionBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, txn.Confirm(nil, actions, time.Now()), transaction.ErrResultRequired)
		assert.ErrorIs(t, txn.Confirm(ord, nil, time.Now()), transaction.ErrResultRequired)
	})
}

func TestTransactionIsExpiredAt(t *testing.T) {
	b := builder.NewTransactionBuilder()
	txn, err := b.BuildDomain()
	require.NoError(t, err)

	assert.False(t, txn.IsExpiredAt(b.Expires.Add(-time.Second)))
	// Expiry boundary is inclusive.
	assert.True(t, txn.IsExpiredAt(b.Expires))
	assert.True(t, txn.IsExpiredAt(b.Expires.Add(time.Second)))
}

func TestTransactionBelongsTo(t *testing.T) {
	b := builder.NewTransactionBuilder()
	txn, err := b.BuildDomain()
	require.NoError(t, err)

	assert.True(t, txn.BelongsTo(b.AgentID))
	assert.False(t, txn.BelongsTo(uuid.New()))
}
