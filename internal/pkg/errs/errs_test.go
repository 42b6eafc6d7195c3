//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"order-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Run("marker and cause are both visible to errors.Is", func(t *testing.T) {
		cause := errs.New("lock held: agent-1:offer-1")
		err := errs.Mark(cause, errs.ErrAlreadyLocked)

		assert.ErrorIs(t, err, errs.ErrAlreadyLocked)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("contention is distinct from unavailability", func(t *testing.T) {
		err := errs.Mark(errs.New("lock held"), errs.ErrAlreadyLocked)

		assert.NotErrorIs(t, err, errs.ErrServiceUnavailable)
	})

	t.Run("markers survive further wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("boom"), errs.ErrNotFound), "loading transaction")

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("stacked markers accumulate", func(t *testing.T) {
		err := errs.Mark(errs.Mark(errs.New("boom"), errs.ErrNotFound), errs.ErrArgument)

		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.ErrorIs(t, err, errs.ErrArgument)
	})

	t.Run("message is the cause's message", func(t *testing.T) {
		err := errs.Mark(errs.New("prices not matched"), errs.ErrArgument)

		assert.Equal(t, "prices not matched", err.Error())
		assert.Equal(t, "prices not matched", fmt.Sprintf("%v", err))
	})

	t.Run("nil cause yields nil", func(t *testing.T) {
		assert.NoError(t, errs.Mark(nil, errs.ErrArgument))
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "context"))
	})

	t.Run("wrapped cause stays in the chain", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.Wrap(cause, "failed to acquire lock")

		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
	})
}
