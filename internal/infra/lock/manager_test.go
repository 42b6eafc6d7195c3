//go:build unit

package lock_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"order-engine/internal/infra/lock"
	"order-engine/internal/pkg/errs"
	"order-engine/tests/common/kvstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerAcquireRelease(t *testing.T) {
	ctx := context.Background()

	t.Run("acquire then contend then release", func(t *testing.T) {
		store := kvstest.NewStore()
		m := lock.NewManager(store, time.Hour)
		key := lock.Key("agent-1", "offer-1")

		require.NoError(t, m.Acquire(ctx, key, "owner-a"))

		err := m.Acquire(ctx, key, "owner-b")
		assert.ErrorIs(t, err, errs.ErrAlreadyLocked)

		require.NoError(t, m.Release(ctx, key))
		assert.NoError(t, m.Acquire(ctx, key, "owner-b"))
	})

	t.Run("release is idempotent", func(t *testing.T) {
		store := kvstest.NewStore()
		m := lock.NewManager(store, time.Hour)

		assert.NoError(t, m.Release(ctx, lock.Key("agent-1", "offer-1")))
	})

	t.Run("different sub-resources do not contend", func(t *testing.T) {
		store := kvstest.NewStore()
		m := lock.NewManager(store, time.Hour)

		require.NoError(t, m.Acquire(ctx, lock.Key("agent-1", "offer-1"), "owner-a"))
		assert.NoError(t, m.Acquire(ctx, lock.Key("agent-1", "offer-2"), "owner-a"))
		assert.NoError(t, m.Acquire(ctx, lock.Key("agent-2", "offer-1"), "owner-b"))
	})

	t.Run("store failure is not lock contention", func(t *testing.T) {
		store := kvstest.NewStore()
		store.Err = errors.New("connection refused")
		m := lock.NewManager(store, time.Hour)

		err := m.Acquire(ctx, lock.Key("agent-1", "offer-1"), "owner-a")
		assert.ErrorIs(t, err, errs.ErrServiceUnavailable)
		assert.NotErrorIs(t, err, errs.ErrAlreadyLocked)
	})

	t.Run("exactly one concurrent caller wins", func(t *testing.T) {
		store := kvstest.NewStore()
		m := lock.NewManager(store, time.Hour)
		key := lock.Key("agent-1", "offer-1")

		const callers = 32
		var won atomic.Int32
		var wg sync.WaitGroup
		start := make(chan struct{})

		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				if err := m.Acquire(ctx, key, "owner"); err == nil {
					won.Add(1)
				} else {
					assert.ErrorIs(t, err, errs.ErrAlreadyLocked)
				}
			}()
		}
		close(start)
		wg.Wait()

		assert.Equal(t, int32(1), won.Load())
	})
}
