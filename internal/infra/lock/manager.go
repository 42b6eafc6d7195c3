package lock

import (
	"context"
	"time"

	"order-engine/internal/infra/kvs"
	"order-engine/internal/pkg/errs"
)

const keyPrefix = "lock:"

// Manager is a distributed, TTL-bounded mutual-exclusion primitive keyed by
// a composite business key. The TTL bounds the damage of a crashed holder
// that never releases; callers treat TTL expiry as an implicit release.
type Manager struct {
	store kvs.Store
	ttl   time.Duration
}

func NewManager(store kvs.Store, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &Manager{store: store, ttl: ttl}
}

// Key composes the lock key for a subject and one of its sub-resources.
func Key(subjectID, subResourceID string) string {
	return subjectID + ":" + subResourceID
}

// Acquire attempts an atomic set-if-absent with expiry. Exactly one of any
// set of concurrent callers succeeds; losers get ErrAlreadyLocked, distinct
// from transport failures.
func (m *Manager) Acquire(ctx context.Context, key, ownerToken string) error {
	ok, err := m.store.SetNX(ctx, keyPrefix+key, ownerToken, m.ttl)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to acquire lock"), errs.ErrServiceUnavailable)
	}
	if !ok {
		return errs.Mark(errs.Newf("lock held: %s", key), errs.ErrAlreadyLocked)
	}
	return nil
}

// Release deletes the lock if present. Idempotent for callers: releasing an
// already-released key is not an error.
func (m *Manager) Release(ctx context.Context, key string) error {
	if _, err := m.store.Del(ctx, keyPrefix+key); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to release lock"), errs.ErrServiceUnavailable)
	}
	return nil
}
