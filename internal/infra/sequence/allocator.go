package sequence

import (
	"context"
	"fmt"
	"time"

	"order-engine/internal/domain/order"
	"order-engine/internal/infra/kvs"
	"order-engine/internal/pkg/errs"
)

const (
	orderNumberKeyPrefix        = "sequence:orderNumber:"
	confirmationNumberKeyPrefix = "sequence:confirmationNumber:"

	// bucketLifetime keeps a per-millisecond counter around just long
	// enough for stragglers; one purchase per millisecond per tenant is the
	// design assumption, so buckets are disposable.
	bucketLifetime = time.Minute
)

// Allocator issues the two human-facing identifiers. Idempotency against
// retried confirm calls is the repository's concern (conditional writes on
// the transaction document); the allocator only guarantees that every call
// yields a globally unique value.
type Allocator struct {
	store             kvs.Store
	tenantPrefix      string
	confirmationScope string
}

func NewAllocator(store kvs.Store, tenantPrefix, confirmationScope string) *Allocator {
	return &Allocator{
		store:             store,
		tenantPrefix:      tenantPrefix,
		confirmationScope: confirmationScope,
	}
}

// AllocateOrderNumber derives a per-millisecond bucket from the timestamp
// and the tenant prefix, atomically increments it, and composes the dashed,
// checksummed order number from timestamp||counter. Unique per
// (tenant, millisecond, counter); collisions within the same millisecond
// are resolved by the counter, not dropped.
func (a *Allocator) AllocateOrderNumber(ctx context.Context, at time.Time) (string, error) {
	millis := at.UnixMilli()
	bucketKey := fmt.Sprintf("%s%s:%d", orderNumberKeyPrefix, a.tenantPrefix, millis)

	counter, err := a.store.IncrBy(ctx, bucketKey, 1)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to increment order number bucket"), errs.ErrServiceUnavailable)
	}
	// The first writer sets the bucket TTL, anchored to the wall clock. The
	// order date can lag far behind it (a retried confirm reuses its original
	// date); an expiry derived from the order date could land in the past and
	// reset the counter under us.
	if counter == 1 {
		if err := a.store.PExpireAt(ctx, bucketKey, time.Now().Add(bucketLifetime)); err != nil {
			return "", errs.Mark(errs.Wrap(err, "failed to expire order number bucket"), errs.ErrServiceUnavailable)
		}
	}

	raw := fmt.Sprintf("%0*d%d", order.TimestampDigits, millis, counter)
	number, err := order.ComposeNumber(a.tenantPrefix, raw)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to compose order number"), errs.ErrServiceUnavailable)
	}
	return number, nil
}

// AllocateConfirmationNumber increments the configuration-scoped counter.
// Monotonic, not bound to the timestamp.
func (a *Allocator) AllocateConfirmationNumber(ctx context.Context) (int64, error) {
	n, err := a.store.IncrBy(ctx, confirmationNumberKeyPrefix+a.confirmationScope, 1)
	if err != nil {
		return 0, errs.Mark(errs.Wrap(err, "failed to increment confirmation number"), errs.ErrServiceUnavailable)
	}
	return n, nil
}
