package components

import (
	"order-engine/internal/infra/kvs"
	"order-engine/internal/infra/lock"
	repo_impl "order-engine/internal/infra/repository"
	"order-engine/internal/infra/sequence"
	"order-engine/internal/pkg/config"
	"order-engine/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewTransactionRepository,
			fx.As(new(usecase.TransactionRepository)),
		),
		fx.Annotate(
			repo_impl.NewAuthorizationRepository,
			fx.As(new(usecase.AuthorizationRepository)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(usecase.OrderRepository)),
		),
		fx.Annotate(
			NewSequenceAllocator,
			fx.As(new(usecase.SequenceAllocator)),
		),
		fx.Annotate(
			NewLockManager,
			fx.As(new(usecase.LockManager)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repo_impl.DBTX {
	return pool
}

func NewSequenceAllocator(store kvs.Store, cfg config.Config) *sequence.Allocator {
	return sequence.NewAllocator(store, cfg.Sequence.TenantPrefix, cfg.Sequence.ConfirmationScope)
}

func NewLockManager(store kvs.Store, cfg config.Config) *lock.Manager {
	return lock.NewManager(store, cfg.Lock.TTL)
}
