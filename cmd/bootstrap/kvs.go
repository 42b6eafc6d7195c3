package bootstrap

import (
	"context"

	"order-engine/internal/infra/kvs"
	"order-engine/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var KVSModule = fx.Module("kvs",
	fx.Provide(
		NewRedisClient,
		kvs.NewStore,
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := kvs.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}
