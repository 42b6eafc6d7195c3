package bootstrap

import (
	"order-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	KVSModule,
	TokenModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
