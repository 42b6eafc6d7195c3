package components

import (
	"order-engine/internal/pkg/clock"
	"order-engine/internal/pkg/config"
	"order-engine/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewSystemClock,
		fx.Annotate(
			func() usecase.NoopVoidHandler { return usecase.NoopVoidHandler{} },
			fx.As(new(usecase.VoidHandler)),
		),
		usecase.NewTransactionUseCase,
		usecase.NewAuthorizationLedger,
		NewConfirmUseCase,
		usecase.NewOrderUseCase,
		usecase.NewMembershipUseCase,
	),
)

func NewConfirmUseCase(
	transactionRepo usecase.TransactionRepository,
	authorizationRepo usecase.AuthorizationRepository,
	sequence usecase.SequenceAllocator,
	clock clock.Clock,
	cfg config.Config,
) usecase.ConfirmUseCase {
	return usecase.NewConfirmUseCase(transactionRepo, authorizationRepo, sequence, clock, cfg.Order.PriceCurrency)
}
