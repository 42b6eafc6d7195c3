package usecase

import (
	"context"

	"order-engine/internal/domain/order"
	"order-engine/internal/infra"
	"order-engine/internal/pkg/errs"
)

var ErrOrderNotFound = errs.New("order not found")

type OrderUseCase interface {
	GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error)
	FindByConfirmation(ctx context.Context, confirmationNumber int64, pass string) (*order.Order, error)
}

type orderUseCaseImpl struct {
	orderRepo OrderRepository
}

func NewOrderUseCase(orderRepo OrderRepository) OrderUseCase {
	return &orderUseCaseImpl{orderRepo: orderRepo}
}

func (u *orderUseCaseImpl) GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	if _, err := order.ParseNumber(orderNumber); err != nil {
		return nil, errs.Mark(err, errs.ErrArgument)
	}

	ord, err := u.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, markOrderLookupErr(err)
	}
	return ord, nil
}

func (u *orderUseCaseImpl) FindByConfirmation(ctx context.Context, confirmationNumber int64, pass string) (*order.Order, error) {
	ord, err := u.orderRepo.FindByConfirmation(ctx, confirmationNumber, pass)
	if err != nil {
		return nil, markOrderLookupErr(err)
	}
	return ord, nil
}

func markOrderLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(ErrOrderNotFound, errs.ErrNotFound)
	}
	return errs.Mark(err, errs.ErrServiceUnavailable)
}
