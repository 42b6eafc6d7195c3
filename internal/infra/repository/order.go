package repository

import (
	"context"
	"encoding/json"

	"order-engine/internal/domain/order"
	"order-engine/internal/infra"
)

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT data FROM orders WHERE order_number = $1`, orderNumber)
	return scanOrder(row.Scan)
}

// FindByConfirmation serves the customer self-service lookup flow: the
// confirmation number narrows candidates, the pass (from the order's
// identifier tags) authenticates the caller.
func (r *OrderRepository) FindByConfirmation(ctx context.Context, confirmationNumber int64, pass string) (*order.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT data FROM orders WHERE confirmation_number = $1`, confirmationNumber)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query orders by confirmation number", err)
	}
	defer rows.Close()

	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order", err)
		}
		ord := &order.Order{}
		if err := json.Unmarshal(data, ord); err != nil {
			return nil, infra.WrapRepoErr("failed to unmarshal order", err)
		}
		if ord.IdentifierValue(order.IdentifierLookupPass) == pass {
			return ord, nil
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "order not found for confirmation lookup", nil)
}

func scanOrder(scan func(dest ...any) error) (*order.Order, error) {
	var data []byte
	if err := scan(&data); err != nil {
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	ord := &order.Order{}
	if err := json.Unmarshal(data, ord); err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal order", err)
	}
	return ord, nil
}
