package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"order-engine/internal/domain/authorization"
	"order-engine/internal/domain/order"
	"order-engine/internal/domain/party"
	"order-engine/internal/domain/plan"
	"order-engine/internal/domain/transaction"
	"order-engine/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

func (r *TransactionRepository) Start(ctx context.Context, txn *transaction.Transaction) error {
	sellerJSON, err := json.Marshal(txn.Seller())
	if err != nil {
		return infra.WrapRepoErr("failed to marshal seller", err)
	}
	objectJSON, err := json.Marshal(txn.Object())
	if err != nil {
		return infra.WrapRepoErr("failed to marshal transaction object", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO transactions (id, status, agent_id, seller, project_id, object, expires, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		txn.ID(), txn.Status().String(), txn.AgentID(), sellerJSON,
		txn.Project().ID, objectJSON, txn.Expires(), txn.StartedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert transaction", err)
	}
	return nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, status, agent_id, seller, project_id, object, expires,
		       order_number, confirmation_number, result, potential_actions,
		       started_at, ended_at
		FROM transactions WHERE id = $1`, id)
	return scanTransaction(row)
}

// SetOrderNumberIfAbsent writes the allocated number only when none is set
// yet, then returns whatever the transaction currently holds. This is the
// idempotency backbone: a retried confirm observes the first allocation.
func (r *TransactionRepository) SetOrderNumberIfAbsent(ctx context.Context, id uuid.UUID, number string) (string, error) {
	var current string
	err := r.pool.QueryRow(ctx, `
		UPDATE transactions SET order_number = COALESCE(order_number, $2)
		WHERE id = $1
		RETURNING order_number`, id, number).Scan(&current)
	if err != nil {
		return "", infra.WrapRepoErr("failed to set order number", err)
	}
	return current, nil
}

// SetConfirmationNumberIfAbsent mirrors SetOrderNumberIfAbsent for the
// confirmation counter.
func (r *TransactionRepository) SetConfirmationNumberIfAbsent(ctx context.Context, id uuid.UUID, number int64) (int64, error) {
	var current int64
	err := r.pool.QueryRow(ctx, `
		UPDATE transactions SET confirmation_number = COALESCE(confirmation_number, $2)
		WHERE id = $1
		RETURNING confirmation_number`, id, number).Scan(&current)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to set confirmation number", err)
	}
	return current, nil
}

// Confirm persists the terminal transition, the order, the plan and the
// snapshot of authorize actions used, atomically. A lost status race yields
// KindConflict; an order-number uniqueness race yields KindDuplicateKey.
func (r *TransactionRepository) Confirm(
	ctx context.Context,
	txn *transaction.Transaction,
	snapshot []*authorization.Authorization,
) error {
	ord := txn.Result()
	actions := txn.PotentialActions()

	resultJSON, err := json.Marshal(ord)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal order", err)
	}
	actionsJSON, err := json.Marshal(actions)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal potential actions", err)
	}
	docs := make([]authorizationDoc, len(snapshot))
	for i, a := range snapshot {
		docs[i] = toAuthorizationDoc(a)
	}
	snapshotJSON, err := json.Marshal(docs)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal authorization snapshot", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && rollbackErr != pgx.ErrTxClosed {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	tag, err := tx.Exec(ctx, `
		UPDATE transactions
		SET status = $2, result = $3, potential_actions = $4, authorizations_used = $5, ended_at = $6
		WHERE id = $1 AND status = $7`,
		txn.ID(), transaction.StatusConfirmed.String(), resultJSON, actionsJSON,
		snapshotJSON, txn.EndedAt(), transaction.StatusInProgress.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update transaction status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindConflict, "transaction left InProgress concurrently", nil)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (order_number, confirmation_number, transaction_id, data, order_date)
		VALUES ($1, $2, $3, $4, $5)`,
		ord.OrderNumber, ord.ConfirmationNumber, txn.ID(), resultJSON, ord.OrderDate,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert order", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit confirmation", err)
	}
	return nil
}

func scanTransaction(row pgx.Row) (*transaction.Transaction, error) {
	var (
		id                 uuid.UUID
		status             string
		agentID            uuid.UUID
		sellerJSON         []byte
		projectID          string
		objectJSON         []byte
		expires            time.Time
		orderNumber        *string
		confirmationNumber *int64
		resultJSON         []byte
		actionsJSON        []byte
		startedAt          time.Time
		endedAt            *time.Time
	)

	err := row.Scan(&id, &status, &agentID, &sellerJSON, &projectID, &objectJSON,
		&expires, &orderNumber, &confirmationNumber, &resultJSON, &actionsJSON,
		&startedAt, &endedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find transaction", err)
	}

	var seller party.Seller
	if err := json.Unmarshal(sellerJSON, &seller); err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal seller", err)
	}
	var object transaction.Object
	if err := json.Unmarshal(objectJSON, &object); err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal transaction object", err)
	}
	object.OrderNumber = orderNumber
	object.ConfirmationNumber = confirmationNumber

	var result *order.Order
	if len(resultJSON) > 0 {
		result = &order.Order{}
		if err := json.Unmarshal(resultJSON, result); err != nil {
			return nil, infra.WrapRepoErr("failed to unmarshal order", err)
		}
	}
	var actions *plan.PotentialActions
	if len(actionsJSON) > 0 {
		actions = &plan.PotentialActions{}
		if err := json.Unmarshal(actionsJSON, actions); err != nil {
			return nil, infra.WrapRepoErr("failed to unmarshal potential actions", err)
		}
	}

	return transaction.Reconstruct(
		id, transaction.Status(status), agentID, seller,
		party.Project{ID: projectID}, object, expires,
		result, actions, startedAt, endedAt,
	), nil
}
