package repository

import (
	"context"
	"encoding/json"
	"time"

	"order-engine/internal/domain/authorization"
	"order-engine/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AuthorizationRepository struct {
	db DBTX
}

func NewAuthorizationRepository(db DBTX) *AuthorizationRepository {
	return &AuthorizationRepository{db: db}
}

func (r *AuthorizationRepository) Add(ctx context.Context, a *authorization.Authorization) error {
	objectJSON, resultJSON, err := marshalAuthorization(a)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO authorize_actions (id, transaction_id, agent_id, status, object, result, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID(), a.Purpose(), a.AgentID(), a.Status().String(),
		objectJSON, resultJSON, a.EndDate(), a.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert authorize action", err)
	}
	return nil
}

func (r *AuthorizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*authorization.Authorization, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, transaction_id, agent_id, status, object, result, end_date, created_at
		FROM authorize_actions WHERE id = $1`, id)

	a, err := scanAuthorization(row)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Update rewrites the mutable record fields (status, result, end date).
func (r *AuthorizationRepository) Update(ctx context.Context, a *authorization.Authorization) error {
	objectJSON, resultJSON, err := marshalAuthorization(a)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE authorize_actions
		SET status = $2, object = $3, result = $4, end_date = $5
		WHERE id = $1`,
		a.ID(), a.Status().String(), objectJSON, resultJSON, a.EndDate(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update authorize action", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "authorize action not found", nil)
	}
	return nil
}

// ListCompleted returns the confirmation snapshot: completed records whose
// end date is strictly before asOf. Records completed mid-confirmation are
// invisible to the caller.
func (r *AuthorizationRepository) ListCompleted(ctx context.Context, transactionID uuid.UUID, asOf time.Time) ([]*authorization.Authorization, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, transaction_id, agent_id, status, object, result, end_date, created_at
		FROM authorize_actions
		WHERE transaction_id = $1 AND status = $2 AND end_date < $3
		ORDER BY created_at`,
		transactionID, authorization.StatusCompleted.String(), asOf)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list completed authorize actions", err)
	}
	defer rows.Close()

	var result []*authorization.Authorization
	for rows.Next() {
		a, err := scanAuthorization(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate authorize actions", err)
	}
	return result, nil
}

func marshalAuthorization(a *authorization.Authorization) ([]byte, []byte, error) {
	objectJSON, err := json.Marshal(a.Object())
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to marshal authorization object", err)
	}
	var resultJSON []byte
	if a.Result() != nil {
		resultJSON, err = json.Marshal(a.Result())
		if err != nil {
			return nil, nil, infra.WrapRepoErr("failed to marshal authorization result", err)
		}
	}
	return objectJSON, resultJSON, nil
}

func scanAuthorization(row pgx.Row) (*authorization.Authorization, error) {
	var (
		id            uuid.UUID
		transactionID uuid.UUID
		agentID       uuid.UUID
		status        string
		objectJSON    []byte
		resultJSON    []byte
		endDate       *time.Time
		createdAt     time.Time
	)

	if err := row.Scan(&id, &transactionID, &agentID, &status, &objectJSON, &resultJSON, &endDate, &createdAt); err != nil {
		return nil, infra.WrapRepoErr("failed to find authorize action", err)
	}

	var object authorization.Object
	if err := json.Unmarshal(objectJSON, &object); err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal authorization object", err)
	}
	var result *authorization.Result
	if len(resultJSON) > 0 {
		result = &authorization.Result{}
		if err := json.Unmarshal(resultJSON, result); err != nil {
			return nil, infra.WrapRepoErr("failed to unmarshal authorization result", err)
		}
	}

	return authorization.Reconstruct(
		id, transactionID, agentID,
		authorization.Status(status), object, result, endDate, createdAt,
	), nil
}
