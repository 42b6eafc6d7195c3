package repository

import (
	"time"

	"order-engine/internal/domain/authorization"

	"github.com/google/uuid"
)

// authorizationDoc is the persisted shape of an authorize action, used both
// for ledger rows and for the confirmation snapshot stored with the
// transaction.
type authorizationDoc struct {
	ID            uuid.UUID             `json:"id"`
	TransactionID uuid.UUID             `json:"transaction_id"`
	AgentID       uuid.UUID             `json:"agent_id"`
	Status        authorization.Status  `json:"status"`
	Object        authorization.Object  `json:"object"`
	Result        *authorization.Result `json:"result,omitempty"`
	EndDate       *time.Time            `json:"end_date,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

func toAuthorizationDoc(a *authorization.Authorization) authorizationDoc {
	return authorizationDoc{
		ID:            a.ID(),
		TransactionID: a.Purpose(),
		AgentID:       a.AgentID(),
		Status:        a.Status(),
		Object:        a.Object(),
		Result:        a.Result(),
		EndDate:       a.EndDate(),
		CreatedAt:     a.CreatedAt(),
	}
}

func (d authorizationDoc) toEntity() *authorization.Authorization {
	return authorization.Reconstruct(
		d.ID, d.TransactionID, d.AgentID,
		d.Status, d.Object, d.Result, d.EndDate, d.CreatedAt,
	)
}
