package response

import (
	"time"

	"order-engine/internal/domain/authorization"
	"order-engine/internal/domain/order"
	"order-engine/internal/domain/plan"
	"order-engine/internal/domain/transaction"

	"github.com/google/uuid"
)

type TransactionResponse struct {
	ID                 uuid.UUID              `json:"id"`
	Status             string                 `json:"status"`
	AgentID            uuid.UUID              `json:"agent_id"`
	Seller             SellerResponse         `json:"seller"`
	ProjectID          string                 `json:"project_id"`
	OrderNumber        *string                `json:"order_number,omitempty"`
	ConfirmationNumber *int64                 `json:"confirmation_number,omitempty"`
	Customer           CustomerResponse       `json:"customer"`
	Name               string                 `json:"name,omitempty"`
	Broker             string                 `json:"broker,omitempty"`
	Expires            time.Time              `json:"expires"`
	Result             *OrderResponse         `json:"result,omitempty"`
	PotentialActions   *plan.PotentialActions `json:"potential_actions,omitempty"`
	StartedAt          time.Time              `json:"started_at"`
	EndedAt            *time.Time             `json:"ended_at,omitempty"`
}

func FromTransaction(txn *transaction.Transaction) *TransactionResponse {
	obj := txn.Object()
	resp := &TransactionResponse{
		ID:                 txn.ID(),
		Status:             txn.Status().String(),
		AgentID:            txn.AgentID(),
		Seller:             fromSeller(txn.Seller()),
		ProjectID:          txn.Project().ID,
		OrderNumber:        obj.OrderNumber,
		ConfirmationNumber: obj.ConfirmationNumber,
		Customer:           fromCustomer(obj.Customer),
		Name:               obj.Name,
		Broker:             obj.Broker,
		Expires:            txn.Expires(),
		PotentialActions:   txn.PotentialActions(),
		StartedAt:          txn.StartedAt(),
		EndedAt:            txn.EndedAt(),
	}
	if txn.Result() != nil {
		resp.Result = FromOrder(txn.Result())
	}
	return resp
}

type AuthorizationResponse struct {
	ID            uuid.UUID             `json:"id"`
	TransactionID uuid.UUID             `json:"transaction_id"`
	Status        string                `json:"status"`
	Object        authorization.Object  `json:"object"`
	Result        *authorization.Result `json:"result,omitempty"`
	EndDate       *time.Time            `json:"end_date,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

func FromAuthorization(a *authorization.Authorization) *AuthorizationResponse {
	return &AuthorizationResponse{
		ID:            a.ID(),
		TransactionID: a.Purpose(),
		Status:        a.Status().String(),
		Object:        a.Object(),
		Result:        a.Result(),
		EndDate:       a.EndDate(),
		CreatedAt:     a.CreatedAt(),
	}
}

type ConfirmResponse struct {
	Order *OrderResponse `json:"order"`
}

func FromConfirmedOrder(ord *order.Order) *ConfirmResponse {
	return &ConfirmResponse{Order: FromOrder(ord)}
}
