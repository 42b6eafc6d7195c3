package request

import (
	"time"

	"order-engine/internal/domain/authorization"
	"order-engine/internal/domain/party"
	"order-engine/internal/domain/plan"
	"order-engine/internal/usecase"

	"github.com/google/uuid"
)

type CustomerRequest struct {
	ID         uuid.UUID `json:"id"`
	GivenName  string    `json:"given_name"`
	FamilyName string    `json:"family_name"`
	Email      string    `json:"email"`
	Telephone  string    `json:"telephone"`
}

func (r CustomerRequest) ToDomain() party.Person {
	return party.Person{
		ID:         r.ID,
		GivenName:  r.GivenName,
		FamilyName: r.FamilyName,
		Email:      r.Email,
		Telephone:  r.Telephone,
	}
}

type SellerRequest struct {
	ID   uuid.UUID `json:"id" binding:"required"`
	Name string    `json:"name" binding:"required"`
	URL  string    `json:"url,omitempty"`
}

func (r SellerRequest) ToDomain() party.Seller {
	return party.Seller{ID: r.ID, Name: r.Name, URL: r.URL}
}

type NotificationTargetRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	URL   string `json:"url,omitempty"`
}

func (r NotificationTargetRequest) ToDomain() plan.NotificationTarget {
	return plan.NotificationTarget{Name: r.Name, Email: r.Email, URL: r.URL}
}

type StartTransactionRequest struct {
	Seller        SellerRequest               `json:"seller" binding:"required"`
	ProjectID     string                      `json:"project_id" binding:"required"`
	Customer      CustomerRequest             `json:"customer" binding:"required"`
	Expires       time.Time                   `json:"expires" binding:"required"`
	PassportToken string                      `json:"passport_token,omitempty"`
	OnConfirmed   []NotificationTargetRequest `json:"on_confirmed,omitempty"`
	Name          string                      `json:"name,omitempty"`
	Broker        string                      `json:"broker,omitempty"`
}

func (r StartTransactionRequest) ToParams(agentID uuid.UUID) usecase.StartTransactionParams {
	targets := make([]plan.NotificationTarget, len(r.OnConfirmed))
	for i, t := range r.OnConfirmed {
		targets[i] = t.ToDomain()
	}
	return usecase.StartTransactionParams{
		AgentID:       agentID,
		Seller:        r.Seller.ToDomain(),
		Project:       party.Project{ID: r.ProjectID},
		Customer:      r.Customer.ToDomain(),
		Expires:       r.Expires,
		PassportToken: r.PassportToken,
		OnConfirmed:   targets,
		Name:          r.Name,
		Broker:        r.Broker,
	}
}

// AddAuthorizationRequest carries the object/result pair of a completed
// authorize action; both are validated again by the domain layer.
type AddAuthorizationRequest struct {
	Object authorization.Object `json:"object" binding:"required"`
	Result authorization.Result `json:"result" binding:"required"`
}

func (r AddAuthorizationRequest) ToParams(transactionID, agentID uuid.UUID) usecase.AddAuthorizationParams {
	return usecase.AddAuthorizationParams{
		TransactionID: transactionID,
		AgentID:       agentID,
		Object:        r.Object,
		Result:        r.Result,
	}
}

type PointAwardParamRequest struct {
	AccountID   string `json:"account_id" binding:"required"`
	Amount      int64  `json:"amount" binding:"required"`
	Description string `json:"description,omitempty"`
}

type ConfirmTransactionRequest struct {
	OrderDate           *time.Time                  `json:"order_date,omitempty"`
	MinItems            *int                        `json:"min_items,omitempty"`
	MaxItems            *int                        `json:"max_items,omitempty"`
	PointAwardParams    []PointAwardParamRequest    `json:"point_award_params,omitempty"`
	NotificationTargets []NotificationTargetRequest `json:"notification_targets,omitempty"`
}

func (r ConfirmTransactionRequest) ToParams(transactionID uuid.UUID, agentID *uuid.UUID) usecase.ConfirmParams {
	params := usecase.ConfirmParams{
		TransactionID: transactionID,
		AgentID:       agentID,
		MinItems:      r.MinItems,
		MaxItems:      r.MaxItems,
	}
	if r.OrderDate != nil {
		params.OrderDate = *r.OrderDate
	}
	for _, p := range r.PointAwardParams {
		params.PointAwardParams = append(params.PointAwardParams, plan.GivePointAwardParams{
			AccountID:   p.AccountID,
			Amount:      p.Amount,
			Description: p.Description,
		})
	}
	for _, t := range r.NotificationTargets {
		params.NotificationTargets = append(params.NotificationTargets, t.ToDomain())
	}
	return params
}
