package request

import (
	"order-engine/internal/domain/authorization"
	"order-engine/internal/domain/party"
	"order-engine/internal/usecase"

	"github.com/google/uuid"
)

type BillingPeriodRequest struct {
	Unit   string `json:"unit" binding:"required"`
	Length int64  `json:"length" binding:"required"`
}

type MembershipOfferRequest struct {
	OfferID       string               `json:"offer_id" binding:"required"`
	ProgramName   string               `json:"program_name" binding:"required"`
	BillingPeriod BillingPeriodRequest `json:"billing_period" binding:"required"`
}

type RegisterMembershipRequest struct {
	Customer        CustomerRequest        `json:"customer" binding:"required"`
	Seller          SellerRequest          `json:"seller" binding:"required"`
	ProjectID       string                 `json:"project_id" binding:"required"`
	Offer           MembershipOfferRequest `json:"offer" binding:"required"`
	Price           int64                  `json:"price" binding:"required"`
	Currency        string                 `json:"currency" binding:"required"`
	PaymentMethodID string                 `json:"payment_method_id" binding:"required"`
}

func (r RegisterMembershipRequest) ToParams(agentID uuid.UUID) usecase.RegisterMembershipParams {
	return usecase.RegisterMembershipParams{
		AgentID:  agentID,
		Customer: r.Customer.ToDomain(),
		Seller:   r.Seller.ToDomain(),
		Project:  party.Project{ID: r.ProjectID},
		Offer: authorization.MembershipObject{
			OfferID:     r.Offer.OfferID,
			ProgramName: r.Offer.ProgramName,
			BillingPeriod: authorization.BillingPeriod{
				Unit:   authorization.PeriodUnit(r.Offer.BillingPeriod.Unit),
				Length: r.Offer.BillingPeriod.Length,
			},
		},
		Price:           r.Price,
		Currency:        r.Currency,
		PaymentMethodID: r.PaymentMethodID,
	}
}
