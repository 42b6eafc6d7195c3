package response

import (
	"time"

	"order-engine/internal/domain/authorization"
	"order-engine/internal/domain/order"
	"order-engine/internal/domain/party"

	"github.com/google/uuid"
)

type CustomerResponse struct {
	ID         uuid.UUID `json:"id"`
	GivenName  string    `json:"given_name"`
	FamilyName string    `json:"family_name"`
	Email      string    `json:"email"`
	Telephone  string    `json:"telephone"`
}

type SellerResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url,omitempty"`
}

type IdentifierTagResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type PaymentMethodResponse struct {
	Kind            string `json:"kind"`
	Name            string `json:"name"`
	PaymentMethodID string `json:"payment_method_id,omitempty"`
	AccountID       string `json:"account_id,omitempty"`
	TotalAmount     int64  `json:"total_amount"`
	Currency        string `json:"currency"`
}

type AcceptedOfferResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	PriceCurrency string `json:"price_currency"`
}

type OrderResponse struct {
	OrderNumber        string                  `json:"order_number"`
	ConfirmationNumber int64                   `json:"confirmation_number"`
	Identifier         []IdentifierTagResponse `json:"identifier"`
	Seller             SellerResponse          `json:"seller"`
	Customer           CustomerResponse        `json:"customer"`
	AcceptedOffers     []AcceptedOfferResponse `json:"accepted_offers"`
	PaymentMethods     []PaymentMethodResponse `json:"payment_methods"`
	Price              int64                   `json:"price"`
	PriceCurrency      string                  `json:"price_currency"`
	OrderStatus        string                  `json:"order_status"`
	OrderDate          time.Time               `json:"order_date"`
	URL                string                  `json:"url,omitempty"`
}

func FromOrder(ord *order.Order) *OrderResponse {
	identifier := make([]IdentifierTagResponse, len(ord.Identifier))
	for i, tag := range ord.Identifier {
		identifier[i] = IdentifierTagResponse{Name: tag.Name, Value: tag.Value}
	}
	offers := make([]AcceptedOfferResponse, len(ord.AcceptedOffers))
	for i, offer := range ord.AcceptedOffers {
		offers[i] = fromAcceptedOffer(offer)
	}
	payments := make([]PaymentMethodResponse, len(ord.PaymentMethods))
	for i, pm := range ord.PaymentMethods {
		payments[i] = PaymentMethodResponse{
			Kind:            string(pm.Kind),
			Name:            pm.Name,
			PaymentMethodID: pm.PaymentMethodID,
			AccountID:       pm.AccountID,
			TotalAmount:     pm.TotalAmount,
			Currency:        pm.Currency,
		}
	}

	return &OrderResponse{
		OrderNumber:        ord.OrderNumber,
		ConfirmationNumber: ord.ConfirmationNumber,
		Identifier:         identifier,
		Seller:             fromSeller(ord.Seller),
		Customer:           fromCustomer(ord.Customer),
		AcceptedOffers:     offers,
		PaymentMethods:     payments,
		Price:              ord.Price,
		PriceCurrency:      ord.PriceCurrency,
		OrderStatus:        ord.OrderStatus.String(),
		OrderDate:          ord.OrderDate,
		URL:                ord.URL,
	}
}

func fromAcceptedOffer(offer authorization.Offer) AcceptedOfferResponse {
	return AcceptedOfferResponse{
		ID:            offer.ID,
		Name:          offer.Name,
		Price:         offer.PriceSpec.Price,
		PriceCurrency: offer.PriceSpec.PriceCurrency,
	}
}

func fromCustomer(p party.Person) CustomerResponse {
	return CustomerResponse{
		ID:         p.ID,
		GivenName:  p.GivenName,
		FamilyName: p.FamilyName,
		Email:      p.Email,
		Telephone:  p.Telephone,
	}
}

func fromSeller(s party.Seller) SellerResponse {
	return SellerResponse{ID: s.ID, Name: s.Name, URL: s.URL}
}
