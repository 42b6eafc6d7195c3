package order

import (
	"time"

	"order-engine/internal/domain/authorization"
	"order-engine/internal/domain/party"
)

type Status string

const (
	StatusProcessing Status = "OrderProcessing"
	StatusDelivered  Status = "OrderDelivered"
	StatusReturned   Status = "OrderReturned"
)

func (s Status) String() string {
	return string(s)
}

// Well-known identifier tag names.
const (
	IdentifierConfirmationNumber = "confirmationNumber"
	IdentifierLookupID           = "confirmationLookupIdentifier"
	IdentifierLookupPass         = "confirmationLookupPass"
)

type IdentifierTag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PaymentMethod is one settled payment on a confirmed order, derived from a
// payment-type authorize action result.
type PaymentMethod struct {
	Kind            authorization.PaymentMethodKind `json:"kind"`
	Name            string                          `json:"name"`
	PaymentMethodID string                          `json:"payment_method_id,omitempty"`
	AccountID       string                          `json:"account_id,omitempty"`
	TotalAmount     int64                           `json:"total_amount"`
	Currency        string                          `json:"currency"`
}

// Order is the immutable result of a successful confirmation. It is
// assembled exactly once by BuildOrder and never mutated afterwards.
type Order struct {
	OrderNumber        string                `json:"order_number"`
	ConfirmationNumber int64                 `json:"confirmation_number"`
	Identifier         []IdentifierTag       `json:"identifier"`
	Seller             party.Seller          `json:"seller"`
	Customer           party.Person          `json:"customer"`
	AcceptedOffers     []authorization.Offer `json:"accepted_offers"`
	PaymentMethods     []PaymentMethod       `json:"payment_methods"`
	Price              int64                 `json:"price"`
	PriceCurrency      string                `json:"price_currency"`
	OrderStatus        Status                `json:"order_status"`
	OrderDate          time.Time             `json:"order_date"`
	URL                string                `json:"url,omitempty"`
}

// IdentifierValue returns the value of the named tag, or "" when absent.
func (o *Order) IdentifierValue(name string) string {
	for _, tag := range o.Identifier {
		if tag.Name == name {
			return tag.Value
		}
	}
	return ""
}
