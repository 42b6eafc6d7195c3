package plan

import (
	"time"

	"order-engine/internal/domain/authorization"
	"order-engine/internal/domain/order"
	"order-engine/internal/domain/party"
)

// OrderContext denormalizes enough of the confirmed Order onto every action
// that the external executor can run entries independently and out of order
// without re-reading the Order.
type OrderContext struct {
	OrderNumber        string       `json:"order_number"`
	ConfirmationNumber int64        `json:"confirmation_number"`
	Seller             party.Seller `json:"seller"`
	Customer           party.Person `json:"customer"`
	Price              int64        `json:"price"`
	PriceCurrency      string       `json:"price_currency"`
	OrderDate          time.Time    `json:"order_date"`
}

// NotificationTarget is one recipient of an order notification, either
// declared on the confirm call or standing on the transaction.
type NotificationTarget struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	URL   string `json:"url,omitempty"`
}

// PayAction settles one still-due payment authorization.
type PayAction struct {
	OrderContext
	PaymentMethod authorization.PaymentMethodResult `json:"payment_method"`
}

// GivePointAwardAction distributes one incentive award.
type GivePointAwardAction struct {
	OrderContext
	AccountID   string `json:"account_id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description,omitempty"`
}

// ConfirmReservationAction finalizes one reservation authorization,
// carrying the purchaser identification tags for downstream ticket issuance.
type ConfirmReservationAction struct {
	OrderContext
	AuthorizationID     string                `json:"authorization_id"`
	EventID             string                `json:"event_id"`
	SeatNumbers         []string              `json:"seat_numbers,omitempty"`
	PurchaserIdentifier []order.IdentifierTag `json:"purchaser_identifier"`
}

// SendMessageAction notifies one declared target.
type SendMessageAction struct {
	OrderContext
	To NotificationTarget `json:"to"`
}

// InformOrderAction posts the confirmed order to a standing "on status
// changed" subscription.
type InformOrderAction struct {
	OrderContext
	Recipient NotificationTarget `json:"recipient"`
}

// ScheduleRecurringOrderAction schedules the next run of a
// recurring-membership order.
type ScheduleRecurringOrderAction struct {
	OrderContext
	OfferID     string    `json:"offer_id"`
	ProgramName string    `json:"program_name"`
	RunsAt      time.Time `json:"runs_at"`
}

// SendOrderAction is the composite dispatch entry; its nested potential
// actions run after the order has been sent to the purchaser.
type SendOrderAction struct {
	OrderContext
	PotentialActions SendOrderPotentialActions `json:"potential_actions"`
}

type SendOrderPotentialActions struct {
	ConfirmReservation []ConfirmReservationAction `json:"confirm_reservation,omitempty"`
	SendMessage        []SendMessageAction        `json:"send_message,omitempty"`
	InformOrder        []InformOrderAction        `json:"inform_order,omitempty"`
}

// PotentialActions is the declarative tree of side effects to run after
// confirmation. Built once, immutable, consumed by an external executor.
type PotentialActions struct {
	Pay                         []PayAction                    `json:"pay,omitempty"`
	GivePointAward              []GivePointAwardAction         `json:"give_point_award,omitempty"`
	RegisterRecurringMembership []ScheduleRecurringOrderAction `json:"register_recurring_membership,omitempty"`
	SendOrder                   SendOrderAction                `json:"send_order"`
}
