package authorization

import "errors"

var (
	ErrInvalidKind    = errors.New("invalid authorization kind")
	ErrObjectMismatch = errors.New("object payload does not match kind")
)

// Object is the subsystem-specific payload of an authorize action, a tagged
// union keyed by Kind. Exactly one payload pointer matches the tag.
type Object struct {
	Kind        Kind                `json:"kind"`
	Reservation *ReservationObject  `json:"reservation,omitempty"`
	CardPayment *CardPaymentObject  `json:"card_payment,omitempty"`
	Point       *PointPaymentObject `json:"point_payment,omitempty"`
	Award       *PointAwardObject   `json:"point_award,omitempty"`
	Membership  *MembershipObject   `json:"membership,omitempty"`
}

type ReservationObject struct {
	EventID     string   `json:"event_id"`
	SeatNumbers []string `json:"seat_numbers"`
}

type CardPaymentObject struct {
	PaymentMethodID string `json:"payment_method_id"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
}

type PointPaymentObject struct {
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
}

type PointAwardObject struct {
	AccountID   string `json:"account_id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description,omitempty"`
}

type MembershipObject struct {
	OfferID       string        `json:"offer_id"`
	ProgramName   string        `json:"program_name"`
	BillingPeriod BillingPeriod `json:"billing_period"`
}

// Validate checks the tag and that the matching payload is present.
func (o Object) Validate() error {
	if !o.Kind.IsValid() {
		return ErrInvalidKind
	}

	ok := false
	switch o.Kind {
	case KindReservation:
		ok = o.Reservation != nil
	case KindCardPayment:
		ok = o.CardPayment != nil
	case KindPointPayment:
		ok = o.Point != nil
	case KindPointAward:
		ok = o.Award != nil
	case KindRecurringMembership:
		ok = o.Membership != nil
	}
	if !ok {
		return ErrObjectMismatch
	}
	return nil
}
