package authorization

// Kind discriminates the subsystem that produced an authorize action.
type Kind string

const (
	KindReservation         Kind = "reservation"
	KindCardPayment         Kind = "card_payment"
	KindPointPayment        Kind = "point_payment"
	KindPointAward          Kind = "point_award"
	KindRecurringMembership Kind = "recurring_membership"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindReservation, KindCardPayment, KindPointPayment, KindPointAward, KindRecurringMembership:
		return true
	default:
		return false
	}
}

// IsPayment reports whether authorize actions of this kind settle money or
// points on the purchaser side.
func (k Kind) IsPayment() bool {
	return k == KindCardPayment || k == KindPointPayment
}

type Status string

const (
	StatusStarted   Status = "Started"
	StatusCompleted Status = "Completed"
	StatusCanceled  Status = "Canceled"
	StatusGivenUp   Status = "GivenUp"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusStarted, StatusCompleted, StatusCanceled, StatusGivenUp:
		return true
	default:
		return false
	}
}

// PaymentMethodKind identifies how a payment authorize action settles.
type PaymentMethodKind string

const (
	PaymentMethodCreditCard PaymentMethodKind = "CreditCard"
	PaymentMethodAccount    PaymentMethodKind = "Account"
)

// PeriodUnit denominates a recurring-membership billing period. Only
// seconds are schedulable today.
type PeriodUnit string

const (
	UnitSeconds PeriodUnit = "Sec"
	UnitMonths  PeriodUnit = "Month"
)

type BillingPeriod struct {
	Unit   PeriodUnit `json:"unit"`
	Length int64      `json:"length"`
}
