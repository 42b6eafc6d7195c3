package authorization

// Offer is one accepted item derived from a reservation-type authorize
// action's result. It carries enough of the price specification for the
// reconciliation checks at confirmation time.
type Offer struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	PriceSpec PriceSpecification `json:"price_spec"`
}

type PriceSpecification struct {
	Price         int64  `json:"price"`
	PriceCurrency string `json:"price_currency"`
	// PointsRequired is the point cost implied by this offer; settled by
	// point-payment authorize actions, matched exactly at confirmation.
	PointsRequired int64 `json:"points_required,omitempty"`
	// EligibleMinPrice, when set, is the minimum total transaction volume
	// this offer may participate in.
	EligibleMinPrice *int64 `json:"eligible_min_price,omitempty"`
}

// PaymentMethodResult is the settled side of a payment authorize action.
// Due marks an authorization that still needs capture after confirmation.
type PaymentMethodResult struct {
	Kind            PaymentMethodKind `json:"kind"`
	Name            string            `json:"name"`
	PaymentMethodID string            `json:"payment_method_id,omitempty"`
	AccountID       string            `json:"account_id,omitempty"`
	TotalAmount     int64             `json:"total_amount"`
	Currency        string            `json:"currency"`
	Due             bool              `json:"due"`
}

type PointAwardResult struct {
	AccountID   string `json:"account_id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description,omitempty"`
}

// Result is the subsystem-specific outcome of a completed authorize action.
// Price is the amount the seller side is responsible for fulfilling;
// payment-type results additionally carry the purchaser-side settlement.
type Result struct {
	Price          int64                `json:"price"`
	Currency       string               `json:"currency,omitempty"`
	AcceptedOffers []Offer              `json:"accepted_offers,omitempty"`
	PaymentMethod  *PaymentMethodResult `json:"payment_method,omitempty"`
	PointAward     *PointAwardResult    `json:"point_award,omitempty"`
}
