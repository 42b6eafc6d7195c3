package transaction

import (
	"errors"
	"time"

	"order-engine/internal/domain/order"
	"order-engine/internal/domain/party"
	"order-engine/internal/domain/plan"

	"github.com/google/uuid"
)

var (
	ErrNotInProgress    = errors.New("transaction is not in progress")
	ErrAlreadyConfirmed = errors.New("transaction is already confirmed")
	ErrExpiresInPast    = errors.New("expiry must be in the future")
	ErrSellerRequired   = errors.New("transaction requires a seller")
	ErrAgentRequired    = errors.New("transaction requires an agent")
	ErrResultRequired   = errors.New("confirmation requires an order and a plan")
)

// Object is the mutable working state of an in-progress transaction.
// Authorize actions live in their own ledger; Object keeps the allocated
// identifiers, the purchaser snapshot and the standing subscriptions.
type Object struct {
	OrderNumber        *string                   `json:"order_number,omitempty"`
	ConfirmationNumber *int64                    `json:"confirmation_number,omitempty"`
	Customer           party.Person              `json:"customer"`
	PassportToken      string                    `json:"passport_token,omitempty"`
	OnConfirmed        []plan.NotificationTarget `json:"on_confirmed,omitempty"`
	Name               string                    `json:"name,omitempty"`
	Broker             string                    `json:"broker,omitempty"`
}

// Transaction is the unit of work tracking one purchase attempt from open
// to terminal state. result and potentialActions are absent while
// InProgress, both present once Confirmed, and never mutated after.
type Transaction struct {
	id               uuid.UUID
	status           Status
	agentID          uuid.UUID
	seller           party.Seller
	project          party.Project
	object           Object
	expires          time.Time
	result           *order.Order
	potentialActions *plan.PotentialActions
	startedAt        time.Time
	endedAt          *time.Time
}

func New(
	agentID uuid.UUID,
	seller party.Seller,
	project party.Project,
	object Object,
	expires time.Time,
	now time.Time,
) (*Transaction, error) {
	if agentID == uuid.Nil {
		return nil, ErrAgentRequired
	}
	if seller.ID == uuid.Nil {
		return nil, ErrSellerRequired
	}
	if !expires.After(now) {
		return nil, ErrExpiresInPast
	}

	return &Transaction{
		id:        uuid.New(),
		status:    StatusInProgress,
		agentID:   agentID,
		seller:    seller,
		project:   project,
		object:    object,
		expires:   expires,
		startedAt: now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	status Status,
	agentID uuid.UUID,
	seller party.Seller,
	project party.Project,
	object Object,
	expires time.Time,
	result *order.Order,
	potentialActions *plan.PotentialActions,
	startedAt time.Time,
	endedAt *time.Time,
) *Transaction {
	return &Transaction{
		id:               id,
		status:           status,
		agentID:          agentID,
		seller:           seller,
		project:          project,
		object:           object,
		expires:          expires,
		result:           result,
		potentialActions: potentialActions,
		startedAt:        startedAt,
		endedAt:          endedAt,
	}
}

// Confirm transitions to the Confirmed terminal state, setting result and
// potentialActions exactly once.
func (t *Transaction) Confirm(ord *order.Order, actions *plan.PotentialActions, now time.Time) error {
	if t.status == StatusConfirmed {
		return ErrAlreadyConfirmed
	}
	if t.status != StatusInProgress {
		return ErrNotInProgress
	}
	if ord == nil || actions == nil {
		return ErrResultRequired
	}

	t.status = StatusConfirmed
	t.result = ord
	t.potentialActions = actions
	t.endedAt = &now
	return nil
}

// IsExpiredAt reports whether the confirmation deadline has passed. The
// Expired status itself is set by an external monitor; confirm only needs
// to respect the deadline and the stored status.
func (t *Transaction) IsExpiredAt(now time.Time) bool {
	return !now.Before(t.expires)
}

// BelongsTo reports whether the claimed caller identity matches the
// transaction's agent.
func (t *Transaction) BelongsTo(agentID uuid.UUID) bool {
	return t.agentID == agentID
}

func (t *Transaction) ID() uuid.UUID                           { return t.id }
func (t *Transaction) Status() Status                          { return t.status }
func (t *Transaction) AgentID() uuid.UUID                      { return t.agentID }
func (t *Transaction) Seller() party.Seller                    { return t.seller }
func (t *Transaction) Project() party.Project                  { return t.project }
func (t *Transaction) Object() Object                          { return t.object }
func (t *Transaction) Expires() time.Time                      { return t.expires }
func (t *Transaction) Result() *order.Order                    { return t.result }
func (t *Transaction) PotentialActions() *plan.PotentialActions { return t.potentialActions }
func (t *Transaction) StartedAt() time.Time                    { return t.startedAt }
func (t *Transaction) EndedAt() *time.Time                     { return t.endedAt }
