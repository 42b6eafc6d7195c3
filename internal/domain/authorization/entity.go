package authorization

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotStarted       = errors.New("authorization is not in started status")
	ErrAlreadyTerminal  = errors.New("authorization is already terminal")
	ErrEndDateRequired  = errors.New("completed authorization requires an end date")
	ErrPurposeRequired  = errors.New("authorization requires an owning transaction")
	ErrAgentRequired    = errors.New("authorization requires an acting agent")
	ErrNegativeAmount   = errors.New("authorization amounts cannot be negative")
)

// Authorization is one unit of agreed-but-unsettled work produced by a
// fulfillment or payment subsystem, owned by a transaction. The purpose
// field is a weak back-reference, not ownership.
type Authorization struct {
	id        uuid.UUID
	purpose   uuid.UUID // owning transaction id
	agentID   uuid.UUID
	status    Status
	object    Object
	result    *Result
	endDate   *time.Time
	createdAt time.Time
}

func New(purpose, agentID uuid.UUID, object Object, now time.Time) (*Authorization, error) {
	if purpose == uuid.Nil {
		return nil, ErrPurposeRequired
	}
	if agentID == uuid.Nil {
		return nil, ErrAgentRequired
	}
	if err := object.Validate(); err != nil {
		return nil, err
	}

	return &Authorization{
		id:        uuid.New(),
		purpose:   purpose,
		agentID:   agentID,
		status:    StatusStarted,
		object:    object,
		createdAt: now,
	}, nil
}

func Reconstruct(
	id, purpose, agentID uuid.UUID,
	status Status,
	object Object,
	result *Result,
	endDate *time.Time,
	createdAt time.Time,
) *Authorization {
	return &Authorization{
		id:        id,
		purpose:   purpose,
		agentID:   agentID,
		status:    status,
		object:    object,
		result:    result,
		endDate:   endDate,
		createdAt: createdAt,
	}
}

// Complete records the subsystem outcome. Valid only from Started.
func (a *Authorization) Complete(result Result, endDate time.Time) error {
	if a.status != StatusStarted {
		return ErrNotStarted
	}
	if result.Price < 0 {
		return ErrNegativeAmount
	}
	if result.PaymentMethod != nil && result.PaymentMethod.TotalAmount < 0 {
		return ErrNegativeAmount
	}
	if endDate.IsZero() {
		return ErrEndDateRequired
	}

	a.status = StatusCompleted
	a.result = &result
	a.endDate = &endDate
	return nil
}

// Cancel voids the agreement. Canceling a terminal record is rejected so the
// ledger can distinguish a no-op retry from a bug.
func (a *Authorization) Cancel() error {
	if a.status == StatusCanceled || a.status == StatusGivenUp {
		return ErrAlreadyTerminal
	}
	a.status = StatusCanceled
	return nil
}

// GiveUp abandons a started record that never completed.
func (a *Authorization) GiveUp() error {
	if a.status != StatusStarted {
		return ErrNotStarted
	}
	a.status = StatusGivenUp
	return nil
}

// IsCompletedBefore reports whether this record belongs in a confirmation
// snapshot taken at asOf. Records completed at or after asOf are invisible.
func (a *Authorization) IsCompletedBefore(asOf time.Time) bool {
	return a.status == StatusCompleted && a.endDate != nil && a.endDate.Before(asOf)
}

func (a *Authorization) ID() uuid.UUID        { return a.id }
func (a *Authorization) Purpose() uuid.UUID   { return a.purpose }
func (a *Authorization) AgentID() uuid.UUID   { return a.agentID }
func (a *Authorization) Status() Status       { return a.status }
func (a *Authorization) Object() Object       { return a.object }
func (a *Authorization) Result() *Result      { return a.result }
func (a *Authorization) EndDate() *time.Time  { return a.endDate }
func (a *Authorization) CreatedAt() time.Time { return a.createdAt }
