package errs

import "errors"

// Error taxonomy markers shared across usecase layers. Attach with Mark,
// check with errors.Is. Handlers map these onto HTTP statuses.
var (
	// ErrArgument marks a request or transaction state that fails a
	// precondition. Never retried automatically.
	ErrArgument = errors.New("argument")

	// ErrForbidden marks a caller identity that does not match the
	// transaction's agent.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound marks a missing transaction, authorize action, or
	// required sub-entity.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyInUse marks a uniqueness-constraint violation lost to a
	// concurrent writer (order number race).
	ErrAlreadyInUse = errors.New("already in use")

	// ErrAlreadyLocked marks lock contention; another workflow owns the
	// subject right now.
	ErrAlreadyLocked = errors.New("already locked")

	// ErrNotImplemented marks an unsupported variant of an otherwise
	// valid request (e.g. a billing period unit we cannot schedule).
	ErrNotImplemented = errors.New("not implemented")

	// ErrServiceUnavailable marks an unexpected collaborator failure
	// (sequence infrastructure, storage).
	ErrServiceUnavailable = errors.New("service unavailable")
)
