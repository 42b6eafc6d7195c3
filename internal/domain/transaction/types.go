package transaction

type Status string

const (
	StatusInProgress Status = "InProgress"
	StatusConfirmed  Status = "Confirmed"
	StatusExpired    Status = "Expired"
	StatusCanceled   Status = "Canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusInProgress, StatusConfirmed, StatusExpired, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s != StatusInProgress
}
