package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark attaches a failure-class marker to err. Both err's own chain and the
// marker are visible to errors.Is afterwards, so call sites and handlers can
// branch on the taxonomy with plain stdlib checks.
func Mark(err error, markErr error) error {
	if err == nil {
		return nil
	}
	return &marked{cause: err, mark: markErr}
}

type marked struct {
	cause error
	mark  error
}

func (m *marked) Error() string { return m.cause.Error() }

func (m *marked) Unwrap() []error { return []error{m.cause, m.mark} }

// Format defers to the cause so %+v still prints the cockroachdb stack.
func (m *marked) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%+v", m.cause)
		return
	}
	fmt.Fprint(s, m.Error())
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
