package party

import (
	"strings"

	"github.com/google/uuid"
)

// Project scopes every transaction to one tenant.
type Project struct {
	ID string `json:"id"`
}

// Person is the purchaser-side party. Profile fields are a snapshot taken
// when the transaction was opened; completeness is validated at confirmation
// time, not here.
type Person struct {
	ID         uuid.UUID `json:"id"`
	GivenName  string    `json:"given_name"`
	FamilyName string    `json:"family_name"`
	Email      string    `json:"email"`
	Telephone  string    `json:"telephone"`
}

// Seller is the fulfilling party.
type Seller struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url,omitempty"`
}

// HasCompleteProfile reports whether the snapshot carries everything a
// confirmed order needs to reach the customer.
func (p Person) HasCompleteProfile() bool {
	return strings.TrimSpace(p.Email) != "" &&
		strings.TrimSpace(p.GivenName) != "" &&
		strings.TrimSpace(p.FamilyName) != "" &&
		strings.TrimSpace(p.Telephone) != ""
}
