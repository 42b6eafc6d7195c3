//go:build unit || e2e

package builder

import (
	"time"

	"order-engine/internal/domain/party"
	"order-engine/internal/domain/plan"
	"order-engine/internal/domain/transaction"

	"github.com/google/uuid"
)

type TransactionBuilder struct {
	AgentID     uuid.UUID
	Seller      party.Seller
	Project     party.Project
	Customer    party.Person
	Expires     time.Time
	Now         time.Time
	OnConfirmed []plan.NotificationTarget
	Name        string
	Broker      string
}

func NewTransactionBuilder() *TransactionBuilder {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &TransactionBuilder{
		AgentID: uuid.New(),
		Seller: party.Seller{
			ID:   uuid.New(),
			Name: "Test Seller",
			URL:  "https://seller.example.com",
		},
		Project: party.Project{ID: "test-project"},
		Customer: party.Person{
			ID:         uuid.New(),
			GivenName:  "Taro",
			FamilyName: "Yamada",
			Email:      "taro@example.com",
			Telephone:  "+81-90-1234-5678",
		},
		Expires: now.Add(time.Hour),
		Now:     now,
	}
}

func (b *TransactionBuilder) With(mutate func(*TransactionBuilder)) *TransactionBuilder {
	mutate(b)
	return b
}

func (b *TransactionBuilder) WithAgentID(id uuid.UUID) *TransactionBuilder {
	b.AgentID = id
	return b
}

func (b *TransactionBuilder) WithCustomer(p party.Person) *TransactionBuilder {
	b.Customer = p
	return b
}

func (b *TransactionBuilder) WithExpires(t time.Time) *TransactionBuilder {
	b.Expires = t
	return b
}

func (b *TransactionBuilder) BuildDomain() (*transaction.Transaction, error) {
	object := transaction.Object{
		Customer:    b.Customer,
		OnConfirmed: b.OnConfirmed,
		Name:        b.Name,
		Broker:      b.Broker,
	}
	return transaction.New(b.AgentID, b.Seller, b.Project, object, b.Expires, b.Now)
}
