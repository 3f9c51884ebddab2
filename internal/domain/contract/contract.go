package contract

import (
	"time"

	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Contract is an agreement between a client and a provider on a project
type Contract struct {
	shared.DraftAggregateRoot
	Code                string
	InstantiationMoment time.Time
	ProviderName        string
	CustomerName        string
	Goals               string
	Budget              valueobject.Money
	ProjectID           uuid.UUID
	ClientID            uuid.UUID
}

// Details holds the client-editable fields of a contract
type Details struct {
	Code                string
	InstantiationMoment time.Time
	ProviderName        string
	CustomerName        string
	Goals               string
	Budget              valueobject.Money
	ProjectID           uuid.UUID
}

// NewContract creates an empty draft contract owned by the client
func NewContract(clientID uuid.UUID) *Contract {
	return &Contract{
		DraftAggregateRoot: shared.NewDraftAggregateRoot(),
		ClientID:           clientID,
	}
}

// Bind copies the editable fields onto the contract
func (c *Contract) Bind(d Details) {
	c.Code = d.Code
	c.InstantiationMoment = d.InstantiationMoment
	c.ProviderName = d.ProviderName
	c.CustomerName = d.CustomerName
	c.Goals = d.Goals
	c.Budget = d.Budget
	c.ProjectID = d.ProjectID
}

// IsOwnedBy reports whether the contract belongs to the client
func (c *Contract) IsOwnedBy(clientID uuid.UUID) bool {
	return clientID != uuid.Nil && c.ClientID == clientID
}

// HasPositiveBudget reports whether the budget amount is strictly greater than zero
func (c *Contract) HasPositiveBudget() bool {
	return !c.Budget.IsEmpty() && c.Budget.IsPositive()
}

// MarkCreated queues the creation event once the contract is about to be stored
func (c *Contract) MarkCreated() {
	c.AddDomainEvent(NewContractCreatedEvent(c))
}

// Publish freezes the contract
func (c *Contract) Publish() error {
	if err := c.MarkPublished(); err != nil {
		return err
	}
	c.AddDomainEvent(NewContractPublishedEvent(c))
	return nil
}

// Edit applies details to a draft contract
func (c *Contract) Edit(d Details) error {
	if err := c.EnsureDraft(); err != nil {
		return err
	}
	c.Bind(d)
	c.IncrementVersion()
	return nil
}
