package contract

import (
	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Aggregate type constant for Contract
const AggregateTypeContract = "Contract"

// Event type constants for Contract
const (
	EventTypeContractCreated   = "ContractCreated"
	EventTypeContractPublished = "ContractPublished"
)

// ContractCreatedEvent is published when a client registers a contract
type ContractCreatedEvent struct {
	shared.BaseDomainEvent
	Code      string    `json:"code"`
	ClientID  uuid.UUID `json:"client_id"`
	ProjectID uuid.UUID `json:"project_id"`
}

// NewContractCreatedEvent creates a new ContractCreatedEvent
func NewContractCreatedEvent(c *Contract) *ContractCreatedEvent {
	return &ContractCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContractCreated, AggregateTypeContract, c.ID),
		Code:            c.Code,
		ClientID:        c.ClientID,
		ProjectID:       c.ProjectID,
	}
}

// ContractPublishedEvent is published when a contract leaves draft mode
type ContractPublishedEvent struct {
	shared.BaseDomainEvent
	Code     string            `json:"code"`
	ClientID uuid.UUID         `json:"client_id"`
	Budget   valueobject.Money `json:"budget"`
}

// NewContractPublishedEvent creates a new ContractPublishedEvent
func NewContractPublishedEvent(c *Contract) *ContractPublishedEvent {
	return &ContractPublishedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContractPublished, AggregateTypeContract, c.ID),
		Code:            c.Code,
		ClientID:        c.ClientID,
		Budget:          c.Budget,
	}
}
