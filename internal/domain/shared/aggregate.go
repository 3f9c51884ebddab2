package shared

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetVersion() int
	IncrementVersion()
	AddDomainEvent(event DomainEvent)
	GetDomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregateRoot adds optimistic versioning and pending events to BaseEntity
type BaseAggregateRoot struct {
	BaseEntity
	Version      int
	domainEvents []DomainEvent
}

// GetVersion returns the aggregate version
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion bumps the version and touches UpdatedAt
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
	a.Touch()
}

// AddDomainEvent queues an event for publication after the aggregate is saved
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// GetDomainEvents returns all pending domain events
func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents drops the pending domain events
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}

// NewBaseAggregateRoot creates a new aggregate root at version 1
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// DraftAggregateRoot is an aggregate with the draft/published lifecycle.
// A draft can be edited or deleted by its owner; a published one is frozen.
type DraftAggregateRoot struct {
	BaseAggregateRoot
	DraftMode bool
}

// NewDraftAggregateRoot creates a new aggregate in draft mode
func NewDraftAggregateRoot() DraftAggregateRoot {
	return DraftAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		DraftMode:         true,
	}
}

// IsDraft reports whether the aggregate is still unpublished
func (a *DraftAggregateRoot) IsDraft() bool {
	return a.DraftMode
}

// IsPublished reports whether the aggregate has been published
func (a *DraftAggregateRoot) IsPublished() bool {
	return !a.DraftMode
}

// MarkPublished leaves draft mode. Publishing twice is an invalid state.
func (a *DraftAggregateRoot) MarkPublished() error {
	if !a.DraftMode {
		return NewDomainError("ALREADY_PUBLISHED", "Already published")
	}
	a.DraftMode = false
	a.IncrementVersion()
	return nil
}

// EnsureDraft returns ErrInvalidState when the aggregate was already published
func (a *DraftAggregateRoot) EnsureDraft() error {
	if !a.DraftMode {
		return ErrInvalidState
	}
	return nil
}
