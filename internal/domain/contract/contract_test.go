package contract

import (
	"testing"
	"time"

	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDetails() Details {
	return Details{
		Code:                "ABC-123",
		InstantiationMoment: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		ProviderName:        "Acme Provider",
		CustomerName:        "Globex",
		Goals:               "Deliver the portal",
		Budget:              valueobject.MustMoney("1200", valueobject.EUR),
		ProjectID:           uuid.New(),
	}
}

func TestNewContract(t *testing.T) {
	clientID := uuid.New()
	c := NewContract(clientID)

	assert.True(t, c.IsDraft())
	assert.True(t, c.IsOwnedBy(clientID))
	assert.False(t, c.IsOwnedBy(uuid.New()))
	assert.False(t, c.IsOwnedBy(uuid.Nil))
	assert.False(t, c.HasPositiveBudget())
}

func TestContract_Bind(t *testing.T) {
	c := NewContract(uuid.New())
	d := sampleDetails()
	c.Bind(d)

	assert.Equal(t, d.Code, c.Code)
	assert.Equal(t, d.ProjectID, c.ProjectID)
	assert.True(t, c.HasPositiveBudget())

	c.Budget = valueobject.MustMoney("0", valueobject.EUR)
	assert.False(t, c.HasPositiveBudget())
}

func TestContract_Publish(t *testing.T) {
	c := NewContract(uuid.New())
	c.Bind(sampleDetails())

	require.NoError(t, c.Publish())
	assert.True(t, c.IsPublished())
	require.Len(t, c.GetDomainEvents(), 1)
	assert.Equal(t, EventTypeContractPublished, c.GetDomainEvents()[0].EventType())

	assert.Error(t, c.Publish())
	assert.ErrorIs(t, c.Edit(sampleDetails()), shared.ErrInvalidState)
}
