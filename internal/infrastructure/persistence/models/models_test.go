package models

import (
	"testing"
	"time"

	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/acme/backend/internal/domain/sponsorship"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyColumns(t *testing.T) {
	cols := MoneyColumnsFrom(valueobject.MustMoney("12.50", valueobject.USD))
	assert.Equal(t, "USD", cols.Currency)
	assert.True(t, cols.Amount.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, "12.50 USD", cols.ToDomain().String())

	assert.True(t, MoneyColumns{}.ToDomain().IsEmpty())
}

func TestInvoiceModel_KeepsPublishedFlagAndVersion(t *testing.T) {
	inv := sponsorship.NewInvoice(uuid.New())
	inv.Bind(sponsorship.InvoiceFields{
		Code:             "IN-2024-0001",
		RegistrationTime: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		DueDate:          time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Quantity:         valueobject.MustMoney("100", valueobject.EUR),
		Tax:              decimal.NewFromInt(21),
	})
	require.NoError(t, inv.Publish(uuid.New()))

	m := InvoiceModelFromDomain(inv)
	assert.False(t, m.DraftMode)
	assert.Equal(t, 2, m.Version)
	assert.Equal(t, "invoices", m.TableName())

	back := m.ToDomain()
	assert.True(t, back.IsPublished())
	assert.Equal(t, inv.ID, back.ID)
	assert.Equal(t, "121.00 EUR", back.TotalAmount().String())
	assert.Empty(t, back.GetDomainEvents())
}

func TestUserAccountModel_RoleBindings(t *testing.T) {
	acc := &identity.UserAccount{Username: "sponsor1", Enabled: true, Roles: map[identity.RoleName]uuid.UUID{}}
	acc.ID = uuid.New()
	sponsorID, clientID := uuid.New(), uuid.New()
	require.NoError(t, acc.BindRole(identity.RoleSponsor, sponsorID))
	require.NoError(t, acc.BindRole(identity.RoleClient, clientID))

	m := UserAccountModelFromDomain(acc)
	require.Len(t, m.Roles, 2)
	assert.Equal(t, identity.RoleClient, m.Roles[0].Role)
	assert.Equal(t, acc.ID, m.Roles[0].UserAccountID)

	back := m.ToDomain()
	assert.Equal(t, sponsorID, back.Roles[identity.RoleSponsor])
	assert.Equal(t, clientID, back.Roles[identity.RoleClient])
	assert.True(t, back.CanLogin())
}
