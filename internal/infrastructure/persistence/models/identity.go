package models

import (
	"github.com/acme/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// UserAccountModel is the persistence model for the UserAccount aggregate.
type UserAccountModel struct {
	AggregateModel
	Username     string                 `gorm:"type:varchar(60);not null;uniqueIndex"`
	PasswordHash string                 `gorm:"type:varchar(255);not null"`
	Enabled      bool                   `gorm:"not null"`
	Roles        []UserRoleBindingModel `gorm:"foreignKey:UserAccountID"`
}

// TableName returns the table name for GORM
func (UserAccountModel) TableName() string {
	return "user_accounts"
}

// ToDomain converts the persistence model to a domain UserAccount.
// Roles must have been preloaded.
func (m *UserAccountModel) ToDomain() *identity.UserAccount {
	roles := make(map[identity.RoleName]uuid.UUID, len(m.Roles))
	for _, b := range m.Roles {
		roles[b.Role] = b.RoleID
	}
	return &identity.UserAccount{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Username:          m.Username,
		PasswordHash:      m.PasswordHash,
		Enabled:           m.Enabled,
		Roles:             roles,
	}
}

// UserAccountModelFromDomain creates a persistence model, bindings included
func UserAccountModelFromDomain(a *identity.UserAccount) *UserAccountModel {
	m := &UserAccountModel{
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Enabled:      a.Enabled,
	}
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	for _, role := range a.RoleNames() {
		m.Roles = append(m.Roles, UserRoleBindingModel{
			UserAccountID: a.ID,
			Role:          role,
			RoleID:        a.Roles[role],
		})
	}
	return m
}

// UserRoleBindingModel links an account to the profile it acts as for one role
type UserRoleBindingModel struct {
	UserAccountID uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Role          identity.RoleName `gorm:"type:varchar(20);primaryKey"`
	RoleID        uuid.UUID         `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (UserRoleBindingModel) TableName() string {
	return "user_role_bindings"
}

// ClientModel is the persistence model for the Client role profile
type ClientModel struct {
	BaseModel
	UserAccountID  uuid.UUID           `gorm:"type:uuid;not null;index"`
	Identification string              `gorm:"type:varchar(50);not null"`
	CompanyName    string              `gorm:"type:varchar(75)"`
	Type           identity.ClientType `gorm:"type:varchar(20);not null"`
	Email          string              `gorm:"type:varchar(255)"`
	Link           string              `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the model to a domain Client
func (m *ClientModel) ToDomain() *identity.Client {
	return &identity.Client{
		BaseEntity:     m.BaseModel.ToDomain(),
		UserAccountID:  m.UserAccountID,
		Identification: m.Identification,
		CompanyName:    m.CompanyName,
		Type:           m.Type,
		Email:          m.Email,
		Link:           m.Link,
	}
}

// ClientModelFromDomain creates a persistence model from a domain Client
func ClientModelFromDomain(c *identity.Client) *ClientModel {
	m := &ClientModel{
		UserAccountID:  c.UserAccountID,
		Identification: c.Identification,
		CompanyName:    c.CompanyName,
		Type:           c.Type,
		Email:          c.Email,
		Link:           c.Link,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// DeveloperModel is the persistence model for the Developer role profile
type DeveloperModel struct {
	BaseModel
	UserAccountID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Degree         string    `gorm:"type:varchar(75);not null"`
	Specialisation string    `gorm:"type:varchar(100)"`
	Skills         string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(255);not null"`
	Link           string    `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (DeveloperModel) TableName() string {
	return "developers"
}

// ToDomain converts the model to a domain Developer
func (m *DeveloperModel) ToDomain() *identity.Developer {
	return &identity.Developer{
		BaseEntity:     m.BaseModel.ToDomain(),
		UserAccountID:  m.UserAccountID,
		Degree:         m.Degree,
		Specialisation: m.Specialisation,
		Skills:         m.Skills,
		Email:          m.Email,
		Link:           m.Link,
	}
}

// DeveloperModelFromDomain creates a persistence model from a domain Developer
func DeveloperModelFromDomain(d *identity.Developer) *DeveloperModel {
	m := &DeveloperModel{
		UserAccountID:  d.UserAccountID,
		Degree:         d.Degree,
		Specialisation: d.Specialisation,
		Skills:         d.Skills,
		Email:          d.Email,
		Link:           d.Link,
	}
	m.FromDomainBaseEntity(d.BaseEntity)
	return m
}

// SponsorModel is the persistence model for the Sponsor role profile
type SponsorModel struct {
	BaseModel
	UserAccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(75);not null"`
	Benefits      string    `gorm:"type:varchar(100);not null"`
	Email         string    `gorm:"type:varchar(255)"`
	Link          string    `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (SponsorModel) TableName() string {
	return "sponsors"
}

// ToDomain converts the model to a domain Sponsor
func (m *SponsorModel) ToDomain() *identity.Sponsor {
	return &identity.Sponsor{
		BaseEntity:    m.BaseModel.ToDomain(),
		UserAccountID: m.UserAccountID,
		Name:          m.Name,
		Benefits:      m.Benefits,
		Email:         m.Email,
		Link:          m.Link,
	}
}

// SponsorModelFromDomain creates a persistence model from a domain Sponsor
func SponsorModelFromDomain(s *identity.Sponsor) *SponsorModel {
	m := &SponsorModel{
		UserAccountID: s.UserAccountID,
		Name:          s.Name,
		Benefits:      s.Benefits,
		Email:         s.Email,
		Link:          s.Link,
	}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}

// AdministratorModel is the persistence model for the Administrator role profile
type AdministratorModel struct {
	BaseModel
	UserAccountID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (AdministratorModel) TableName() string {
	return "administrators"
}

// AdministratorModelFromDomain creates a persistence model from a domain Administrator
func AdministratorModelFromDomain(a *identity.Administrator) *AdministratorModel {
	m := &AdministratorModel{UserAccountID: a.UserAccountID}
	m.FromDomainBaseEntity(a.BaseEntity)
	return m
}
