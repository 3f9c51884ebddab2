package identity

import (
	"strings"

	"github.com/acme/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RoleName identifies one of the functional roles a user account can hold
type RoleName string

const (
	RoleClient        RoleName = "client"
	RoleDeveloper     RoleName = "developer"
	RoleSponsor       RoleName = "sponsor"
	RoleAdministrator RoleName = "administrator"
)

// AllRoles lists the roles in a stable order
var AllRoles = []RoleName{RoleAdministrator, RoleClient, RoleDeveloper, RoleSponsor}

// IsValid reports whether the role name is known
func (r RoleName) IsValid() bool {
	switch r {
	case RoleClient, RoleDeveloper, RoleSponsor, RoleAdministrator:
		return true
	}
	return false
}

// ParseRoleName normalizes a role name from user input
func ParseRoleName(s string) (RoleName, error) {
	r := RoleName(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", shared.NewDomainError("INVALID_ROLE", "Unknown role: "+s)
	}
	return r, nil
}

// ClientType distinguishes company clients from individuals
type ClientType string

const (
	ClientTypeCompany    ClientType = "COMPANY"
	ClientTypeIndividual ClientType = "INDIVIDUAL"
)

// Client is the role profile of a user acting as a client
type Client struct {
	shared.BaseEntity
	UserAccountID  uuid.UUID
	Identification string
	CompanyName    string
	Type           ClientType
	Email          string
	Link           string
}

// Developer is the role profile of a user acting as a developer
type Developer struct {
	shared.BaseEntity
	UserAccountID  uuid.UUID
	Degree         string
	Specialisation string
	Skills         string
	Email          string
	Link           string
}

// Sponsor is the role profile of a user acting as a sponsor
type Sponsor struct {
	shared.BaseEntity
	UserAccountID uuid.UUID
	Name          string
	Benefits      string
	Email         string
	Link          string
}

// Administrator is the role profile of a system administrator
type Administrator struct {
	shared.BaseEntity
	UserAccountID uuid.UUID
}
