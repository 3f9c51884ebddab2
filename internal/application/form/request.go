// Package form holds the request, validation and dataset types shared by the
// role services. Every role operation runs the same stages: authorise, load,
// bind, validate, perform and unbind.
package form

import (
	"github.com/acme/backend/internal/domain/identity"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// Principal is the authenticated caller
type Principal struct {
	UserID     uuid.UUID
	Username   string
	Roles      map[identity.RoleName]uuid.UUID
	ActiveRole identity.RoleName
}

// HasRole reports whether the principal acts as the role profile id of the given role
func (p Principal) HasRole(role identity.RoleName, id uuid.UUID) bool {
	got, ok := p.Roles[role]
	return ok && id != uuid.Nil && got == id
}

// RoleID returns the principal's profile id for role
func (p Principal) RoleID(role identity.RoleName) (uuid.UUID, bool) {
	id, ok := p.Roles[role]
	return id, ok
}

// ActiveRoleID returns the profile id of the role the request acts as
func (p Principal) ActiveRoleID() uuid.UUID {
	return p.Roles[p.ActiveRole]
}

// Request carries who is calling and in which locale
type Request struct {
	Principal Principal
	Locale    language.Tag
}

// NewRequest builds a request acting as role
func NewRequest(p Principal, role identity.RoleName, locale language.Tag) Request {
	p.ActiveRole = role
	return Request{Principal: p, Locale: locale}
}
