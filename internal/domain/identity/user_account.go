package identity

import (
	"regexp"
	"strings"

	"github.com/acme/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

var usernamePattern = regexp.MustCompile(`^[a-z0-9_\-.]{2,60}$`)

// UserAccount is the login identity. The roles it can act as are stored as
// bindings from role name to the id of the matching role profile.
type UserAccount struct {
	shared.BaseAggregateRoot
	Username     string
	PasswordHash string
	Enabled      bool
	Roles        map[RoleName]uuid.UUID
}

// NewUserAccount creates an enabled account with a hashed password
func NewUserAccount(username, password string) (*UserAccount, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if !usernamePattern.MatchString(username) {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username must be 2-60 lowercase letters, digits, dots, dashes or underscores")
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &UserAccount{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          username,
		PasswordHash:      hash,
		Enabled:           true,
		Roles:             make(map[RoleName]uuid.UUID),
	}, nil
}

// VerifyPassword verifies if the provided password matches
func (u *UserAccount) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// CanLogin reports whether the account may authenticate
func (u *UserAccount) CanLogin() bool {
	return u.Enabled
}

// Disable prevents further logins
func (u *UserAccount) Disable() {
	u.Enabled = false
	u.IncrementVersion()
}

// BindRole attaches a role profile to the account
func (u *UserAccount) BindRole(role RoleName, roleID uuid.UUID) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(role))
	}
	if roleID == uuid.Nil {
		return shared.NewDomainError("INVALID_ROLE_ID", "Role ID cannot be empty")
	}
	if u.Roles == nil {
		u.Roles = make(map[RoleName]uuid.UUID)
	}
	if _, ok := u.Roles[role]; ok {
		return shared.NewDomainError("ROLE_ALREADY_ASSIGNED", "User already has this role")
	}
	u.Roles[role] = roleID
	u.IncrementVersion()
	return nil
}

// HasRole reports whether the account holds the role
func (u *UserAccount) HasRole(role RoleName) bool {
	_, ok := u.Roles[role]
	return ok
}

// RoleNames returns the held roles in AllRoles order
func (u *UserAccount) RoleNames() []RoleName {
	names := make([]RoleName, 0, len(u.Roles))
	for _, r := range AllRoles {
		if u.HasRole(r) {
			names = append(names, r)
		}
	}
	return names
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
