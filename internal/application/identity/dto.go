package identity

import (
	"sort"
	"time"

	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// LoginInput contains the input for user login
type LoginInput struct {
	Username string
	Password string
}

// TokenResult is an issued access/refresh pair
type TokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	TokenResult
	User UserInfo
}

// RoleBinding is one role the user can act as
type RoleBinding struct {
	Role identity.RoleName
	ID   uuid.UUID
}

// UserInfo is the principal as seen by the client
type UserInfo struct {
	ID       uuid.UUID
	Username string
	Roles    []RoleBinding
}

// LogoutInput identifies the tokens to revoke. The refresh token is optional.
type LogoutInput struct {
	JTI          string
	ExpiresAt    time.Time
	RefreshToken string
}

func toTokenResult(pair *auth.TokenPair) TokenResult {
	return TokenResult{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
	}
}

func toUserInfo(account *identity.UserAccount) UserInfo {
	bindings := make([]RoleBinding, 0, len(account.Roles))
	for role, id := range account.Roles {
		bindings = append(bindings, RoleBinding{Role: role, ID: id})
	}
	sort.Slice(bindings, func(i, j int) bool { return bindings[i].Role < bindings[j].Role })
	return UserInfo{ID: account.ID, Username: account.Username, Roles: bindings}
}
