package middleware

import (
	"net/http"

	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/infrastructure/logger"
	"github.com/acme/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PermissionConfig holds configuration for role middleware
type PermissionConfig struct {
	// Logger for middleware logging
	Logger *zap.Logger
	// OnDenied is called when the caller lacks the role (optional)
	OnDenied func(c *gin.Context, role identity.RoleName)
}

// RequireRole admits only callers holding role and marks it as the role the
// request acts as. It must run after JWT authentication.
func RequireRole(role identity.RoleName) gin.HandlerFunc {
	return RequireRoleWithConfig(role, PermissionConfig{})
}

// RequireRoleWithConfig is RequireRole with custom config
func RequireRoleWithConfig(role identity.RoleName, cfg PermissionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			handleRoleDenied(c, cfg, role, "No authenticated principal")
			return
		}
		if _, held := principal.RoleID(role); !held {
			handleRoleDenied(c, cfg, role, "Principal lacks role")
			return
		}

		principal.ActiveRole = role
		c.Set(JWTPrincipalKey, principal)
		c.Set(logger.GinActiveRoleKey, string(role))

		c.Next()
	}
}

// RequireAuthenticated admits any caller with at least one role
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok || len(principal.Roles) == 0 {
			handleRoleDenied(c, PermissionConfig{}, "", "No authenticated principal")
			return
		}
		c.Next()
	}
}

// HasRole reports whether the caller holds role
func HasRole(c *gin.Context, role identity.RoleName) bool {
	principal, ok := GetPrincipal(c)
	if !ok {
		return false
	}
	_, held := principal.RoleID(role)
	return held
}

func handleRoleDenied(c *gin.Context, cfg PermissionConfig, role identity.RoleName, reason string) {
	if cfg.OnDenied != nil {
		cfg.OnDenied(c, role)
		return
	}

	if cfg.Logger != nil {
		cfg.Logger.Warn("Role check failed",
			zap.String("user_id", GetJWTUserID(c)),
			zap.String("required_role", string(role)),
			zap.String("reason", reason),
			zap.String("path", c.Request.URL.Path),
		)
	}

	c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeForbidden,
		"Access to this resource is forbidden",
		c.GetString(logger.GinRequestIDKey),
	))
}
