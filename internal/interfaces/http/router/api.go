package router

import (
	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/interfaces/http/handler"
	"github.com/acme/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers are the handlers served under /api/<version>
type Handlers struct {
	Auth                *handler.AuthHandler
	System              *handler.SystemHandler
	SystemConfiguration *handler.SystemConfigurationHandler
	Contracts           *handler.ContractHandler
	TrainingModules     *handler.TrainingModuleHandler
	Sponsorships        *handler.SponsorshipHandler
	Invoices            *handler.InvoiceHandler
}

// Guards are the middleware the API groups are wrapped in. A nil guard is skipped.
type Guards struct {
	// Authenticate validates the bearer token and stores the principal
	Authenticate gin.HandlerFunc
	// Credentials throttles the login and refresh endpoints
	Credentials gin.HandlerFunc
	// Annotate runs after the role check, e.g. to tag the request span
	Annotate gin.HandlerFunc
}

// APIGroups builds the route groups of every role
func APIGroups(h Handlers, g Guards) []*DomainGroup {
	auth := NewDomainGroup("auth", "/auth")
	auth.POST("/login", guarded(g.Credentials, h.Auth.Login)...)
	auth.POST("/refresh", guarded(g.Credentials, h.Auth.RefreshToken)...)
	session := auth.Group("auth-session", "").Use(g.Authenticate)
	session.POST("/logout", h.Auth.Logout)
	session.GET("/me", h.Auth.GetCurrentUser)

	system := NewDomainGroup("system", "/system").
		GET("/info", h.System.GetSystemInfo)

	settings := NewDomainGroup("system-configuration", "/system-configuration").
		Use(g.Authenticate, middleware.RequireAuthenticated(), g.Annotate).
		GET("", h.SystemConfiguration.Get)

	client := roleGroup(identity.RoleClient, "/client", g)
	client.GET("/contracts", h.Contracts.List)
	client.POST("/contracts", h.Contracts.Create)
	client.GET("/contracts/:id", h.Contracts.GetByID)
	client.PUT("/contracts/:id", h.Contracts.Update)
	client.DELETE("/contracts/:id", h.Contracts.Delete)
	client.POST("/contracts/:id/publish", h.Contracts.Publish)

	developer := roleGroup(identity.RoleDeveloper, "/developer", g)
	developer.GET("/training-modules", h.TrainingModules.List)
	developer.POST("/training-modules", h.TrainingModules.Create)
	developer.GET("/training-modules/:id", h.TrainingModules.GetByID)
	developer.PUT("/training-modules/:id", h.TrainingModules.Update)
	developer.DELETE("/training-modules/:id", h.TrainingModules.Delete)
	developer.POST("/training-modules/:id/publish", h.TrainingModules.Publish)

	sponsor := roleGroup(identity.RoleSponsor, "/sponsor", g)
	sponsor.GET("/dashboard", h.Sponsorships.Dashboard)
	sponsor.GET("/sponsorships", h.Sponsorships.List)
	sponsor.GET("/sponsorships/:id", h.Sponsorships.GetByID)
	sponsor.POST("/sponsorships/:id/publish", h.Sponsorships.Publish)
	sponsor.GET("/invoices", h.Invoices.List)
	sponsor.POST("/invoices", h.Invoices.Create)
	sponsor.GET("/invoices/:id", h.Invoices.GetByID)
	sponsor.PUT("/invoices/:id", h.Invoices.Update)
	sponsor.DELETE("/invoices/:id", h.Invoices.Delete)
	sponsor.POST("/invoices/:id/publish", h.Invoices.Publish)
	sponsor.GET("/invoices/:id/document", h.Invoices.Document)

	administrator := roleGroup(identity.RoleAdministrator, "/administrator", g)
	administrator.PUT("/system-configuration", h.SystemConfiguration.Update)

	return []*DomainGroup{auth, system, settings, client, developer, sponsor, administrator}
}

func roleGroup(role identity.RoleName, prefix string, g Guards) *DomainGroup {
	return NewDomainGroup(string(role), prefix).
		Use(g.Authenticate, middleware.RequireRole(role), g.Annotate)
}

func guarded(guard gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	return compact([]gin.HandlerFunc{guard, h})
}
