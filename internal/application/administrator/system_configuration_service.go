// Package administrator holds the administrator-facing operations
package administrator

import (
	"context"

	"github.com/acme/backend/internal/application/form"
	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/acme/backend/internal/domain/system"
	"github.com/acme/backend/internal/infrastructure/i18n"
	"go.uber.org/zap"
)

// SystemConfigurationService reads and updates the system-wide settings
type SystemConfigurationService struct {
	settings system.ConfigurationRepository
	logger   *zap.Logger
}

// NewSystemConfigurationService creates a new SystemConfigurationService
func NewSystemConfigurationService(settings system.ConfigurationRepository, logger *zap.Logger) *SystemConfigurationService {
	return &SystemConfigurationService{settings: settings, logger: logger}
}

// Show returns the configuration to any authenticated principal
func (s *SystemConfigurationService) Show(ctx context.Context, req form.Request) (*SystemConfigurationResponse, error) {
	if len(req.Principal.Roles) == 0 {
		return nil, shared.ErrForbidden
	}
	cfg, err := s.settings.Find(ctx)
	if err != nil {
		return nil, err
	}
	return ToSystemConfigurationResponse(cfg), nil
}

// Update replaces the system currency and the accepted list
func (s *SystemConfigurationService) Update(ctx context.Context, req form.Request, in SystemConfigurationInput) (*SystemConfigurationResponse, error) {
	if _, ok := req.Principal.RoleID(identity.RoleAdministrator); !ok {
		return nil, shared.ErrForbidden
	}
	cfg, err := s.settings.Find(ctx)
	if err != nil {
		return nil, err
	}

	systemCurrency := valueobject.Currency(in.SystemCurrency)
	accepted := valueobject.ParseCurrencyList(in.AcceptedCurrencies)
	if err := validate(systemCurrency, accepted); err != nil {
		return nil, err
	}

	cfg.Update(systemCurrency, accepted)
	if err := s.settings.Save(ctx, cfg); err != nil {
		return nil, err
	}

	s.logger.Info("System configuration updated",
		zap.String("system_currency", systemCurrency.String()),
		zap.String("accepted_currencies", cfg.AcceptedCurrencies))

	return ToSystemConfigurationResponse(cfg), nil
}

func validate(systemCurrency valueobject.Currency, accepted []valueobject.Currency) error {
	errs := form.NewErrors()

	valid := len(accepted) > 0
	for _, cur := range accepted {
		valid = valid && cur.IsValid()
	}
	errs.State(valid, "acceptedCurrencies", i18n.KeyCurrencyCodeInvalid)

	if !errs.HasErrors("acceptedCurrencies") {
		found := false
		for _, cur := range accepted {
			found = found || cur == systemCurrency
		}
		errs.State(found, "systemCurrency", i18n.KeySystemCurrencyNotAccepted)
	}

	return errs.Err()
}
