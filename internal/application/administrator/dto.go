package administrator

import (
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/acme/backend/internal/domain/system"
)

// SystemConfigurationInput is the bound form of the system configuration
type SystemConfigurationInput struct {
	SystemCurrency     string `json:"systemCurrency" binding:"required,currency"`
	AcceptedCurrencies string `json:"acceptedCurrencies" binding:"required,max=255"`
}

// SystemConfigurationResponse is the unbound system configuration
type SystemConfigurationResponse struct {
	SystemCurrency     string   `json:"systemCurrency"`
	AcceptedCurrencies string   `json:"acceptedCurrencies"`
	Currencies         []string `json:"currencies"`
	Version            int      `json:"version"`
}

// ToSystemConfigurationResponse unbinds the configuration
func ToSystemConfigurationResponse(c *system.Configuration) *SystemConfigurationResponse {
	list := c.Currencies()
	currencies := make([]string, len(list))
	for i, cur := range list {
		currencies[i] = cur.String()
	}
	return &SystemConfigurationResponse{
		SystemCurrency:     c.SystemCurrency.String(),
		AcceptedCurrencies: valueobject.JoinCurrencies(list),
		Currencies:         currencies,
		Version:            c.Version,
	}
}
