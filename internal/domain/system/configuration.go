package system

import (
	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/shared/valueobject"
)

// Configuration is the single system-wide settings row
type Configuration struct {
	shared.BaseAggregateRoot
	SystemCurrency     valueobject.Currency
	AcceptedCurrencies string
}

// NewConfiguration creates a configuration; the system currency must be accepted
func NewConfiguration(systemCurrency valueobject.Currency, accepted string) (*Configuration, error) {
	c := &Configuration{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		SystemCurrency:     systemCurrency,
		AcceptedCurrencies: accepted,
	}
	if !c.HasValidCodes() {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Accepted currencies must be ISO 4217 codes")
	}
	if !c.Accepts(systemCurrency) {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "System currency must be one of the accepted currencies")
	}
	return c, nil
}

// Currencies returns the accepted currencies in configured order
func (c *Configuration) Currencies() []valueobject.Currency {
	return valueobject.ParseCurrencyList(c.AcceptedCurrencies)
}

// Accepts reports whether the currency is in the accepted list
func (c *Configuration) Accepts(currency valueobject.Currency) bool {
	for _, cur := range c.Currencies() {
		if cur == currency {
			return true
		}
	}
	return false
}

// HasValidCodes is true when the list is non-empty and every entry is a valid code
func (c *Configuration) HasValidCodes() bool {
	list := c.Currencies()
	if len(list) == 0 {
		return false
	}
	for _, cur := range list {
		if !cur.IsValid() {
			return false
		}
	}
	return true
}

// Update replaces both settings
func (c *Configuration) Update(systemCurrency valueobject.Currency, accepted []valueobject.Currency) {
	c.SystemCurrency = systemCurrency
	c.AcceptedCurrencies = valueobject.JoinCurrencies(accepted)
	c.IncrementVersion()
}
