package sponsorship

import (
	"context"
	"time"

	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardTaxThreshold is the tax percentage counted by the dashboard
var DashboardTaxThreshold = decimal.NewFromInt(21)

// Dashboard is the per-sponsor summary of published sponsorships and invoices
type Dashboard struct {
	SponsorID                              uuid.UUID                           `json:"sponsor_id"`
	TotalNumInvoicesWithTaxLessOrEqualTo21 int                                 `json:"total_num_invoices_with_tax_less_or_equal_to_21"`
	TotalNumInvoicesWithLink               int                                 `json:"total_num_invoices_with_link"`
	AmountStatistics                       map[valueobject.Currency]Statistics `json:"amount_statistics"`
	QuantityStatistics                     map[valueobject.Currency]Statistics `json:"quantity_statistics"`
	SupportedCurrencies                    []valueobject.Currency              `json:"supported_currencies"`
	ComputedAt                             time.Time                           `json:"computed_at"`
}

// BuildDashboard summarizes the sponsor's published sponsorships and invoices.
// Drafts passed in are ignored.
func BuildDashboard(sponsorID uuid.UUID, sponsorships []Sponsorship, invoices []Invoice, supported []valueobject.Currency) *Dashboard {
	amounts := make([]valueobject.Money, 0, len(sponsorships))
	for i := range sponsorships {
		if sponsorships[i].IsPublished() {
			amounts = append(amounts, sponsorships[i].Amount)
		}
	}

	d := &Dashboard{
		SponsorID:           sponsorID,
		SupportedCurrencies: supported,
		ComputedAt:          time.Now(),
	}

	quantities := make([]valueobject.Money, 0, len(invoices))
	for i := range invoices {
		inv := &invoices[i]
		if !inv.IsPublished() {
			continue
		}
		quantities = append(quantities, inv.Quantity)
		if inv.TaxAtMost(DashboardTaxThreshold) {
			d.TotalNumInvoicesWithTaxLessOrEqualTo21++
		}
		if inv.HasLink() {
			d.TotalNumInvoicesWithLink++
		}
	}

	d.AmountStatistics = StatisticsByCurrency(amounts)
	d.QuantityStatistics = StatisticsByCurrency(quantities)
	return d
}

// DashboardCache stores computed dashboards per sponsor.
// Get returns nil, nil on a miss.
type DashboardCache interface {
	Get(ctx context.Context, sponsorID uuid.UUID) (*Dashboard, error)
	Set(ctx context.Context, dashboard *Dashboard, ttl time.Duration) error
	Delete(ctx context.Context, sponsorID uuid.UUID) error
}
