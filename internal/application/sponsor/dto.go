package sponsor

import (
	"time"

	"github.com/acme/backend/internal/application/form"
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/acme/backend/internal/domain/sponsorship"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Sponsorship
// =============================================================================

// SponsorshipListFilter holds paging for the sponsorship list
type SponsorshipListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by" binding:"omitempty,oneof=code moment start_date created_at"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search" binding:"max=100"`
}

// SponsorshipListItem is one row of the sponsorship list
type SponsorshipListItem struct {
	ID        uuid.UUID         `json:"id"`
	Code      string            `json:"code"`
	Moment    time.Time         `json:"moment"`
	Amount    valueobject.Money `json:"amount"`
	Type      string            `json:"type"`
	DraftMode string            `json:"draftMode"`
}

// SponsorshipResponse is the unbound view of a sponsorship
type SponsorshipResponse struct {
	ID         uuid.UUID          `json:"id"`
	Code       string             `json:"code"`
	Moment     time.Time          `json:"moment"`
	StartDate  time.Time          `json:"startDate"`
	EndDate    time.Time          `json:"endDate"`
	Amount     valueobject.Money  `json:"amount"`
	Type       string             `json:"type"`
	Types      form.SelectChoices `json:"types"`
	Email      string             `json:"email"`
	Link       string             `json:"link"`
	DraftMode  bool               `json:"draftMode"`
	Project    string             `json:"project"`
	Projects   form.SelectChoices `json:"projects"`
	ShowCreate bool               `json:"showCreate"`
	Version    int                `json:"version"`
}

// ToSponsorshipResponse unbinds a sponsorship
func ToSponsorshipResponse(s *sponsorship.Sponsorship, projects form.SelectChoices, showCreate bool) *SponsorshipResponse {
	return &SponsorshipResponse{
		ID:         s.ID,
		Code:       s.Code,
		Moment:     s.Moment,
		StartDate:  s.StartDate,
		EndDate:    s.EndDate,
		Amount:     s.Amount,
		Type:       string(s.Type),
		Types:      form.FromEnum([]sponsorship.Type{sponsorship.TypeFinancial, sponsorship.TypeInKind}, s.Type),
		Email:      s.Email,
		Link:       s.Link,
		DraftMode:  s.DraftMode,
		Project:    projects.Selected().Key,
		Projects:   projects,
		ShowCreate: showCreate,
		Version:    s.Version,
	}
}

// =============================================================================
// Invoice
// =============================================================================

// InvoiceInput is the bound form of an invoice
type InvoiceInput struct {
	Code             string            `json:"code" binding:"required,invoice_code"`
	RegistrationTime time.Time         `json:"registrationTime" binding:"required,past"`
	DueDate          time.Time         `json:"dueDate" binding:"required"`
	Quantity         valueobject.Money `json:"quantity"`
	Tax              decimal.Decimal   `json:"tax"`
	Link             string            `json:"link" binding:"omitempty,url,max=255"`
}

func (in InvoiceInput) fields() sponsorship.InvoiceFields {
	return sponsorship.InvoiceFields{
		Code:             in.Code,
		RegistrationTime: in.RegistrationTime,
		DueDate:          in.DueDate,
		Quantity:         in.Quantity,
		Tax:              in.Tax,
		Link:             in.Link,
	}
}

// InvoiceListItem is one row of the invoice list
type InvoiceListItem struct {
	ID               uuid.UUID         `json:"id"`
	Code             string            `json:"code"`
	RegistrationTime time.Time         `json:"registrationTime"`
	DueDate          time.Time         `json:"dueDate"`
	Quantity         valueobject.Money `json:"quantity"`
	Tax              decimal.Decimal   `json:"tax"`
	Link             string            `json:"link"`
	TotalAmount      valueobject.Money `json:"totalAmount"`
	DraftMode        string            `json:"draftMode"`
}

// InvoiceList is the invoice list of one sponsorship with its globals
type InvoiceList struct {
	Items   []InvoiceListItem `json:"items"`
	Globals form.Dataset      `json:"globals"`
}

// InvoiceResponse is the unbound view of an invoice
type InvoiceResponse struct {
	ID               uuid.UUID         `json:"id"`
	Code             string            `json:"code"`
	RegistrationTime time.Time         `json:"registrationTime"`
	DueDate          time.Time         `json:"dueDate"`
	Quantity         valueobject.Money `json:"quantity"`
	Tax              decimal.Decimal   `json:"tax"`
	Link             string            `json:"link"`
	TotalAmount      valueobject.Money `json:"totalAmount"`
	DraftMode        bool              `json:"draftMode"`
	MasterID         uuid.UUID         `json:"masterId"`
	Version          int               `json:"version"`
}

// ToInvoiceResponse unbinds an invoice
func ToInvoiceResponse(i *sponsorship.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:               i.ID,
		Code:             i.Code,
		RegistrationTime: i.RegistrationTime,
		DueDate:          i.DueDate,
		Quantity:         i.Quantity,
		Tax:              i.Tax,
		Link:             i.Link,
		TotalAmount:      i.TotalAmount(),
		DraftMode:        i.DraftMode,
		MasterID:         i.SponsorshipID,
		Version:          i.Version,
	}
}

// DocumentResponse points at a rendered invoice document
type DocumentResponse struct {
	InvoiceID uuid.UUID `json:"invoiceId"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// =============================================================================
// Dashboard
// =============================================================================

// CurrencyStatistics is the summary of one currency group
type CurrencyStatistics struct {
	Currency  string          `json:"currency"`
	Count     int             `json:"count"`
	Average   decimal.Decimal `json:"average"`
	Maximum   decimal.Decimal `json:"maximum"`
	Minimum   decimal.Decimal `json:"minimum"`
	Deviation decimal.Decimal `json:"deviation"`
}

// DashboardResponse is the unbound sponsor dashboard
type DashboardResponse struct {
	TotalNumInvoicesWithTaxLessOrEqualTo21 int                  `json:"totalNumInvoicesWithTaxLessOrEqualTo21"`
	TotalNumInvoicesWithLink               int                  `json:"totalNumInvoicesWithLink"`
	SponsorshipAmounts                     []CurrencyStatistics `json:"sponsorshipAmounts"`
	InvoiceQuantities                      []CurrencyStatistics `json:"invoiceQuantities"`
	SupportedCurrencies                    []string             `json:"supportedCurrencies"`
	ComputedAt                             time.Time            `json:"computedAt"`
}

// ToDashboardResponse unbinds a dashboard, ordering currency groups by code
func ToDashboardResponse(d *sponsorship.Dashboard) *DashboardResponse {
	supported := make([]string, len(d.SupportedCurrencies))
	for i, c := range d.SupportedCurrencies {
		supported[i] = c.String()
	}
	return &DashboardResponse{
		TotalNumInvoicesWithTaxLessOrEqualTo21: d.TotalNumInvoicesWithTaxLessOrEqualTo21,
		TotalNumInvoicesWithLink:               d.TotalNumInvoicesWithLink,
		SponsorshipAmounts:                     toCurrencyStatistics(d.AmountStatistics),
		InvoiceQuantities:                      toCurrencyStatistics(d.QuantityStatistics),
		SupportedCurrencies:                    supported,
		ComputedAt:                             d.ComputedAt,
	}
}

func toCurrencyStatistics(stats map[valueobject.Currency]sponsorship.Statistics) []CurrencyStatistics {
	out := make([]CurrencyStatistics, 0, len(stats))
	for _, currency := range sponsorship.SortedCurrencies(stats) {
		s := stats[currency]
		out = append(out, CurrencyStatistics{
			Currency:  currency.String(),
			Count:     s.Count,
			Average:   s.Average,
			Maximum:   s.Maximum,
			Minimum:   s.Minimum,
			Deviation: s.Deviation,
		})
	}
	return out
}
