package sponsor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acme/backend/internal/application/form"
	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/sponsorship"
	"github.com/acme/backend/internal/domain/system"
	"github.com/acme/backend/internal/infrastructure/i18n"
	"github.com/acme/backend/internal/infrastructure/printing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DocumentRenderer turns an invoice document into PDF bytes
type DocumentRenderer interface {
	RenderInvoice(ctx context.Context, doc *printing.InvoiceDocument) ([]byte, error)
}

// DocumentStorage keeps rendered documents and hands out download links
type DocumentStorage interface {
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)
}

// ErrDocumentsUnavailable is returned when no renderer or storage is configured
var ErrDocumentsUnavailable = shared.NewDomainError("DOCUMENTS_UNAVAILABLE", "Invoice documents are not enabled")

var maxTax = decimal.NewFromInt(100)

// InvoiceService runs the sponsor-facing invoice operations. Every invoice is
// reached through its master sponsorship.
type InvoiceService struct {
	invoices     sponsorship.InvoiceRepository
	sponsorships sponsorship.SponsorshipRepository
	settings     system.ConfigurationRepository
	events       shared.EventPublisher
	renderer     DocumentRenderer
	storage      DocumentStorage
	logger       *zap.Logger
}

// InvoiceServiceOption configures optional collaborators
type InvoiceServiceOption func(*InvoiceService)

// WithDocuments enables the document operation
func WithDocuments(renderer DocumentRenderer, storage DocumentStorage) InvoiceServiceOption {
	return func(s *InvoiceService) {
		s.renderer = renderer
		s.storage = storage
	}
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoices sponsorship.InvoiceRepository,
	sponsorships sponsorship.SponsorshipRepository,
	settings system.ConfigurationRepository,
	events shared.EventPublisher,
	logger *zap.Logger,
	opts ...InvoiceServiceOption,
) *InvoiceService {
	s := &InvoiceService{
		invoices:     invoices,
		sponsorships: sponsorships,
		settings:     settings,
		events:       events,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListMine lists the invoices of a sponsorship the caller may see
func (s *InvoiceService) ListMine(ctx context.Context, req form.Request, masterID uuid.UUID) (*InvoiceList, error) {
	sponsorID, ok := req.Principal.RoleID(identity.RoleSponsor)
	if !ok {
		return nil, shared.ErrForbidden
	}
	master, err := s.loadMaster(ctx, masterID)
	if err != nil {
		return nil, err
	}
	if !master.IsVisibleTo(sponsorID) {
		return nil, shared.ErrForbidden
	}

	invoices, err := s.invoices.FindAllBySponsorship(ctx, master.ID)
	if err != nil {
		return nil, err
	}

	items := make([]InvoiceListItem, len(invoices))
	for i := range invoices {
		inv := &invoices[i]
		items[i] = InvoiceListItem{
			ID:               inv.ID,
			Code:             inv.Code,
			RegistrationTime: inv.RegistrationTime,
			DueDate:          inv.DueDate,
			Quantity:         inv.Quantity,
			Tax:              inv.Tax,
			Link:             inv.Link,
			TotalAmount:      inv.TotalAmount(),
			DraftMode:        i18n.YesNo(req.Locale, inv.DraftMode),
		}
	}

	globals := form.Dataset{}.
		Put("masterId", master.ID).
		Put("showCreate", master.AcceptsInvoicesFrom(sponsorID))

	return &InvoiceList{Items: items, Globals: globals}, nil
}

// Show returns an invoice that is published or belongs to the caller
func (s *InvoiceService) Show(ctx context.Context, req form.Request, id uuid.UUID) (*InvoiceResponse, error) {
	inv, _, err := s.loadVisible(ctx, req, id)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponse(inv), nil
}

// Create registers a draft invoice under a draft sponsorship owned by the caller
func (s *InvoiceService) Create(ctx context.Context, req form.Request, masterID uuid.UUID, in InvoiceInput) (*InvoiceResponse, error) {
	master, sponsorID, err := s.loadOpenMaster(ctx, req, masterID)
	if err != nil {
		return nil, err
	}

	inv := sponsorship.NewInvoice(master.ID)
	inv.Bind(in.fields())
	if err := s.validate(ctx, inv); err != nil {
		return nil, err
	}

	inv.MarkCreated(sponsorID)
	if err := s.invoices.Save(ctx, inv); err != nil {
		return nil, form.OnDuplicate(err, "code", i18n.KeyInvoiceDuplicated)
	}
	s.publishEvents(ctx, inv)

	s.logger.Info("Invoice created",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("code", inv.Code),
		zap.String("sponsorship_id", master.ID.String()))

	return ToInvoiceResponse(inv), nil
}

// Update edits a draft invoice owned by the caller
func (s *InvoiceService) Update(ctx context.Context, req form.Request, id uuid.UUID, in InvoiceInput) (*InvoiceResponse, error) {
	inv, _, err := s.loadEditable(ctx, req, id)
	if err != nil {
		return nil, err
	}

	inv.Bind(in.fields())
	if err := s.validate(ctx, inv); err != nil {
		return nil, err
	}
	inv.IncrementVersion()

	if err := s.invoices.Save(ctx, inv); err != nil {
		return nil, form.OnDuplicate(err, "code", i18n.KeyInvoiceDuplicated)
	}

	s.logger.Info("Invoice updated",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("code", inv.Code))

	return ToInvoiceResponse(inv), nil
}

// Publish validates the submitted form one last time and leaves draft mode
func (s *InvoiceService) Publish(ctx context.Context, req form.Request, id uuid.UUID, in InvoiceInput) (*InvoiceResponse, error) {
	inv, master, err := s.loadEditable(ctx, req, id)
	if err != nil {
		return nil, err
	}

	inv.Bind(in.fields())
	if err := s.validate(ctx, inv); err != nil {
		return nil, err
	}
	if err := inv.Publish(master.SponsorID); err != nil {
		return nil, err
	}

	if err := s.invoices.Save(ctx, inv); err != nil {
		return nil, form.OnDuplicate(err, "code", i18n.KeyInvoiceDuplicated)
	}
	s.publishEvents(ctx, inv)

	s.logger.Info("Invoice published",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("code", inv.Code))

	return ToInvoiceResponse(inv), nil
}

// Delete removes a draft invoice owned by the caller
func (s *InvoiceService) Delete(ctx context.Context, req form.Request, id uuid.UUID) error {
	inv, _, err := s.loadEditable(ctx, req, id)
	if err != nil {
		return err
	}
	if err := s.invoices.Delete(ctx, inv.ID); err != nil {
		return err
	}
	s.logger.Info("Invoice deleted", zap.String("invoice_id", inv.ID.String()))
	return nil
}

// Document renders the invoice to PDF, stores it and returns a download link
func (s *InvoiceService) Document(ctx context.Context, req form.Request, id uuid.UUID) (*DocumentResponse, error) {
	if s.renderer == nil || s.storage == nil {
		return nil, ErrDocumentsUnavailable
	}
	inv, master, err := s.loadVisible(ctx, req, id)
	if err != nil {
		return nil, err
	}

	doc := &printing.InvoiceDocument{
		Code:             inv.Code,
		SponsorshipCode:  master.Code,
		RegistrationTime: inv.RegistrationTime,
		DueDate:          inv.DueDate,
		Quantity:         inv.Quantity,
		Tax:              inv.Tax,
		TotalAmount:      inv.TotalAmount(),
		Link:             inv.Link,
		Draft:            inv.DraftMode,
		Locale:           req.Locale,
	}
	pdf, err := s.renderer.RenderInvoice(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render invoice %s: %w", inv.Code, err)
	}

	key := documentKey(inv)
	if err := s.storage.Upload(ctx, key, pdf, "application/pdf"); err != nil {
		return nil, fmt.Errorf("failed to store invoice document: %w", err)
	}
	url, expiresAt, err := s.storage.GenerateDownloadURL(ctx, key, 0)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Invoice document generated",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("storage_key", key),
		zap.Int("size_bytes", len(pdf)))

	return &DocumentResponse{InvoiceID: inv.ID, URL: url, ExpiresAt: expiresAt}, nil
}

// AuthoriseCreate fails with ErrForbidden unless the caller may add invoices to the sponsorship
func (s *InvoiceService) AuthoriseCreate(ctx context.Context, req form.Request, masterID uuid.UUID) error {
	_, _, err := s.loadOpenMaster(ctx, req, masterID)
	return err
}

// AuthoriseEdit fails with ErrForbidden unless the caller may change the invoice
func (s *InvoiceService) AuthoriseEdit(ctx context.Context, req form.Request, id uuid.UUID) error {
	_, _, err := s.loadEditable(ctx, req, id)
	return err
}

func documentKey(inv *sponsorship.Invoice) string {
	return fmt.Sprintf("invoices/%s/%s-v%d.pdf", inv.SponsorshipID, inv.Code, inv.Version)
}

func (s *InvoiceService) loadMaster(ctx context.Context, id uuid.UUID) (*sponsorship.Sponsorship, error) {
	master, err := s.sponsorships.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrForbidden
		}
		return nil, err
	}
	return master, nil
}

// loadOpenMaster returns a draft sponsorship owned by the caller along with the caller's sponsor id
func (s *InvoiceService) loadOpenMaster(ctx context.Context, req form.Request, masterID uuid.UUID) (*sponsorship.Sponsorship, uuid.UUID, error) {
	sponsorID, ok := req.Principal.RoleID(identity.RoleSponsor)
	if !ok {
		return nil, uuid.Nil, shared.ErrForbidden
	}
	master, err := s.loadMaster(ctx, masterID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if !master.AcceptsInvoicesFrom(sponsorID) {
		return nil, uuid.Nil, shared.ErrForbidden
	}
	return master, sponsorID, nil
}

func (s *InvoiceService) load(ctx context.Context, id uuid.UUID) (*sponsorship.Invoice, *sponsorship.Sponsorship, error) {
	inv, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil, shared.ErrForbidden
		}
		return nil, nil, err
	}
	master, err := s.loadMaster(ctx, inv.SponsorshipID)
	if err != nil {
		return nil, nil, err
	}
	return inv, master, nil
}

// loadVisible authorises read access: the invoice is published or the caller owns its sponsorship
func (s *InvoiceService) loadVisible(ctx context.Context, req form.Request, id uuid.UUID) (*sponsorship.Invoice, *sponsorship.Sponsorship, error) {
	sponsorID, ok := req.Principal.RoleID(identity.RoleSponsor)
	if !ok {
		return nil, nil, shared.ErrForbidden
	}
	inv, master, err := s.load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !inv.IsPublished() && !master.IsOwnedBy(sponsorID) {
		return nil, nil, shared.ErrForbidden
	}
	return inv, master, nil
}

// loadEditable authorises write access: a draft invoice whose sponsorship the caller owns
func (s *InvoiceService) loadEditable(ctx context.Context, req form.Request, id uuid.UUID) (*sponsorship.Invoice, *sponsorship.Sponsorship, error) {
	sponsorID, ok := req.Principal.RoleID(identity.RoleSponsor)
	if !ok {
		return nil, nil, shared.ErrForbidden
	}
	inv, master, err := s.load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !inv.IsDraft() || !master.IsOwnedBy(sponsorID) {
		return nil, nil, shared.ErrForbidden
	}
	return inv, master, nil
}

func (s *InvoiceService) validate(ctx context.Context, inv *sponsorship.Invoice) error {
	errs := form.NewErrors()

	if !errs.HasErrors("code") {
		existing, err := s.invoices.FindByCode(ctx, inv.Code)
		switch {
		case errors.Is(err, shared.ErrNotFound):
		case err != nil:
			return err
		default:
			errs.State(existing.SameAs(inv), "code", i18n.KeyInvoiceDuplicated)
		}
	}

	if !errs.HasErrors("dueDate") {
		errs.State(inv.HasValidDueDate(), "dueDate", i18n.KeyInvoiceDueDateTooSoon)
	}

	if !errs.HasErrors("quantity") {
		errs.State(inv.HasPositiveQuantity(), "quantity", i18n.KeyInvoiceNegativeQuantity)
	}
	if !errs.HasErrors("quantity") {
		errs.State(inv.Quantity.FitsScale(), "quantity", i18n.KeyScale)
	}
	if !errs.HasErrors("quantity") {
		cfg, err := s.settings.Find(ctx)
		if err != nil {
			return err
		}
		errs.State(cfg.Accepts(inv.Quantity.Currency()), "quantity", i18n.KeyInvoiceCurrencyNotAccepted)
	}

	if !errs.HasErrors("tax") {
		errs.State(!inv.Tax.IsNegative() && inv.TaxAtMost(maxTax), "tax", i18n.KeyRange)
	}

	return errs.Err()
}

func (s *InvoiceService) publishEvents(ctx context.Context, inv *sponsorship.Invoice) {
	if err := shared.PublishAndClear(ctx, s.events, inv); err != nil {
		s.logger.Warn("Failed to publish invoice events",
			zap.String("invoice_id", inv.ID.String()),
			zap.Error(err))
	}
}
