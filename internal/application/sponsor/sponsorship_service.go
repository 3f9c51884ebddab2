package sponsor

import (
	"context"
	"errors"

	"github.com/acme/backend/internal/application/form"
	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/domain/project"
	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/sponsorship"
	"github.com/acme/backend/internal/domain/system"
	"github.com/acme/backend/internal/infrastructure/i18n"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SponsorshipService runs the sponsor-facing sponsorship operations
type SponsorshipService struct {
	sponsorships sponsorship.SponsorshipRepository
	projects     project.ProjectRepository
	settings     system.ConfigurationRepository
	events       shared.EventPublisher
	logger       *zap.Logger
}

// NewSponsorshipService creates a new SponsorshipService
func NewSponsorshipService(
	sponsorships sponsorship.SponsorshipRepository,
	projects project.ProjectRepository,
	settings system.ConfigurationRepository,
	events shared.EventPublisher,
	logger *zap.Logger,
) *SponsorshipService {
	return &SponsorshipService{
		sponsorships: sponsorships,
		projects:     projects,
		settings:     settings,
		events:       events,
		logger:       logger,
	}
}

// ListMine lists the sponsorships of the calling sponsor
func (s *SponsorshipService) ListMine(ctx context.Context, req form.Request, filter SponsorshipListFilter) ([]SponsorshipListItem, int64, error) {
	sponsorID, ok := req.Principal.RoleID(identity.RoleSponsor)
	if !ok {
		return nil, 0, shared.ErrForbidden
	}

	if filter.OrderBy == "" {
		filter.OrderBy = "code"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
	}.Normalize()

	list, err := s.sponsorships.FindAllBySponsor(ctx, sponsorID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.sponsorships.CountBySponsor(ctx, sponsorID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	items := make([]SponsorshipListItem, len(list))
	for i := range list {
		sp := &list[i]
		items[i] = SponsorshipListItem{
			ID:        sp.ID,
			Code:      sp.Code,
			Moment:    sp.Moment,
			Amount:    sp.Amount,
			Type:      string(sp.Type),
			DraftMode: i18n.YesNo(req.Locale, sp.DraftMode),
		}
	}
	return items, total, nil
}

// Show returns a sponsorship that is published or owned by the caller
func (s *SponsorshipService) Show(ctx context.Context, req form.Request, id uuid.UUID) (*SponsorshipResponse, error) {
	sponsorID, ok := req.Principal.RoleID(identity.RoleSponsor)
	if !ok {
		return nil, shared.ErrForbidden
	}
	sp, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !sp.IsVisibleTo(sponsorID) {
		return nil, shared.ErrForbidden
	}
	return s.unbind(ctx, sp, sponsorID)
}

// Publish freezes a draft sponsorship owned by the caller
func (s *SponsorshipService) Publish(ctx context.Context, req form.Request, id uuid.UUID) (*SponsorshipResponse, error) {
	sponsorID, ok := req.Principal.RoleID(identity.RoleSponsor)
	if !ok {
		return nil, shared.ErrForbidden
	}
	sp, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !sp.AcceptsInvoicesFrom(sponsorID) {
		return nil, shared.ErrForbidden
	}

	if err := s.validate(ctx, sp); err != nil {
		return nil, err
	}
	if err := sp.Publish(); err != nil {
		return nil, err
	}
	if err := s.sponsorships.Save(ctx, sp); err != nil {
		return nil, err
	}
	if err := shared.PublishAndClear(ctx, s.events, sp); err != nil {
		s.logger.Warn("Failed to publish sponsorship events",
			zap.String("sponsorship_id", sp.ID.String()),
			zap.Error(err))
	}

	s.logger.Info("Sponsorship published",
		zap.String("sponsorship_id", sp.ID.String()),
		zap.String("code", sp.Code))

	return s.unbind(ctx, sp, sponsorID)
}

func (s *SponsorshipService) load(ctx context.Context, id uuid.UUID) (*sponsorship.Sponsorship, error) {
	sp, err := s.sponsorships.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrForbidden
		}
		return nil, err
	}
	return sp, nil
}

func (s *SponsorshipService) validate(ctx context.Context, sp *sponsorship.Sponsorship) error {
	errs := form.NewErrors()

	errs.State(!sp.Amount.IsEmpty() && sp.Amount.IsPositive(), "amount", i18n.KeySponsorshipNegativeAmount)
	if !errs.HasErrors("amount") {
		errs.State(sp.Amount.FitsScale(), "amount", i18n.KeyScale)
	}
	if !errs.HasErrors("amount") {
		cfg, err := s.settings.Find(ctx)
		if err != nil {
			return err
		}
		errs.State(cfg.Accepts(sp.Amount.Currency()), "amount", i18n.KeySponsorshipCurrencyNotAccepted)
	}

	return errs.Err()
}

func (s *SponsorshipService) unbind(ctx context.Context, sp *sponsorship.Sponsorship, sponsorID uuid.UUID) (*SponsorshipResponse, error) {
	projects, err := s.projects.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToSponsorshipResponse(sp, form.ProjectChoices(projects, sp.ProjectID), sp.AcceptsInvoicesFrom(sponsorID)), nil
}
