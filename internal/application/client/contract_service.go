package client

import (
	"context"
	"errors"

	"github.com/acme/backend/internal/application/form"
	"github.com/acme/backend/internal/domain/contract"
	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/domain/project"
	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/system"
	"github.com/acme/backend/internal/infrastructure/i18n"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContractService runs the client-facing contract operations
type ContractService struct {
	contracts contract.ContractRepository
	projects  project.ProjectRepository
	settings  system.ConfigurationRepository
	events    shared.EventPublisher
	logger    *zap.Logger
}

// NewContractService creates a new ContractService
func NewContractService(
	contracts contract.ContractRepository,
	projects project.ProjectRepository,
	settings system.ConfigurationRepository,
	events shared.EventPublisher,
	logger *zap.Logger,
) *ContractService {
	return &ContractService{
		contracts: contracts,
		projects:  projects,
		settings:  settings,
		events:    events,
		logger:    logger,
	}
}

// ListMine lists the contracts of the calling client
func (s *ContractService) ListMine(ctx context.Context, req form.Request, filter ContractListFilter) ([]ContractListItem, int64, error) {
	clientID, ok := req.Principal.RoleID(identity.RoleClient)
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

	contracts, err := s.contracts.FindAllByClient(ctx, clientID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.contracts.CountByClient(ctx, clientID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	items := make([]ContractListItem, len(contracts))
	for i := range contracts {
		c := &contracts[i]
		items[i] = ContractListItem{
			ID:           c.ID,
			Code:         c.Code,
			ProviderName: c.ProviderName,
			CustomerName: c.CustomerName,
			Budget:       c.Budget,
			DraftMode:    i18n.YesNo(req.Locale, c.DraftMode),
		}
	}
	return items, total, nil
}

// Show returns a contract owned by the calling client
func (s *ContractService) Show(ctx context.Context, req form.Request, id uuid.UUID) (*ContractResponse, error) {
	c, err := s.loadOwned(ctx, req, id)
	if err != nil {
		return nil, err
	}
	return s.unbind(ctx, c)
}

// Create registers a new draft contract for the calling client
func (s *ContractService) Create(ctx context.Context, req form.Request, in ContractInput) (*ContractResponse, error) {
	clientID, ok := req.Principal.RoleID(identity.RoleClient)
	if !ok {
		return nil, shared.ErrForbidden
	}

	c := contract.NewContract(clientID)
	c.Bind(in.details())

	if err := s.validate(ctx, c); err != nil {
		return nil, err
	}

	c.MarkCreated()
	if err := s.contracts.Save(ctx, c); err != nil {
		return nil, form.OnDuplicate(err, "code", i18n.KeyContractDuplicated)
	}
	s.publishEvents(ctx, c)

	s.logger.Info("Contract created",
		zap.String("contract_id", c.ID.String()),
		zap.String("code", c.Code),
		zap.String("client_id", clientID.String()))

	return s.unbind(ctx, c)
}

// Update edits a draft contract owned by the calling client
func (s *ContractService) Update(ctx context.Context, req form.Request, id uuid.UUID, in ContractInput) (*ContractResponse, error) {
	c, err := s.loadEditable(ctx, req, id)
	if err != nil {
		return nil, err
	}

	if err := c.Edit(in.details()); err != nil {
		return nil, err
	}
	if err := s.validate(ctx, c); err != nil {
		return nil, err
	}

	if err := s.contracts.Save(ctx, c); err != nil {
		return nil, form.OnDuplicate(err, "code", i18n.KeyContractDuplicated)
	}

	s.logger.Info("Contract updated",
		zap.String("contract_id", c.ID.String()),
		zap.String("code", c.Code))

	return s.unbind(ctx, c)
}

// Publish binds and validates the submitted form one last time, then leaves draft mode
func (s *ContractService) Publish(ctx context.Context, req form.Request, id uuid.UUID, in ContractInput) (*ContractResponse, error) {
	c, err := s.loadEditable(ctx, req, id)
	if err != nil {
		return nil, err
	}

	if err := c.Edit(in.details()); err != nil {
		return nil, err
	}
	if err := s.validate(ctx, c); err != nil {
		return nil, err
	}
	if err := c.Publish(); err != nil {
		return nil, err
	}

	if err := s.contracts.Save(ctx, c); err != nil {
		return nil, form.OnDuplicate(err, "code", i18n.KeyContractDuplicated)
	}
	s.publishEvents(ctx, c)

	s.logger.Info("Contract published",
		zap.String("contract_id", c.ID.String()),
		zap.String("code", c.Code))

	return s.unbind(ctx, c)
}

// Delete removes a draft contract owned by the calling client
func (s *ContractService) Delete(ctx context.Context, req form.Request, id uuid.UUID) error {
	c, err := s.loadEditable(ctx, req, id)
	if err != nil {
		return err
	}
	if err := s.contracts.Delete(ctx, c.ID); err != nil {
		return err
	}
	s.logger.Info("Contract deleted", zap.String("contract_id", c.ID.String()))
	return nil
}

// AuthoriseEdit fails with ErrForbidden unless the caller may update, publish
// or delete the contract. Handlers call it before binding the submitted form.
func (s *ContractService) AuthoriseEdit(ctx context.Context, req form.Request, id uuid.UUID) error {
	_, err := s.loadEditable(ctx, req, id)
	return err
}

// loadOwned authorises read access: the contract exists and belongs to the caller
func (s *ContractService) loadOwned(ctx context.Context, req form.Request, id uuid.UUID) (*contract.Contract, error) {
	c, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrForbidden
		}
		return nil, err
	}
	if !req.Principal.HasRole(identity.RoleClient, c.ClientID) {
		return nil, shared.ErrForbidden
	}
	return c, nil
}

// loadEditable additionally requires the contract to still be in draft mode
func (s *ContractService) loadEditable(ctx context.Context, req form.Request, id uuid.UUID) (*contract.Contract, error) {
	c, err := s.loadOwned(ctx, req, id)
	if err != nil {
		return nil, err
	}
	if !c.IsDraft() {
		return nil, shared.ErrForbidden
	}
	return c, nil
}

func (s *ContractService) validate(ctx context.Context, c *contract.Contract) error {
	errs := form.NewErrors()

	if !errs.HasErrors("code") {
		existing, err := s.contracts.FindByCode(ctx, c.Code)
		switch {
		case errors.Is(err, shared.ErrNotFound):
		case err != nil:
			return err
		default:
			errs.State(existing.SameAs(c), "code", i18n.KeyContractDuplicated)
		}
	}

	if !errs.HasErrors("budget") {
		errs.State(c.HasPositiveBudget(), "budget", i18n.KeyContractNegativeAmount)
	}
	if !errs.HasErrors("budget") {
		errs.State(c.Budget.FitsScale(), "budget", i18n.KeyScale)
	}
	if !errs.HasErrors("budget") {
		cfg, err := s.settings.Find(ctx)
		if err != nil {
			return err
		}
		errs.State(cfg.Accepts(c.Budget.Currency()), "budget", i18n.KeyContractCurrencyNotAccepted)
	}

	if !errs.HasErrors("project") {
		errs.State(s.projectExists(ctx, c.ProjectID), "project", i18n.KeyContractInvalidProject)
	}

	return errs.Err()
}

func (s *ContractService) projectExists(ctx context.Context, id uuid.UUID) bool {
	if id == uuid.Nil {
		return false
	}
	_, err := s.projects.FindByID(ctx, id)
	return err == nil
}

func (s *ContractService) unbind(ctx context.Context, c *contract.Contract) (*ContractResponse, error) {
	projects, err := s.projects.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToContractResponse(c, form.ProjectChoices(projects, c.ProjectID)), nil
}

func (s *ContractService) publishEvents(ctx context.Context, c *contract.Contract) {
	if err := shared.PublishAndClear(ctx, s.events, c); err != nil {
		s.logger.Warn("Failed to publish contract events",
			zap.String("contract_id", c.ID.String()),
			zap.Error(err))
	}
}
