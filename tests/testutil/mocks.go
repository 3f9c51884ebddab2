package testutil

import (
	"context"
	"time"

	"github.com/acme/backend/internal/domain/contract"
	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/domain/project"
	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/sponsorship"
	"github.com/acme/backend/internal/domain/system"
	"github.com/acme/backend/internal/domain/training"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Project
// =============================================================================

// MockProjectRepository is a mock implementation of project.ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjectRepository) FindByCode(ctx context.Context, code string) (*project.Project, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjectRepository) FindAll(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]project.Project)
	return items, args.Error(1)
}

func (m *MockProjectRepository) FindAllPublished(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]project.Project)
	return items, args.Error(1)
}

func (m *MockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// =============================================================================
// System configuration
// =============================================================================

// MockConfigurationRepository is a mock implementation of system.ConfigurationRepository
type MockConfigurationRepository struct {
	mock.Mock
}

func (m *MockConfigurationRepository) Find(ctx context.Context) (*system.Configuration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*system.Configuration), args.Error(1)
}

func (m *MockConfigurationRepository) Save(ctx context.Context, cfg *system.Configuration) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

// =============================================================================
// Contract
// =============================================================================

// MockContractRepository is a mock implementation of contract.ContractRepository
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*contract.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contract.Contract), args.Error(1)
}

func (m *MockContractRepository) FindByCode(ctx context.Context, code string) (*contract.Contract, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contract.Contract), args.Error(1)
}

func (m *MockContractRepository) FindAllByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]contract.Contract, error) {
	args := m.Called(ctx, clientID, filter)
	items, _ := args.Get(0).([]contract.Contract)
	return items, args.Error(1)
}

func (m *MockContractRepository) CountByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, clientID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContractRepository) Save(ctx context.Context, c *contract.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =============================================================================
// Training module
// =============================================================================

// MockTrainingModuleRepository is a mock implementation of training.TrainingModuleRepository
type MockTrainingModuleRepository struct {
	mock.Mock
}

func (m *MockTrainingModuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*training.TrainingModule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*training.TrainingModule), args.Error(1)
}

func (m *MockTrainingModuleRepository) FindByCode(ctx context.Context, code string) (*training.TrainingModule, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*training.TrainingModule), args.Error(1)
}

func (m *MockTrainingModuleRepository) FindAllByDeveloper(ctx context.Context, developerID uuid.UUID, filter shared.Filter) ([]training.TrainingModule, error) {
	args := m.Called(ctx, developerID, filter)
	items, _ := args.Get(0).([]training.TrainingModule)
	return items, args.Error(1)
}

func (m *MockTrainingModuleRepository) CountByDeveloper(ctx context.Context, developerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, developerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTrainingModuleRepository) Save(ctx context.Context, module *training.TrainingModule) error {
	args := m.Called(ctx, module)
	return args.Error(0)
}

func (m *MockTrainingModuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =============================================================================
// Sponsorship and invoice
// =============================================================================

// MockSponsorshipRepository is a mock implementation of sponsorship.SponsorshipRepository
type MockSponsorshipRepository struct {
	mock.Mock
}

func (m *MockSponsorshipRepository) FindByID(ctx context.Context, id uuid.UUID) (*sponsorship.Sponsorship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sponsorship.Sponsorship), args.Error(1)
}

func (m *MockSponsorshipRepository) FindAllBySponsor(ctx context.Context, sponsorID uuid.UUID, filter shared.Filter) ([]sponsorship.Sponsorship, error) {
	args := m.Called(ctx, sponsorID, filter)
	items, _ := args.Get(0).([]sponsorship.Sponsorship)
	return items, args.Error(1)
}

func (m *MockSponsorshipRepository) CountBySponsor(ctx context.Context, sponsorID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, sponsorID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSponsorshipRepository) FindPublishedBySponsor(ctx context.Context, sponsorID uuid.UUID) ([]sponsorship.Sponsorship, error) {
	args := m.Called(ctx, sponsorID)
	items, _ := args.Get(0).([]sponsorship.Sponsorship)
	return items, args.Error(1)
}

func (m *MockSponsorshipRepository) Save(ctx context.Context, s *sponsorship.Sponsorship) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// MockInvoiceRepository is a mock implementation of sponsorship.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*sponsorship.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sponsorship.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByCode(ctx context.Context, code string) (*sponsorship.Invoice, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sponsorship.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAllBySponsorship(ctx context.Context, sponsorshipID uuid.UUID) ([]sponsorship.Invoice, error) {
	args := m.Called(ctx, sponsorshipID)
	items, _ := args.Get(0).([]sponsorship.Invoice)
	return items, args.Error(1)
}

func (m *MockInvoiceRepository) FindAllBySponsor(ctx context.Context, sponsorID uuid.UUID) ([]sponsorship.Invoice, error) {
	args := m.Called(ctx, sponsorID)
	items, _ := args.Get(0).([]sponsorship.Invoice)
	return items, args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *sponsorship.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =============================================================================
// Identity
// =============================================================================

// MockUserAccountRepository is a mock implementation of identity.UserAccountRepository
type MockUserAccountRepository struct {
	mock.Mock
}

func (m *MockUserAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.UserAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.UserAccount), args.Error(1)
}

func (m *MockUserAccountRepository) FindByUsername(ctx context.Context, username string) (*identity.UserAccount, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.UserAccount), args.Error(1)
}

func (m *MockUserAccountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserAccountRepository) Save(ctx context.Context, account *identity.UserAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// MockRoleProfileRepository is a mock implementation of identity.RoleProfileRepository
type MockRoleProfileRepository struct {
	mock.Mock
}

func (m *MockRoleProfileRepository) FindClientByID(ctx context.Context, id uuid.UUID) (*identity.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Client), args.Error(1)
}

func (m *MockRoleProfileRepository) FindDeveloperByID(ctx context.Context, id uuid.UUID) (*identity.Developer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Developer), args.Error(1)
}

func (m *MockRoleProfileRepository) FindSponsorByID(ctx context.Context, id uuid.UUID) (*identity.Sponsor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Sponsor), args.Error(1)
}

func (m *MockRoleProfileRepository) FindAllSponsorIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]uuid.UUID)
	return items, args.Error(1)
}

func (m *MockRoleProfileRepository) SaveClient(ctx context.Context, client *identity.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockRoleProfileRepository) SaveDeveloper(ctx context.Context, developer *identity.Developer) error {
	return m.Called(ctx, developer).Error(0)
}

func (m *MockRoleProfileRepository) SaveSponsor(ctx context.Context, sponsor *identity.Sponsor) error {
	return m.Called(ctx, sponsor).Error(0)
}

func (m *MockRoleProfileRepository) SaveAdministrator(ctx context.Context, admin *identity.Administrator) error {
	return m.Called(ctx, admin).Error(0)
}

// =============================================================================
// Dashboard cache
// =============================================================================

// MockDashboardCache is a mock implementation of sponsorship.DashboardCache
type MockDashboardCache struct {
	mock.Mock
}

func (m *MockDashboardCache) Get(ctx context.Context, sponsorID uuid.UUID) (*sponsorship.Dashboard, error) {
	args := m.Called(ctx, sponsorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sponsorship.Dashboard), args.Error(1)
}

func (m *MockDashboardCache) Set(ctx context.Context, dashboard *sponsorship.Dashboard, ttl time.Duration) error {
	return m.Called(ctx, dashboard, ttl).Error(0)
}

func (m *MockDashboardCache) Delete(ctx context.Context, sponsorID uuid.UUID) error {
	return m.Called(ctx, sponsorID).Error(0)
}

var (
	_ project.ProjectRepository         = (*MockProjectRepository)(nil)
	_ system.ConfigurationRepository    = (*MockConfigurationRepository)(nil)
	_ contract.ContractRepository       = (*MockContractRepository)(nil)
	_ training.TrainingModuleRepository = (*MockTrainingModuleRepository)(nil)
	_ sponsorship.SponsorshipRepository = (*MockSponsorshipRepository)(nil)
	_ sponsorship.InvoiceRepository     = (*MockInvoiceRepository)(nil)
	_ identity.UserAccountRepository    = (*MockUserAccountRepository)(nil)
	_ identity.RoleProfileRepository    = (*MockRoleProfileRepository)(nil)
	_ sponsorship.DashboardCache        = (*MockDashboardCache)(nil)
	_ shared.EventPublisher             = (*RecordingPublisher)(nil)
)
