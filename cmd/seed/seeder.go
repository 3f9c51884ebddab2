package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/acme/backend/internal/domain/contract"
	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/domain/project"
	"github.com/acme/backend/internal/domain/shared"
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/acme/backend/internal/domain/sponsorship"
	"github.com/acme/backend/internal/domain/system"
	"github.com/acme/backend/internal/domain/training"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Counts controls how much demo data is generated
type Counts struct {
	// Accounts per role; usernames are <role><n>, e.g. client1
	Accounts int
	Projects int
	// Records per client, developer and sponsor
	PerOwner int
	// Invoices per sponsorship
	Invoices int
}

// Repositories are the stores the seeder writes to
type Repositories struct {
	Accounts     identity.UserAccountRepository
	Profiles     identity.RoleProfileRepository
	Projects     project.ProjectRepository
	Contracts    contract.ContractRepository
	Modules      training.TrainingModuleRepository
	Sponsorships sponsorship.SponsorshipRepository
	Invoices     sponsorship.InvoiceRepository
	Settings     system.ConfigurationRepository
}

// Summary reports what a run created
type Summary struct {
	Accounts     int
	Projects     int
	Contracts    int
	Modules      int
	Sponsorships int
	Invoices     int
}

// Seeder generates demo data with gofakeit
type Seeder struct {
	repos  Repositories
	faker  *gofakeit.Faker
	logger *zap.Logger
	now    time.Time
}

// NewSeeder creates a seeder. The same seed always produces the same data.
func NewSeeder(repos Repositories, seed uint64, logger *zap.Logger) *Seeder {
	return &Seeder{
		repos:  repos,
		faker:  gofakeit.New(seed),
		logger: logger,
		now:    time.Now().UTC().Truncate(time.Second),
	}
}

type owner struct {
	role      identity.RoleName
	profileID uuid.UUID
}

// Run seeds the configuration, the accounts of every role and their records.
// Existing accounts are skipped, so running twice does not duplicate users.
func (s *Seeder) Run(ctx context.Context, counts Counts) (Summary, error) {
	var summary Summary

	currency, err := s.seedConfiguration(ctx)
	if err != nil {
		return summary, err
	}

	var owners []owner
	var adminID uuid.UUID
	for _, role := range identity.AllRoles {
		for n := 1; n <= counts.Accounts; n++ {
			o, created, err := s.seedAccount(ctx, role, n)
			if err != nil {
				return summary, err
			}
			if !created {
				continue
			}
			summary.Accounts++
			if role == identity.RoleAdministrator && adminID == uuid.Nil {
				adminID = o.profileID
			}
			owners = append(owners, o)
		}
	}

	projects, err := s.seedProjects(ctx, counts.Projects, currency, adminID)
	if err != nil {
		return summary, err
	}
	summary.Projects = len(projects)
	if len(projects) == 0 {
		return summary, nil
	}

	for _, o := range owners {
		for i := 0; i < counts.PerOwner; i++ {
			p := projects[s.faker.IntN(len(projects))]
			switch o.role {
			case identity.RoleClient:
				if err := s.seedContract(ctx, o.profileID, p, currency); err != nil {
					return summary, err
				}
				summary.Contracts++
			case identity.RoleDeveloper:
				if err := s.seedModule(ctx, o.profileID, p); err != nil {
					return summary, err
				}
				summary.Modules++
			case identity.RoleSponsor:
				invoices, err := s.seedSponsorship(ctx, o.profileID, p, currency, counts.Invoices)
				if err != nil {
					return summary, err
				}
				summary.Sponsorships++
				summary.Invoices += invoices
			}
		}
	}

	return summary, nil
}

func (s *Seeder) seedConfiguration(ctx context.Context) (valueobject.Currency, error) {
	existing, err := s.repos.Settings.Find(ctx)
	if err == nil {
		return existing.SystemCurrency, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return "", fmt.Errorf("load system configuration: %w", err)
	}

	cfg, err := system.NewConfiguration(valueobject.DefaultCurrency, "EUR,USD,GBP")
	if err != nil {
		return "", err
	}
	if err := s.repos.Settings.Save(ctx, cfg); err != nil {
		return "", fmt.Errorf("save system configuration: %w", err)
	}
	s.logger.Info("System configuration created", zap.String("currency", string(cfg.SystemCurrency)))
	return cfg.SystemCurrency, nil
}

func (s *Seeder) seedAccount(ctx context.Context, role identity.RoleName, n int) (owner, bool, error) {
	username := fmt.Sprintf("%s%d", role, n)
	exists, err := s.repos.Accounts.ExistsByUsername(ctx, username)
	if err != nil {
		return owner{}, false, err
	}
	if exists {
		s.logger.Debug("Account exists, skipping", zap.String("username", username))
		return owner{}, false, nil
	}

	account, err := identity.NewUserAccount(username, username+"-password")
	if err != nil {
		return owner{}, false, err
	}

	// profiles reference the account, the role binding references the profile
	if err := s.repos.Accounts.Save(ctx, account); err != nil {
		return owner{}, false, fmt.Errorf("save account %s: %w", username, err)
	}
	profileID, err := s.saveProfile(ctx, role, account.ID)
	if err != nil {
		return owner{}, false, fmt.Errorf("save %s profile: %w", role, err)
	}
	if err := account.BindRole(role, profileID); err != nil {
		return owner{}, false, err
	}
	if err := s.repos.Accounts.Save(ctx, account); err != nil {
		return owner{}, false, fmt.Errorf("save account %s: %w", username, err)
	}

	s.logger.Info("Account created", zap.String("username", username), zap.String("role", string(role)))
	return owner{role: role, profileID: profileID}, true, nil
}

func (s *Seeder) saveProfile(ctx context.Context, role identity.RoleName, accountID uuid.UUID) (uuid.UUID, error) {
	f := s.faker
	switch role {
	case identity.RoleClient:
		p := &identity.Client{
			BaseEntity:     shared.NewBaseEntity(),
			UserAccountID:  accountID,
			Identification: fmt.Sprintf("CLI-%04d", f.Number(1, 9999)),
			CompanyName:    f.Company(),
			Type:           identity.ClientTypeCompany,
			Email:          f.Email(),
			Link:           f.URL(),
		}
		if f.Bool() {
			p.Type = identity.ClientTypeIndividual
		}
		return p.ID, s.repos.Profiles.SaveClient(ctx, p)
	case identity.RoleDeveloper:
		p := &identity.Developer{
			BaseEntity:     shared.NewBaseEntity(),
			UserAccountID:  accountID,
			Degree:         f.JobTitle(),
			Specialisation: f.JobDescriptor(),
			Skills:         strings.Join([]string{f.ProgrammingLanguage(), f.ProgrammingLanguage()}, ", "),
			Email:          f.Email(),
			Link:           f.URL(),
		}
		return p.ID, s.repos.Profiles.SaveDeveloper(ctx, p)
	case identity.RoleSponsor:
		p := &identity.Sponsor{
			BaseEntity:    shared.NewBaseEntity(),
			UserAccountID: accountID,
			Name:          f.Company(),
			Benefits:      f.Sentence(8),
			Email:         f.Email(),
			Link:          f.URL(),
		}
		return p.ID, s.repos.Profiles.SaveSponsor(ctx, p)
	default:
		p := &identity.Administrator{
			BaseEntity:    shared.NewBaseEntity(),
			UserAccountID: accountID,
		}
		return p.ID, s.repos.Profiles.SaveAdministrator(ctx, p)
	}
}

// seedProjects creates n projects and publishes most of them. Only the
// published ones are returned since roles can only refer to those.
func (s *Seeder) seedProjects(ctx context.Context, n int, currency valueobject.Currency, managerID uuid.UUID) ([]*project.Project, error) {
	var published []*project.Project
	for i := 1; i <= n; i++ {
		code := fmt.Sprintf("%s-%04d", strings.ToUpper(s.faker.LetterN(3)), i)
		if _, err := s.repos.Projects.FindByCode(ctx, code); err == nil {
			continue
		}

		cost := s.money(1000, 50000, currency)
		p, err := project.NewProject(code, s.faker.AppName(), cost, managerID)
		if err != nil {
			return nil, err
		}
		p.Abstract = s.faker.Sentence(12)
		p.Link = s.faker.URL()

		// one in five stays in draft
		if i%5 != 0 {
			if err := p.Publish(); err != nil {
				return nil, err
			}
			published = append(published, p)
		}
		if err := s.repos.Projects.Save(ctx, p); err != nil {
			return nil, fmt.Errorf("save project %s: %w", code, err)
		}
	}
	return published, nil
}

func (s *Seeder) seedContract(ctx context.Context, clientID uuid.UUID, p *project.Project, currency valueobject.Currency) error {
	c := contract.NewContract(clientID)
	c.Bind(contract.Details{
		Code:                s.shortCode(),
		InstantiationMoment: s.past(),
		ProviderName:        s.faker.Company(),
		CustomerName:        s.faker.Name(),
		Goals:               s.faker.Sentence(10),
		Budget:              s.money(100, p.Cost.Amount().IntPart(), currency),
		ProjectID:           p.ID,
	})
	if s.faker.Bool() {
		if err := c.Publish(); err != nil {
			return err
		}
	}
	return s.repos.Contracts.Save(ctx, c)
}

func (s *Seeder) seedModule(ctx context.Context, developerID uuid.UUID, p *project.Project) error {
	m := training.NewTrainingModule(developerID)
	m.Bind(training.Fields{
		Code:               s.shortCode(),
		CreationMoment:     s.past(),
		Details:            s.faker.Paragraph(1, 3, 10, " "),
		DifficultyLevel:    training.Difficulties[s.faker.IntN(len(training.Difficulties))],
		Link:               s.faker.URL(),
		EstimatedTotalTime: s.faker.Number(1, 40),
		ProjectID:          p.ID,
	})
	if s.faker.Bool() {
		if err := m.Publish(); err != nil {
			return err
		}
	}
	return s.repos.Modules.Save(ctx, m)
}

// seedSponsorship creates a sponsorship with its invoices
func (s *Seeder) seedSponsorship(ctx context.Context, sponsorID uuid.UUID, p *project.Project, currency valueobject.Currency, invoices int) (int, error) {
	kind := sponsorship.TypeFinancial
	if s.faker.IntN(4) == 0 {
		kind = sponsorship.TypeInKind
	}
	sp, err := sponsorship.NewSponsorship(sponsorID, p.ID, s.shortCode(), s.money(500, 20000, currency), kind)
	if err != nil {
		return 0, err
	}
	sp.Email = s.faker.Email()
	sp.Link = s.faker.URL()
	// published sponsorships carry published invoices and feed the dashboard
	publish := s.faker.IntN(3) != 0
	if publish {
		if err := sp.Publish(); err != nil {
			return 0, err
		}
	}
	if err := s.repos.Sponsorships.Save(ctx, sp); err != nil {
		return 0, err
	}

	for i := 0; i < invoices; i++ {
		inv := sponsorship.NewInvoice(sp.ID)
		registered := s.past()
		inv.Bind(sponsorship.InvoiceFields{
			Code:             fmt.Sprintf("IN-%04d-%04d", registered.Year(), s.faker.Number(0, 9999)),
			RegistrationTime: registered,
			DueDate:          registered.AddDate(0, sponsorship.MinimumDueInterval+s.faker.IntN(3), 0),
			Quantity:         s.money(50, 2000, currency),
			Tax:              decimal.NewFromInt(int64(s.faker.IntN(22))),
			Link:             s.faker.URL(),
		})
		if publish {
			if err := inv.MarkPublished(); err != nil {
				return i, err
			}
		}
		if err := s.repos.Invoices.Save(ctx, inv); err != nil {
			return i, err
		}
	}
	return invoices, nil
}

// shortCode returns a code in the AAA-000 form contracts, modules and sponsorships use
func (s *Seeder) shortCode() string {
	return fmt.Sprintf("%s-%03d", strings.ToUpper(s.faker.LetterN(3)), s.faker.Number(0, 999))
}

func (s *Seeder) money(low, high int64, currency valueobject.Currency) valueobject.Money {
	if high <= low {
		high = low + 1
	}
	amount := decimal.NewFromFloat(s.faker.Float64Range(float64(low), float64(high))).Round(2)
	return valueobject.MustMoney(amount.String(), currency)
}

// past returns a moment within the last year
func (s *Seeder) past() time.Time {
	return s.now.Add(-time.Duration(s.faker.IntN(365*24)+24) * time.Hour)
}
