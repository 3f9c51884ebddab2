// Command seed fills a development database with demo accounts and records.
//
// Every role gets accounts named <role><n> whose password is <role><n>-password,
// e.g. sponsor1 / sponsor1-password.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/acme/backend/internal/infrastructure/config"
	"github.com/acme/backend/internal/infrastructure/logger"
	"github.com/acme/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	var (
		counts   Counts
		seed     uint64
		logLevel string
		timeout  time.Duration
	)

	flag.IntVar(&counts.Accounts, "accounts", 2, "Accounts per role")
	flag.IntVar(&counts.Projects, "projects", 10, "Projects to create")
	flag.IntVar(&counts.PerOwner, "per-owner", 3, "Contracts, training modules or sponsorships per account")
	flag.IntVar(&counts.Invoices, "invoices", 2, "Invoices per sponsorship")
	flag.Uint64Var(&seed, "seed", 42, "Random seed; 0 picks a random one")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.DurationVar(&timeout, "timeout", 5*time.Minute, "Abort after this long")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}
	if cfg.App.Env == "production" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := persistence.NewDatabase(&cfg.Database, log, logLevel)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if db.Driver == "sqlite" {
		if err := persistence.AutoMigrate(db.DB); err != nil {
			log.Fatal("Auto-migration failed", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var summary Summary
	err = db.Transaction(ctx, func(tx *gorm.DB) error {
		summary, err = NewSeeder(repositories(tx), seed, log).Run(ctx, counts)
		return err
	})
	if err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}

	log.Info("Seeding completed",
		zap.Int("accounts", summary.Accounts),
		zap.Int("projects", summary.Projects),
		zap.Int("contracts", summary.Contracts),
		zap.Int("training_modules", summary.Modules),
		zap.Int("sponsorships", summary.Sponsorships),
		zap.Int("invoices", summary.Invoices),
	)
}

func repositories(db *gorm.DB) Repositories {
	return Repositories{
		Accounts:     persistence.NewGormUserAccountRepository(db),
		Profiles:     persistence.NewGormRoleProfileRepository(db),
		Projects:     persistence.NewGormProjectRepository(db),
		Contracts:    persistence.NewGormContractRepository(db),
		Modules:      persistence.NewGormTrainingModuleRepository(db),
		Sponsorships: persistence.NewGormSponsorshipRepository(db),
		Invoices:     persistence.NewGormInvoiceRepository(db),
		Settings:     persistence.NewGormConfigurationRepository(db),
	}
}
