package system

import "context"

// ConfigurationRepository reads and writes the system configuration
type ConfigurationRepository interface {
	// Find returns the configuration row, or shared.ErrNotFound before seeding
	Find(ctx context.Context) (*Configuration, error)
	Save(ctx context.Context, cfg *Configuration) error
}
