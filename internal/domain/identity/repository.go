package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserAccountRepository persists user accounts together with their role bindings
type UserAccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserAccount, error)
	FindByUsername(ctx context.Context, username string) (*UserAccount, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Save(ctx context.Context, account *UserAccount) error
}

// RoleProfileRepository reads and writes role profiles
type RoleProfileRepository interface {
	FindClientByID(ctx context.Context, id uuid.UUID) (*Client, error)
	FindDeveloperByID(ctx context.Context, id uuid.UUID) (*Developer, error)
	FindSponsorByID(ctx context.Context, id uuid.UUID) (*Sponsor, error)
	FindAllSponsorIDs(ctx context.Context) ([]uuid.UUID, error)
	SaveClient(ctx context.Context, client *Client) error
	SaveDeveloper(ctx context.Context, developer *Developer) error
	SaveSponsor(ctx context.Context, sponsor *Sponsor) error
	SaveAdministrator(ctx context.Context, admin *Administrator) error
}
