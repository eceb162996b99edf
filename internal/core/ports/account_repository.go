package ports

import (
	"context"

	"github.com/codewithvanilson/security-service/internal/core/domain"
)

// AccountRepository defines the persistence interface for accounts.
// Lookups return domain.ErrAccountNotFound explicitly when no row matches;
// implementations must never hand back empty sentinel objects.
type AccountRepository interface {
	FindAll(ctx context.Context) ([]domain.Account, error)
	FindByID(ctx context.Context, id uint) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	// ExistsByUsername reports whether an account other than excludeID holds
	// the username. Pass excludeID 0 to consider every account.
	ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Delete(ctx context.Context, id uint) error
}

// RoleRepository resolves roles by their stored name.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
}
