package ports

import (
	"context"

	"github.com/codewithvanilson/security-service/internal/core/domain"
)

// CreateAccountInput carries the fields accepted when opening an account.
// Password is the plaintext credential; it is hashed exactly once, inside
// the service. Roles holds role names; when empty the default role applies.
type CreateAccountInput struct {
	Username          string
	Password          string
	Roles             []string
	Enabled           bool
	Locked            bool
	Expired           bool
	CredentialExpired bool
}

// UpdateAccountInput overwrites every mutable field of an account. There is
// no partial patch: the role set replaces the stored one wholesale.
type UpdateAccountInput struct {
	Username          string
	Password          string
	Roles             []string
	Enabled           bool
	Locked            bool
	Expired           bool
	CredentialExpired bool
}

type AccountService interface {
	FindAll(ctx context.Context) ([]domain.Account, error)
	FindByID(ctx context.Context, id uint) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	Create(ctx context.Context, input CreateAccountInput) (*domain.Account, error)
	Update(ctx context.Context, id uint, input UpdateAccountInput) (*domain.Account, error)
	Delete(ctx context.Context, id uint) error
}
