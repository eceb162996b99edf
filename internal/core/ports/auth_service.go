package ports

import (
	"context"

	"github.com/codewithvanilson/security-service/internal/core/domain"
)

// AuthService answers "is this credential valid for this username". It does
// not decide route-level access; that is the gate middleware's job.
type AuthService interface {
	// LoadPrincipal fetches the account and converts it to a Principal.
	// Fails with domain.ErrAccountNotFound or domain.ErrNoRolesAssigned.
	LoadPrincipal(ctx context.Context, username string) (*domain.Principal, error)
	// Verify checks the supplied plaintext against the principal's stored
	// hash and validates the status flags.
	Verify(principal *domain.Principal, password string) error
	// Authenticate composes LoadPrincipal and Verify for one login attempt.
	Authenticate(ctx context.Context, username, password string) (*domain.Principal, error)
}
