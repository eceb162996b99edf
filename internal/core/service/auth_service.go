package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/codewithvanilson/security-service/internal/core/domain"
	"github.com/codewithvanilson/security-service/internal/core/ports"
)

// AuthService implements principal loading and credential verification.
// It is plugged into the Basic-auth middleware and runs once per request.
type AuthService struct {
	accounts ports.AccountRepository
	logger   zerolog.Logger
}

func NewAuthService(accounts ports.AccountRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{accounts: accounts, logger: logger}
}

// LoadPrincipal fetches the account by exact username and derives the
// request-scoped Principal. An account without roles is rejected here,
// before any credential comparison happens.
func (s *AuthService) LoadPrincipal(ctx context.Context, username string) (*domain.Principal, error) {
	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		s.logger.Warn().Str("username", username).Msg("username not found")
		return nil, err
	}
	if !account.HasRoles() {
		s.logger.Warn().Str("username", username).Msg("account has no roles")
		return nil, domain.ErrNoRolesAssigned
	}
	return domain.NewPrincipal(account), nil
}

// Verify compares the supplied plaintext against the stored hash using
// bcrypt's own match routine and validates the account status flags.
func (s *AuthService) Verify(principal *domain.Principal, password string) error {
	if password == "" || principal.PasswordHash == "" {
		s.logger.Debug().Msg("authentication failed: no credentials provided")
		return domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash), []byte(password)); err != nil {
		s.logger.Debug().Str("username", principal.Username).Msg("authentication failed: password does not match")
		return domain.ErrInvalidCredentials
	}
	if !principal.Enabled {
		return domain.ErrAccountDisabled
	}
	if !principal.AccountNonLocked {
		return domain.ErrAccountLocked
	}
	if !principal.AccountNonExpired {
		return domain.ErrAccountExpired
	}
	if !principal.CredentialsNonExpired {
		return domain.ErrCredentialsExpired
	}
	return nil
}

// Authenticate runs one full login attempt: load, then verify. On success
// the returned principal carries the authority set consumed by the gate
// middleware; it is discarded when the request finishes.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.Principal, error) {
	principal, err := s.LoadPrincipal(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.Verify(principal, password); err != nil {
		return nil, err
	}
	s.logger.Info().Str("username", username).Msg("authenticated")
	return principal, nil
}
