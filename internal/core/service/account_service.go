package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/codewithvanilson/security-service/internal/core/domain"
	"github.com/codewithvanilson/security-service/internal/core/ports"
)

// AccountService orchestrates account CRUD: uniqueness checks, default role
// assignment and credential hashing. Plaintext passwords are hashed exactly
// once, here, and treated as opaque everywhere else.
type AccountService struct {
	accounts ports.AccountRepository
	roles    ports.RoleRepository
	logger   zerolog.Logger
}

func NewAccountService(accounts ports.AccountRepository, roles ports.RoleRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{accounts: accounts, roles: roles, logger: logger}
}

func (s *AccountService) FindAll(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accounts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("count", len(accounts)).Msg("found accounts")
	return accounts, nil
}

func (s *AccountService) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, id)
}

func (s *AccountService) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		s.logger.Warn().Str("username", username).Msg("account not found")
		return nil, err
	}
	return account, nil
}

// Create opens a new account. The username must be unused, the plaintext is
// hashed before anything is persisted, and an empty role list falls back to
// the default ROLE_USER.
func (s *AccountService) Create(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
	exists, err := s.accounts.ExistsByUsername(ctx, input.Username, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Error().Str("username", input.Username).Msg("username already exists")
		return nil, fmt.Errorf("%w: %s", domain.ErrUsernameExists, input.Username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	roleNames := input.Roles
	if len(roleNames) == 0 {
		roleNames = []string{domain.RoleUser}
	}
	roles, err := s.resolveRoles(ctx, roleNames)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Username:          input.Username,
		PasswordHash:      string(hash),
		Enabled:           input.Enabled,
		Locked:            input.Locked,
		Expired:           input.Expired,
		CredentialExpired: input.CredentialExpired,
		Roles:             roles,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create account")
		return nil, err
	}
	s.logger.Info().Str("username", created.Username).Uint("id", created.ID).Msg("account created")
	return created, nil
}

// Update overwrites every mutable field of the account, role set included.
// The uniqueness check excludes the record being updated so saving an
// account under its own username is not a conflict.
func (s *AccountService) Update(ctx context.Context, id uint, input ports.UpdateAccountInput) (*domain.Account, error) {
	existing, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.accounts.ExistsByUsername(ctx, input.Username, id)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Error().Str("username", input.Username).Msg("username already exists")
		return nil, fmt.Errorf("%w: %s", domain.ErrUsernameExists, input.Username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	roles, err := s.resolveRoles(ctx, input.Roles)
	if err != nil {
		return nil, err
	}

	existing.Username = input.Username
	existing.PasswordHash = string(hash)
	existing.Enabled = input.Enabled
	existing.Locked = input.Locked
	existing.Expired = input.Expired
	existing.CredentialExpired = input.CredentialExpired
	existing.Roles = roles

	updated, err := s.accounts.Update(ctx, existing)
	if err != nil {
		s.logger.Error().Err(err).Uint("id", id).Msg("failed to update account")
		return nil, err
	}
	s.logger.Info().Uint("id", id).Msg("account updated")
	return updated, nil
}

func (s *AccountService) Delete(ctx context.Context, id uint) error {
	if _, err := s.accounts.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.accounts.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("id", id).Msg("account deleted")
	return nil
}

func (s *AccountService) resolveRoles(ctx context.Context, names []string) ([]domain.Role, error) {
	roles := make([]domain.Role, 0, len(names))
	for _, name := range names {
		role, err := s.roles.FindByName(ctx, name)
		if err != nil {
			s.logger.Error().Str("role", name).Msg("unknown role")
			return nil, fmt.Errorf("%w: %s", domain.ErrRoleNotFound, name)
		}
		roles = append(roles, *role)
	}
	return roles, nil
}
