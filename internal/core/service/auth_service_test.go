package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/codewithvanilson/security-service/internal/core/domain"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func seedAccount(repo *stubAccountRepo, account domain.Account) {
	account.ID = repo.nextID
	repo.nextID++
	repo.accounts[account.ID] = cloneAccount(&account)
}

func TestAuthService_LoadPrincipal_Success(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(repo, domain.Account{
		Username:     "alice",
		PasswordHash: mustHash(t, "s3cret"),
		Enabled:      true,
		Roles: []domain.Role{
			{RoleID: 1, Name: domain.RoleUser},
			{RoleID: 2, Name: domain.RoleAdmin},
		},
	})
	svc := NewAuthService(repo, zerolog.Nop())

	principal, err := svc.LoadPrincipal(context.Background(), "alice")
	if err != nil {
		t.Fatalf("LoadPrincipal returned error: %v", err)
	}
	if principal.Username != "alice" {
		t.Fatalf("unexpected username: %s", principal.Username)
	}
	want := []string{domain.RoleUser, domain.RoleAdmin}
	if len(principal.Authorities) != len(want) {
		t.Fatalf("expected %d authorities, got %d", len(want), len(principal.Authorities))
	}
	for i, authority := range want {
		if principal.Authorities[i] != authority {
			t.Fatalf("authority %d: expected %s, got %s", i, authority, principal.Authorities[i])
		}
	}
	if !principal.Enabled || !principal.AccountNonExpired || !principal.CredentialsNonExpired || !principal.AccountNonLocked {
		t.Fatalf("unexpected status flags: %+v", principal)
	}
}

func TestAuthService_LoadPrincipal_FlagsNegated(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(repo, domain.Account{
		Username:          "bob",
		PasswordHash:      mustHash(t, "pw"),
		Enabled:           true,
		Locked:            true,
		Expired:           true,
		CredentialExpired: true,
		Roles:             []domain.Role{{RoleID: 1, Name: domain.RoleUser}},
	})
	svc := NewAuthService(repo, zerolog.Nop())

	principal, err := svc.LoadPrincipal(context.Background(), "bob")
	if err != nil {
		t.Fatalf("LoadPrincipal returned error: %v", err)
	}
	if principal.AccountNonLocked || principal.AccountNonExpired || principal.CredentialsNonExpired {
		t.Fatalf("expected negated flags, got %+v", principal)
	}
}

func TestAuthService_LoadPrincipal_DuplicateRoleNamesPreserved(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(repo, domain.Account{
		Username:     "carol",
		PasswordHash: mustHash(t, "pw"),
		Enabled:      true,
		Roles: []domain.Role{
			{RoleID: 1, Name: domain.RoleUser},
			{RoleID: 9, Name: domain.RoleUser},
		},
	})
	svc := NewAuthService(repo, zerolog.Nop())

	principal, err := svc.LoadPrincipal(context.Background(), "carol")
	if err != nil {
		t.Fatalf("LoadPrincipal returned error: %v", err)
	}
	if len(principal.Authorities) != 2 {
		t.Fatalf("expected duplicates preserved, got %v", principal.Authorities)
	}
}

func TestAuthService_LoadPrincipal_NotFound(t *testing.T) {
	svc := NewAuthService(newStubAccountRepo(), zerolog.Nop())

	if _, err := svc.LoadPrincipal(context.Background(), "ghost"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAuthService_LoadPrincipal_NoRoles(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(repo, domain.Account{
		Username:     "dave",
		PasswordHash: mustHash(t, "goodpass"),
		Enabled:      true,
	})
	svc := NewAuthService(repo, zerolog.Nop())

	// A roleless account fails before any credential comparison.
	if _, err := svc.LoadPrincipal(context.Background(), "dave"); !errors.Is(err, domain.ErrNoRolesAssigned) {
		t.Fatalf("expected ErrNoRolesAssigned, got %v", err)
	}
}

func TestAuthService_Verify(t *testing.T) {
	svc := NewAuthService(newStubAccountRepo(), zerolog.Nop())
	principal := &domain.Principal{
		Username:              "alice",
		PasswordHash:          mustHash(t, "s3cret"),
		Enabled:               true,
		AccountNonExpired:     true,
		CredentialsNonExpired: true,
		AccountNonLocked:      true,
	}

	if err := svc.Verify(principal, "s3cret"); err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if err := svc.Verify(principal, "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := svc.Verify(principal, ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}

	noHash := *principal
	noHash.PasswordHash = ""
	if err := svc.Verify(&noHash, "s3cret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for missing hash, got %v", err)
	}
}

func TestAuthService_Verify_StatusFlags(t *testing.T) {
	svc := NewAuthService(newStubAccountRepo(), zerolog.Nop())
	base := domain.Principal{
		Username:              "alice",
		PasswordHash:          mustHash(t, "s3cret"),
		Enabled:               true,
		AccountNonExpired:     true,
		CredentialsNonExpired: true,
		AccountNonLocked:      true,
	}

	cases := []struct {
		name   string
		mutate func(p *domain.Principal)
		want   error
	}{
		{"disabled", func(p *domain.Principal) { p.Enabled = false }, domain.ErrAccountDisabled},
		{"locked", func(p *domain.Principal) { p.AccountNonLocked = false }, domain.ErrAccountLocked},
		{"expired", func(p *domain.Principal) { p.AccountNonExpired = false }, domain.ErrAccountExpired},
		{"credentials expired", func(p *domain.Principal) { p.CredentialsNonExpired = false }, domain.ErrCredentialsExpired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			principal := base
			tc.mutate(&principal)
			if err := svc.Verify(&principal, "s3cret"); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(repo, domain.Account{
		Username:     "alice",
		PasswordHash: mustHash(t, "s3cret"),
		Enabled:      true,
		Roles:        []domain.Role{{RoleID: 1, Name: domain.RoleUser}},
	})
	svc := NewAuthService(repo, zerolog.Nop())

	principal, err := svc.Authenticate(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if len(principal.Authorities) != 1 || principal.Authorities[0] != domain.RoleUser {
		t.Fatalf("unexpected authorities: %v", principal.Authorities)
	}
}

func TestAuthService_Authenticate_NoRolesBeatsGoodPassword(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(repo, domain.Account{
		Username:     "eve",
		PasswordHash: mustHash(t, "correct"),
		Enabled:      true,
	})
	svc := NewAuthService(repo, zerolog.Nop())

	if _, err := svc.Authenticate(context.Background(), "eve", "correct"); !errors.Is(err, domain.ErrNoRolesAssigned) {
		t.Fatalf("expected ErrNoRolesAssigned, got %v", err)
	}
}
