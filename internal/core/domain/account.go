package domain

import "errors"

// Role names seeded at startup and consumed by the authorization layer.
// Stored role names carry the "ROLE_" prefix, Spring-style; the gate
// middleware matches them verbatim.
const (
	RoleUser    = "ROLE_USER"
	RoleAdmin   = "ROLE_ADMIN"
	RoleManager = "ROLE_MANAGER"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrUsernameExists = errors.New("username already exists")
var ErrRoleNotFound = errors.New("role not found")
var ErrNilAccount = errors.New("account cannot be nil")
var ErrNilRole = errors.New("role cannot be nil")

// Role grants a named authority to the accounts holding it.
type Role struct {
	RoleID uint   `json:"role_id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
}

// Account is a login-capable identity. PasswordHash holds the bcrypt hash of
// the credential, never the plaintext; it is opaque once written.
type Account struct {
	ID                uint   `json:"id"`
	Username          string `json:"username"`
	PasswordHash      string `json:"-"`
	Enabled           bool   `json:"enabled"`
	Locked            bool   `json:"locked"`
	Expired           bool   `json:"expired"`
	CredentialExpired bool   `json:"credential_expired"`
	Roles             []Role `json:"roles"`
}

// Authorities maps the account's roles to authority strings, one per role,
// in role order. Duplicate role names yield duplicate authorities; no
// normalization is applied beyond what is stored.
func (a *Account) Authorities() []string {
	authorities := make([]string, 0, len(a.Roles))
	for _, r := range a.Roles {
		authorities = append(authorities, r.Name)
	}
	return authorities
}

// HasRoles reports whether the account holds at least one role. Accounts
// without roles must never authenticate.
func (a *Account) HasRoles() bool {
	return len(a.Roles) > 0
}
