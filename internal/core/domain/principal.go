package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrNoRolesAssigned = errors.New("account has no roles assigned")
var ErrAccountDisabled = errors.New("account is disabled")
var ErrAccountLocked = errors.New("account is locked")
var ErrAccountExpired = errors.New("account is expired")
var ErrCredentialsExpired = errors.New("credentials are expired")

// Principal is the runtime identity built from an Account for a single
// authentication attempt. It is never persisted and is discarded once the
// request is authorized. Status flags are carried negated, so a true value
// always means "good to go".
type Principal struct {
	Username              string
	PasswordHash          string
	Enabled               bool
	AccountNonExpired     bool
	CredentialsNonExpired bool
	AccountNonLocked      bool
	Authorities           []string
}

// NewPrincipal derives a Principal from an account. The caller is expected
// to have checked HasRoles first; the authority list mirrors the role set
// in order, duplicates included.
func NewPrincipal(a *Account) *Principal {
	return &Principal{
		Username:              a.Username,
		PasswordHash:          a.PasswordHash,
		Enabled:               a.Enabled,
		AccountNonExpired:     !a.Expired,
		CredentialsNonExpired: !a.CredentialExpired,
		AccountNonLocked:      !a.Locked,
		Authorities:           a.Authorities(),
	}
}

// HasAnyAuthority reports whether the principal holds at least one of the
// given authorities, compared case-sensitively.
func (p *Principal) HasAnyAuthority(authorities ...string) bool {
	for _, want := range authorities {
		for _, have := range p.Authorities {
			if have == want {
				return true
			}
		}
	}
	return false
}
