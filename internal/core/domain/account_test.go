package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAccount_Authorities(t *testing.T) {
	a := Account{Roles: []Role{
		{RoleID: 1, Name: RoleUser},
		{RoleID: 2, Name: RoleAdmin},
		{RoleID: 3, Name: RoleUser},
	}}

	got := a.Authorities()
	want := []string{RoleUser, RoleAdmin, RoleUser}
	if len(got) != len(want) {
		t.Fatalf("expected %d authorities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("authority %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	empty := Account{}
	if len(empty.Authorities()) != 0 || empty.HasRoles() {
		t.Fatalf("roleless account must have no authorities")
	}
}

func TestAccount_HashNeverSerialized(t *testing.T) {
	a := Account{Username: "alice", PasswordHash: "$2a$10$secret"}
	raw, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "secret") {
		t.Fatalf("hash leaked into JSON: %s", raw)
	}
}

func TestNewPrincipal_NegatesFlags(t *testing.T) {
	a := Account{
		Username:          "bob",
		PasswordHash:      "$2a$10$hash",
		Enabled:           true,
		Locked:            true,
		Expired:           false,
		CredentialExpired: true,
		Roles:             []Role{{RoleID: 1, Name: RoleUser}},
	}

	p := NewPrincipal(&a)
	if p.Username != "bob" || p.PasswordHash != a.PasswordHash {
		t.Fatalf("identity fields not carried: %+v", p)
	}
	if !p.Enabled || p.AccountNonLocked || !p.AccountNonExpired || p.CredentialsNonExpired {
		t.Fatalf("flags not negated correctly: %+v", p)
	}
	if len(p.Authorities) != 1 || p.Authorities[0] != RoleUser {
		t.Fatalf("unexpected authorities: %v", p.Authorities)
	}
}

func TestPrincipal_HasAnyAuthority(t *testing.T) {
	p := Principal{Authorities: []string{RoleUser, RoleManager}}

	if !p.HasAnyAuthority(RoleAdmin, RoleManager) {
		t.Fatalf("expected intersection match")
	}
	if p.HasAnyAuthority(RoleAdmin) {
		t.Fatalf("expected no match")
	}
	if p.HasAnyAuthority("role_user") {
		t.Fatalf("comparison must be case-sensitive")
	}
	if p.HasAnyAuthority() {
		t.Fatalf("empty query must not match")
	}
}
