package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/codewithvanilson/security-service/internal/core/domain"
)

func contextWithPrincipal(e *echo.Echo, principal *domain.Principal) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set(principalKey, principal)
	}
	return c
}

func TestRBAC_Allows(t *testing.T) {
	e := echo.New()
	c := contextWithPrincipal(e, &domain.Principal{
		Username:    "alice",
		Authorities: []string{domain.RoleUser},
	})

	called := false
	err := RBAC("USER", "ADMIN")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)

	if err != nil {
		t.Fatalf("expected access granted, got %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRBAC_Forbids(t *testing.T) {
	e := echo.New()
	c := contextWithPrincipal(e, &domain.Principal{
		Username:    "bob",
		Authorities: []string{domain.RoleUser},
	})

	err := RBAC("ADMIN")(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}

func TestRBAC_MissingPrincipal(t *testing.T) {
	e := echo.New()
	c := contextWithPrincipal(e, nil)

	err := RBAC("USER")(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestRBAC_PrefixesRoleNames(t *testing.T) {
	e := echo.New()
	// An authority already carrying the prefix must not match a doubly
	// prefixed name.
	c := contextWithPrincipal(e, &domain.Principal{
		Username:    "carol",
		Authorities: []string{"ROLE_ROLE_USER"},
	})

	err := RBAC("USER")(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}
