package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces role-based access control. Access is granted when the
// authenticated principal's authority set intersects the allowed roles.
// Role names are given without prefix ("USER", "ADMIN"); the stored
// authority convention prepends "ROLE_", matched exactly and case-sensitively.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make([]string, 0, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed = append(allowed, "ROLE_"+r)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !principal.HasAnyAuthority(allowed...) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
