package middleware

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/codewithvanilson/security-service/internal/api/metrics"
	"github.com/codewithvanilson/security-service/internal/core/domain"
	"github.com/codewithvanilson/security-service/internal/core/ports"
)

const (
	principalKey   = "principal"
	usernameKey    = "username"
	authoritiesKey = "authorities"
)

// BasicAuth authenticates each request statelessly from its Authorization
// header: the credential is verified against the stored hash on every call,
// and the resulting principal lives only for the request.
func BasicAuth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, password, ok := basicCredentials(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return challenge(c, "missing or malformed authorization header")
			}

			principal, err := auth.Authenticate(c.Request().Context(), username, password)
			if err != nil {
				metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="Restricted"`)
				// Every failure surfaces as the same credential error so the
				// response never reveals whether the username exists. The
				// auth service has already logged the actual cause.
				return domain.ErrInvalidCredentials
			}
			metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()

			c.Set(principalKey, principal)
			c.Set(usernameKey, principal.Username)
			c.Set(authoritiesKey, principal.Authorities)

			return next(c)
		}
	}
}

// basicCredentials decodes an "Authorization: Basic base64(user:pass)" value.
func basicCredentials(header string) (username, password string, ok bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "basic") {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", false
	}
	username, password, ok = strings.Cut(string(decoded), ":")
	return username, password, ok
}

func challenge(c echo.Context, msg string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="Restricted"`)
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}

// PrincipalFrom extracts the authenticated principal injected by BasicAuth.
func PrincipalFrom(c echo.Context) (*domain.Principal, bool) {
	principal, ok := c.Get(principalKey).(*domain.Principal)
	return principal, ok
}
