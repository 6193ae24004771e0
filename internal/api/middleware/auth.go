package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

// Context keys set by Auth.
const (
	IdentityKey = "identity"
	RoleKey     = "role"
)

// Auth verifies the bearer token, resolves the live identity behind it and
// attaches that identity to both the echo and the request context.
func Auth(authenticator ports.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "falta el encabezado de autorización")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "encabezado de autorización inválido")
			}

			req := c.Request()
			identity, err := authenticator.Authenticate(req.Context(), strings.TrimSpace(parts[1]))
			switch {
			case errors.Is(err, domain.ErrInvalidToken):
				return echo.NewHTTPError(http.StatusUnauthorized, "token inválido o expirado")
			case errors.Is(err, domain.ErrUnauthorized):
				return echo.NewHTTPError(http.StatusUnauthorized, "Token inválido o usuario no encontrado")
			case err != nil:
				return err
			}

			c.Set(IdentityKey, identity)
			c.Set(RoleKey, identity.Role.String())
			c.SetRequest(req.WithContext(domain.WithIdentity(req.Context(), *identity)))

			return next(c)
		}
	}
}
