package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taller/store-api/internal/core/domain"
)

// RBAC admits the request only when the identity attached by Auth holds one
// of the required roles. With no roles every request passes.
func RBAC(required ...domain.Role) echo.MiddlewareFunc {
	names := make([]string, 0, len(required))
	for _, r := range required {
		names = append(names, r.String())
	}
	denied := "Acceso denegado: requiere rol " + strings.Join(names, " o ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(required) == 0 {
				return next(c)
			}

			identity, ok := c.Get(IdentityKey).(*domain.Identity)
			if !ok || identity == nil {
				return echo.NewHTTPError(http.StatusForbidden, "No se pudo validar el rol del usuario.")
			}
			if !identity.HasRole(required...) {
				return echo.NewHTTPError(http.StatusForbidden, denied)
			}
			return next(c)
		}
	}
}
