package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taller/store-api/internal/core/domain"
)

// currentIdentity returns the identity the Auth middleware resolved. Its
// absence means the route was mounted without the guard.
func currentIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := domain.IdentityFromContext(c.Request().Context())
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "falta el encabezado de autorización")
	}
	return identity, nil
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id inválido")
	}
	return id, nil
}

// queryBool parses an optional boolean query parameter.
func queryBool(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, &ValidationError{Messages: []string{name + " debe ser true o false"}}
	}
	return &v, nil
}

// bindValid decodes the request body into req and validates it.
func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

type messageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the envelope of every error the API returns.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
