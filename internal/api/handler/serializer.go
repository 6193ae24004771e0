package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// StrictJSONSerializer is echo's default JSON serializer except that request
// bodies with properties the target struct does not declare are rejected.
type StrictJSONSerializer struct{}

func (StrictJSONSerializer) Serialize(c echo.Context, i any, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (StrictJSONSerializer) Deserialize(c echo.Context, i any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(i)
	if err == nil {
		return nil
	}

	if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		msg := fmt.Sprintf("la propiedad %s no está permitida", strings.Trim(field, `"`))
		return &ValidationError{Messages: []string{msg}}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		msg := fmt.Sprintf("%s tiene un tipo inválido", typeErr.Field)
		return &ValidationError{Messages: []string{msg}}
	}
	return echo.NewHTTPError(http.StatusBadRequest, "cuerpo JSON inválido").SetInternal(err)
}
