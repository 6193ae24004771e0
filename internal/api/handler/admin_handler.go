package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taller/store-api/internal/core/ports"
)

type AdminHandler struct {
	admins ports.AdminService
	audit  ports.AuditReader
}

func NewAdminHandler(admins ports.AdminService, audit ports.AuditReader) *AdminHandler {
	return &AdminHandler{admins: admins, audit: audit}
}

// Create provisions a new administrator.
//
// @Summary      Create an administrator
// @Tags         administrador
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAdminRequest  true  "Administrator"
// @Success      201   {object}  domain.Admin
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Router       /administrador [post]
func (h *AdminHandler) Create(c echo.Context) error {
	var req createAdminRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	admin, err := h.admins.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, admin)
}

// List returns every administrator.
//
// @Summary      List administrators
// @Tags         administrador
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Admin
// @Failure      403  {object}  ErrorResponse
// @Router       /administrador [get]
func (h *AdminHandler) List(c echo.Context) error {
	admins, err := h.admins.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admins)
}

// Panel greets an administrator.
//
// @Summary      Administration panel
// @Tags         administrador
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /administrador/panel [get]
func (h *AdminHandler) Panel(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Bienvenido al panel de administración"})
}

// Audit lists the most recent audit entries.
//
// @Summary      Audit trail
// @Tags         administrador
// @Produce      json
// @Security     BearerAuth
// @Param        entidad  query     string  false  "Entity name, e.g. venta"
// @Param        limite   query     int     false  "Maximum entries (default 50, max 200)"
// @Success      200      {array}   domain.AuditEntry
// @Failure      400      {object}  ErrorResponse
// @Failure      403      {object}  ErrorResponse
// @Router       /administrador/auditoria [get]
func (h *AdminHandler) Audit(c echo.Context) error {
	filter := ports.AuditFilter{Entity: c.QueryParam("entidad")}
	if raw := c.QueryParam("limite"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return &ValidationError{Messages: []string{"limite debe ser un entero positivo"}}
		}
		filter.Limit = limit
	}

	entries, err := h.audit.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Get returns one administrator.
//
// @Summary      Get an administrator
// @Tags         administrador
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Administrator ID"
// @Success      200  {object}  domain.Admin
// @Failure      404  {object}  ErrorResponse
// @Router       /administrador/{id} [get]
func (h *AdminHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	admin, err := h.admins.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admin)
}

// Update applies a partial update to an administrator.
//
// @Summary      Update an administrator
// @Tags         administrador
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Administrator ID"
// @Param        body  body      updateAdminRequest  true  "Fields to change"
// @Success      200   {object}  domain.Admin
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /administrador/{id} [patch]
func (h *AdminHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateAdminRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	admin, err := h.admins.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admin)
}

// Delete removes an administrator.
//
// @Summary      Delete an administrator
// @Tags         administrador
// @Security     BearerAuth
// @Param        id   path  int  true  "Administrator ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /administrador/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.admins.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
