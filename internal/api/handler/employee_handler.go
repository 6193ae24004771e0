package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taller/store-api/internal/core/ports"
)

type EmployeeHandler struct {
	employees ports.EmployeeService
}

func NewEmployeeHandler(employees ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// Create hires an employee, optionally assigned to a store.
//
// @Summary      Create an employee
// @Tags         empleado
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Employee"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /empleado [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	employee, err := h.employees.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, employee)
}

// List returns employees, optionally filtered.
//
// @Summary      List employees
// @Tags         empleado
// @Produce      json
// @Security     BearerAuth
// @Param        activo  query     bool    false  "Only active or inactive employees"
// @Param        cargo   query     string  false  "Position"
// @Success      200     {array}   domain.Employee
// @Failure      400     {object}  ErrorResponse
// @Router       /empleado [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	active, err := queryBool(c, "activo")
	if err != nil {
		return err
	}
	return h.list(c, ports.EmployeeFilter{Active: active, Position: strings.TrimSpace(c.QueryParam("cargo"))})
}

// ByStore returns the employees assigned to a store.
//
// @Summary      Employees by store
// @Tags         empleado
// @Produce      json
// @Security     BearerAuth
// @Param        tiendaId  path      int  true  "Store ID"
// @Success      200       {array}   domain.Employee
// @Router       /empleado/tienda/{tiendaId} [get]
func (h *EmployeeHandler) ByStore(c echo.Context) error {
	storeID, err := pathID(c, "tiendaId")
	if err != nil {
		return err
	}
	return h.list(c, ports.EmployeeFilter{StoreID: &storeID})
}

// ByPosition returns the employees holding a position.
//
// @Summary      Employees by position
// @Tags         empleado
// @Produce      json
// @Security     BearerAuth
// @Param        cargo  path      string  true  "Position"
// @Success      200    {array}   domain.Employee
// @Router       /empleado/cargo/{cargo} [get]
func (h *EmployeeHandler) ByPosition(c echo.Context) error {
	return h.list(c, ports.EmployeeFilter{Position: c.Param("cargo")})
}

func (h *EmployeeHandler) list(c echo.Context, filter ports.EmployeeFilter) error {
	employees, err := h.employees.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Get returns one employee.
//
// @Summary      Get an employee
// @Tags         empleado
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  ErrorResponse
// @Router       /empleado/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	employee, err := h.employees.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Update applies a partial update to an employee.
//
// @Summary      Update an employee
// @Tags         empleado
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Employee ID"
// @Param        body  body      updateEmployeeRequest  true  "Fields to change"
// @Success      200   {object}  domain.Employee
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /empleado/{id} [patch]
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateEmployeeRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	employee, err := h.employees.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Activate marks an employee active.
//
// @Summary      Activate an employee
// @Tags         empleado
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  ErrorResponse
// @Router       /empleado/{id}/activar [patch]
func (h *EmployeeHandler) Activate(c echo.Context) error {
	return h.setActive(c, true)
}

// Deactivate marks an employee inactive.
//
// @Summary      Deactivate an employee
// @Tags         empleado
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  ErrorResponse
// @Router       /empleado/{id}/desactivar [patch]
func (h *EmployeeHandler) Deactivate(c echo.Context) error {
	return h.setActive(c, false)
}

func (h *EmployeeHandler) setActive(c echo.Context, active bool) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	employee, err := h.employees.SetActive(c.Request().Context(), id, active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Delete removes an employee.
//
// @Summary      Delete an employee
// @Tags         empleado
// @Security     BearerAuth
// @Param        id   path  int  true  "Employee ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /empleado/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.employees.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
