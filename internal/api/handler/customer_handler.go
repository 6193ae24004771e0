package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taller/store-api/internal/core/ports"
)

type CustomerHandler struct {
	customers ports.CustomerService
}

func NewCustomerHandler(customers ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// Create registers a customer on behalf of an authenticated user.
//
// @Summary      Create a customer
// @Tags         cliente
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCustomerRequest  true  "Customer"
// @Success      201   {object}  domain.Customer
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /cliente [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	customer, err := h.customers.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, customer)
}

// List returns every customer.
//
// @Summary      List customers
// @Tags         cliente
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Customer
// @Failure      403  {object}  ErrorResponse
// @Router       /cliente [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.customers.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Me greets the authenticated customer.
//
// @Summary      Customer welcome
// @Tags         cliente
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /cliente/perfil/me [get]
func (h *CustomerHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Bienvenido a tu cuenta"})
}

// Get returns one customer. Customers may only read their own record.
//
// @Summary      Get a customer
// @Tags         cliente
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Customer ID"
// @Success      200  {object}  domain.Customer
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /cliente/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	customer, err := h.customers.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Update applies a partial update. Customers may only update their own record.
//
// @Summary      Update a customer
// @Tags         cliente
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Customer ID"
// @Param        body  body      updateCustomerRequest  true  "Fields to change"
// @Success      200   {object}  domain.Customer
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /cliente/{id} [patch]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateCustomerRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	customer, err := h.customers.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Delete removes a customer.
//
// @Summary      Delete a customer
// @Tags         cliente
// @Security     BearerAuth
// @Param        id   path  int  true  "Customer ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /cliente/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.customers.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
