package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taller/store-api/internal/core/ports"
)

type SupplierHandler struct {
	suppliers ports.SupplierService
}

func NewSupplierHandler(suppliers ports.SupplierService) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

// Create registers a supplier.
//
// @Summary      Create a supplier
// @Tags         proveedor
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSupplierRequest  true  "Supplier"
// @Success      201   {object}  domain.Supplier
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /proveedor [post]
func (h *SupplierHandler) Create(c echo.Context) error {
	var req createSupplierRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	supplier, err := h.suppliers.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, supplier)
}

// List returns every supplier with its products.
//
// @Summary      List suppliers
// @Tags         proveedor
// @Produce      json
// @Success      200  {array}  domain.Supplier
// @Router       /proveedor [get]
func (h *SupplierHandler) List(c echo.Context) error {
	suppliers, err := h.suppliers.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, suppliers)
}

// Get returns one supplier with its products.
//
// @Summary      Get a supplier
// @Tags         proveedor
// @Produce      json
// @Param        id   path      int  true  "Supplier ID"
// @Success      200  {object}  domain.Supplier
// @Failure      404  {object}  ErrorResponse
// @Router       /proveedor/{id} [get]
func (h *SupplierHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	supplier, err := h.suppliers.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, supplier)
}

// Update applies a partial update to a supplier.
//
// @Summary      Update a supplier
// @Tags         proveedor
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Supplier ID"
// @Param        body  body      updateSupplierRequest  true  "Fields to change"
// @Success      200   {object}  domain.Supplier
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /proveedor/{id} [patch]
func (h *SupplierHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateSupplierRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	supplier, err := h.suppliers.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, supplier)
}

// Delete removes a supplier.
//
// @Summary      Delete a supplier
// @Tags         proveedor
// @Security     BearerAuth
// @Param        id   path  int  true  "Supplier ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /proveedor/{id} [delete]
func (h *SupplierHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.suppliers.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
