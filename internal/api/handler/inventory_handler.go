package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taller/store-api/internal/core/ports"
)

type InventoryHandler struct {
	inventory ports.InventoryService
}

func NewInventoryHandler(inventory ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// Create records the stock of a product in a store.
//
// @Summary      Create an inventory row
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInventoryRequest  true  "Inventory"
// @Success      201   {object}  domain.InventoryItem
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /inventario [post]
func (h *InventoryHandler) Create(c echo.Context) error {
	var req createInventoryRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	item, err := h.inventory.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// List returns every inventory row with its product and store.
//
// @Summary      List inventory
// @Tags         inventario
// @Produce      json
// @Success      200  {array}  domain.InventoryItem
// @Router       /inventario [get]
func (h *InventoryHandler) List(c echo.Context) error {
	items, err := h.inventory.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get returns one inventory row.
//
// @Summary      Get an inventory row
// @Tags         inventario
// @Produce      json
// @Param        id   path      int  true  "Inventory ID"
// @Success      200  {object}  domain.InventoryItem
// @Failure      404  {object}  ErrorResponse
// @Router       /inventario/{id} [get]
func (h *InventoryHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.inventory.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Update applies a partial update to an inventory row.
//
// @Summary      Update an inventory row
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                     true  "Inventory ID"
// @Param        body  body      updateInventoryRequest  true  "Fields to change"
// @Success      200   {object}  domain.InventoryItem
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /inventario/{id} [patch]
func (h *InventoryHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateInventoryRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	item, err := h.inventory.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete removes an inventory row.
//
// @Summary      Delete an inventory row
// @Tags         inventario
// @Security     BearerAuth
// @Param        id   path  int  true  "Inventory ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /inventario/{id} [delete]
func (h *InventoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.inventory.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
