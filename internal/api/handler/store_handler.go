package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taller/store-api/internal/core/ports"
)

type StoreHandler struct {
	stores ports.StoreService
}

func NewStoreHandler(stores ports.StoreService) *StoreHandler {
	return &StoreHandler{stores: stores}
}

// Create opens a store.
//
// @Summary      Create a store
// @Tags         tienda
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStoreRequest  true  "Store"
// @Success      201   {object}  domain.Store
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Router       /tienda [post]
func (h *StoreHandler) Create(c echo.Context) error {
	var req createStoreRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	store, err := h.stores.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, store)
}

// List returns stores, optionally filtered by state.
//
// @Summary      List stores
// @Tags         tienda
// @Produce      json
// @Security     BearerAuth
// @Param        activa  query     bool  false  "Only active or inactive stores"
// @Success      200     {array}   domain.Store
// @Failure      400     {object}  ErrorResponse
// @Router       /tienda [get]
func (h *StoreHandler) List(c echo.Context) error {
	active, err := queryBool(c, "activa")
	if err != nil {
		return err
	}
	stores, err := h.stores.List(c.Request().Context(), active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stores)
}

// Get returns one store.
//
// @Summary      Get a store
// @Tags         tienda
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Store ID"
// @Success      200  {object}  domain.Store
// @Failure      404  {object}  ErrorResponse
// @Router       /tienda/{id} [get]
func (h *StoreHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	store, err := h.stores.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, store)
}

// Employees returns a store together with its employees.
//
// @Summary      Store with employees
// @Tags         tienda
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Store ID"
// @Success      200  {object}  domain.Store
// @Failure      404  {object}  ErrorResponse
// @Router       /tienda/{id}/empleados [get]
func (h *StoreHandler) Employees(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	store, err := h.stores.GetWithEmployees(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, store)
}

// Update applies a partial update to a store.
//
// @Summary      Update a store
// @Tags         tienda
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Store ID"
// @Param        body  body      updateStoreRequest  true  "Fields to change"
// @Success      200   {object}  domain.Store
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /tienda/{id} [patch]
func (h *StoreHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateStoreRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	store, err := h.stores.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, store)
}

// Activate marks a store active.
//
// @Summary      Activate a store
// @Tags         tienda
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Store ID"
// @Success      200  {object}  domain.Store
// @Failure      404  {object}  ErrorResponse
// @Router       /tienda/{id}/activar [patch]
func (h *StoreHandler) Activate(c echo.Context) error {
	return h.setActive(c, true)
}

// Deactivate marks a store inactive.
//
// @Summary      Deactivate a store
// @Tags         tienda
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Store ID"
// @Success      200  {object}  domain.Store
// @Failure      404  {object}  ErrorResponse
// @Router       /tienda/{id}/desactivar [patch]
func (h *StoreHandler) Deactivate(c echo.Context) error {
	return h.setActive(c, false)
}

func (h *StoreHandler) setActive(c echo.Context, active bool) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	store, err := h.stores.SetActive(c.Request().Context(), id, active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, store)
}

// Delete closes a store. Its employees are left unassigned.
//
// @Summary      Delete a store
// @Tags         tienda
// @Security     BearerAuth
// @Param        id   path  int  true  "Store ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /tienda/{id} [delete]
func (h *StoreHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.stores.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
