package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taller/store-api/internal/core/ports"
)

type SaleHandler struct {
	sales ports.SaleService
}

func NewSaleHandler(sales ports.SaleService) *SaleHandler {
	return &SaleHandler{sales: sales}
}

// Create opens an empty sale for a customer, employee and store.
//
// @Summary      Create a sale
// @Tags         venta
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string             false  "Replay protection key"
// @Param        body             body      createSaleRequest  true   "Sale"
// @Success      201              {object}  domain.Sale
// @Failure      400              {object}  ErrorResponse
// @Failure      404              {object}  ErrorResponse
// @Router       /venta [post]
func (h *SaleHandler) Create(c echo.Context) error {
	var req createSaleRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	sale, err := h.sales.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sale)
}

// List returns every sale with its details, newest first.
//
// @Summary      List sales
// @Tags         venta
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Sale
// @Router       /venta [get]
func (h *SaleHandler) List(c echo.Context) error {
	sales, err := h.sales.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sales)
}

// Get returns one sale with its details.
//
// @Summary      Get a sale
// @Tags         venta
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Sale ID"
// @Success      200  {object}  domain.Sale
// @Failure      404  {object}  ErrorResponse
// @Router       /venta/{id} [get]
func (h *SaleHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	sale, err := h.sales.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sale)
}

// Update reassigns a sale's references or its state.
//
// @Summary      Update a sale
// @Tags         venta
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Sale ID"
// @Param        body  body      updateSaleRequest  true  "Fields to change"
// @Success      200   {object}  domain.Sale
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /venta/{id} [patch]
func (h *SaleHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateSaleRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	sale, err := h.sales.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sale)
}

// Recalculate sets the sale total to the sum of its detail subtotals.
//
// @Summary      Recalculate a sale total
// @Tags         venta
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Sale ID"
// @Success      200  {object}  domain.Sale
// @Failure      404  {object}  ErrorResponse
// @Router       /venta/{id}/recalcular [patch]
func (h *SaleHandler) Recalculate(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	sale, err := h.sales.Recalculate(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sale)
}

// Delete removes a sale and its details.
//
// @Summary      Delete a sale
// @Tags         venta
// @Security     BearerAuth
// @Param        id   path  int  true  "Sale ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /venta/{id} [delete]
func (h *SaleHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.sales.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
