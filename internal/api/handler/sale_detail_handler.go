package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taller/store-api/internal/core/ports"
)

type SaleDetailHandler struct {
	details ports.SaleDetailService
}

func NewSaleDetailHandler(details ports.SaleDetailService) *SaleDetailHandler {
	return &SaleDetailHandler{details: details}
}

// Create adds a line to a sale and recalculates its total.
//
// @Summary      Create an invoice line
// @Tags         detalle-factura
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                   false  "Replay protection key"
// @Param        body             body      createSaleDetailRequest  true   "Invoice line"
// @Success      201              {object}  domain.SaleDetail
// @Failure      400              {object}  ErrorResponse
// @Failure      404              {object}  ErrorResponse
// @Router       /detalle-factura [post]
func (h *SaleDetailHandler) Create(c echo.Context) error {
	var req createSaleDetailRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	detail, err := h.details.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, detail)
}

// List returns every invoice line.
//
// @Summary      List invoice lines
// @Tags         detalle-factura
// @Produce      json
// @Success      200  {array}  domain.SaleDetail
// @Router       /detalle-factura [get]
func (h *SaleDetailHandler) List(c echo.Context) error {
	details, err := h.details.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, details)
}

// Get returns one invoice line.
//
// @Summary      Get an invoice line
// @Tags         detalle-factura
// @Produce      json
// @Param        id   path      int  true  "Invoice line ID"
// @Success      200  {object}  domain.SaleDetail
// @Failure      404  {object}  ErrorResponse
// @Router       /detalle-factura/{id} [get]
func (h *SaleDetailHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.details.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// Update changes a line and recalculates the sale total.
//
// @Summary      Update an invoice line
// @Tags         detalle-factura
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                      true  "Invoice line ID"
// @Param        body  body      updateSaleDetailRequest  true  "Fields to change"
// @Success      200   {object}  domain.SaleDetail
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /detalle-factura/{id} [patch]
func (h *SaleDetailHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateSaleDetailRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	detail, err := h.details.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// Delete removes a line and recalculates the sale total.
//
// @Summary      Delete an invoice line
// @Tags         detalle-factura
// @Security     BearerAuth
// @Param        id   path  int  true  "Invoice line ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /detalle-factura/{id} [delete]
func (h *SaleDetailHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.details.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
