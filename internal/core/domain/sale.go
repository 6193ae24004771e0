package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is an invoice header. Total is derived from Details and is only
// changed through Recalculate.
type Sale struct {
	ID         int64           `json:"venta_id"`
	Date       time.Time       `json:"venta_fecha"`
	Total      decimal.Decimal `json:"venta_total"`
	CustomerID int64           `json:"cli_id"`
	EmployeeID int64           `json:"emp_id"`
	StoreID    int64           `json:"tienda_id"`
	Active     bool            `json:"venta_activa"`
	Details    []SaleDetail    `json:"detalles"`
}

// SaleDetail is a single invoice line.
type SaleDetail struct {
	ID        int64           `json:"det_id"`
	SaleID    int64           `json:"venta_id"`
	ProductID int64           `json:"producto_id"`
	Quantity  int             `json:"det_cantidad"`
	UnitPrice decimal.Decimal `json:"det_precio_unitario"`
	Subtotal  decimal.Decimal `json:"det_subtotal"`
}

// LineSubtotal returns quantity × unit price.
func LineSubtotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// SumSubtotals adds the subtotals of details.
func SumSubtotals(details []SaleDetail) decimal.Decimal {
	total := decimal.Zero
	for _, d := range details {
		total = total.Add(d.Subtotal)
	}
	return total
}

// ApplySubtotal recomputes d.Subtotal from its quantity and unit price.
func (d *SaleDetail) ApplySubtotal() {
	d.Subtotal = LineSubtotal(d.Quantity, d.UnitPrice)
}
