package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de trabajo. fulfilled y cancelled son terminales:
// no hay transición de salida.
const (
	WorkOrderOpen      = "open"
	WorkOrderFulfilled = "fulfilled"
	WorkOrderCancelled = "cancelled"
)

// WorkOrder es una orden de producción: convertir materia prima en Qty
// unidades de un producto terminado según su receta. La cancelación
// conserva la fila con estado cancelled para los reportes.
type WorkOrder struct {
	ID          string
	ProductID   string
	Qty         decimal.Decimal
	Status      string // open | fulfilled | cancelled
	CreatedBy   string
	CreatedAt   time.Time
	FulfilledAt *time.Time
}

// IsTerminal indica si la orden ya no admite transiciones.
func (w *WorkOrder) IsTerminal() bool {
	return w.Status == WorkOrderFulfilled || w.Status == WorkOrderCancelled
}
