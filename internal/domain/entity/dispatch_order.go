package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de despacho. fulfilled y cancelled son terminales.
const (
	DispatchPending   = "pending"
	DispatchFulfilled = "fulfilled"
	DispatchCancelled = "cancelled"
)

// DispatchOrder es un pedido de cliente por producto terminado. La creación
// no reserva stock: la disponibilidad se verifica recién al despachar, así
// que dos órdenes pendientes pueden exceder juntas el stock disponible.
type DispatchOrder struct {
	ID          string
	ProductID   string
	Quantity    decimal.Decimal
	ClientName  string
	Status      string // pending | fulfilled | cancelled
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// IsTerminal indica si la orden ya no admite transiciones.
func (d *DispatchOrder) IsTerminal() bool {
	return d.Status == DispatchFulfilled || d.Status == DispatchCancelled
}
