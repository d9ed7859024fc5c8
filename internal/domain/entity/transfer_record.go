package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRecord es el hecho inmutable de un traslado de stock entre
// departamentos. Se agrega solo después de que el débito y el crédito
// quedaron aplicados en la misma transacción; nunca se edita ni se borra.
type TransferRecord struct {
	ID             string
	ProductID      string
	FromDepartment Department
	ToDepartment   Department
	Qty            decimal.Decimal
	TransferredBy  string // ID del empleado que ejecutó el traslado
	TransferredAt  time.Time
}
