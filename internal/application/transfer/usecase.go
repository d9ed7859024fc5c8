package transfer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fabrica-api/internal/application/ports"
	"github.com/jhoicas/fabrica-api/internal/domain"
	"github.com/jhoicas/fabrica-api/internal/domain/entity"
)

// TransferUseCase mueve stock de un producto entre dos departamentos:
// débito en origen, crédito en destino y registro inmutable, todo dentro de
// una sola transacción con bloqueo de filas (SELECT FOR UPDATE). El débito se
// evalúa estrictamente antes del crédito: un traslado fallido no mueve nada.
type TransferUseCase struct {
	txRunner ports.TxRunner
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(txRunner ports.TxRunner) *TransferUseCase {
	return &TransferUseCase{txRunner: txRunner}
}

// Input datos para ejecutar un traslado.
type Input struct {
	ProductID      string
	FromDepartment entity.Department
	ToDepartment   entity.Department
	Qty            decimal.Decimal
}

// Transfer ejecuta el traslado en nombre de actor. Reglas:
//   - origen y destino deben ser distintos (ErrInvalidTransfer)
//   - el actor debe tener autoridad sobre el origen, salvo admin (ErrForbidden)
//   - si el saldo de origen no alcanza, ErrInsufficientStock sin efecto parcial
func (uc *TransferUseCase) Transfer(ctx context.Context, actor domain.Actor, in Input) (*entity.TransferRecord, error) {
	v := domain.Validation()
	if in.ProductID == "" {
		v.Add("productId", "el producto es obligatorio")
	}
	if !in.FromDepartment.Valid() {
		v.Add("fromDepartment", "departamento inválido")
	}
	if !in.ToDepartment.Valid() {
		v.Add("toDepartment", "departamento inválido")
	}
	if !in.Qty.IsPositive() {
		v.Add("qty", "la cantidad debe ser mayor que 0")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	if in.FromDepartment == in.ToDepartment {
		return nil, domain.ErrInvalidTransfer
	}
	if !actor.CanActOn(in.FromDepartment) {
		return nil, domain.ErrForbidden
	}

	var record *entity.TransferRecord
	err := uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		product, err := r.Products.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		now := time.Now()

		// Débito en origen. Se bloquea primero la fila de origen; si dos
		// traslados opuestos se cruzan, Postgres detecta el deadlock y el
		// TxRunner reintenta la operación completa.
		origin, err := r.Stock.GetForUpdate(in.ProductID, in.FromDepartment)
		if err != nil {
			return err
		}
		if origin.Quantity.LessThan(in.Qty) {
			return domain.ErrInsufficientStock
		}
		origin.Quantity = origin.Quantity.Sub(in.Qty)
		origin.UpdatedAt = now
		if err := r.Stock.Upsert(origin); err != nil {
			return err
		}

		// Crédito en destino.
		dest, err := r.Stock.GetForUpdate(in.ProductID, in.ToDepartment)
		if err != nil {
			return err
		}
		dest.Quantity = dest.Quantity.Add(in.Qty)
		dest.UpdatedAt = now
		if err := r.Stock.Upsert(dest); err != nil {
			return err
		}

		// Registro inmutable del traslado.
		record = &entity.TransferRecord{
			ID:             uuid.New().String(),
			ProductID:      in.ProductID,
			FromDepartment: in.FromDepartment,
			ToDepartment:   in.ToDepartment,
			Qty:            in.Qty,
			TransferredBy:  actor.EmployeeID,
			TransferredAt:  now,
		}
		return r.Transfers.Create(record)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
