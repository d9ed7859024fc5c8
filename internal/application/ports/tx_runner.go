package ports

import (
	"context"

	"github.com/jhoicas/fabrica-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción de BD.
// Los cuatro motores (libro de stock, traslados, órdenes de trabajo y
// despachos) comparten este conjunto.
type TxRepos struct {
	Products   repository.ProductRepository
	Stock      repository.StockRepository
	Transfers  repository.TransferRecordRepository
	WorkOrders repository.WorkOrderRepository
	Dispatches repository.DispatchOrderRepository
}

// TxRunner ejecuta fn dentro de una transacción, pasando repositorios atados
// a esa tx. Garantiza atomicidad: si fn devuelve error, nada queda aplicado.
// La implementación Postgres reintenta conflictos de serialización/deadlock
// un número acotado de veces antes de devolver domain.ErrConflict.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
