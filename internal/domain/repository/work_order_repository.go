package repository

import (
	"time"

	"github.com/jhoicas/fabrica-api/internal/domain/entity"
)

// WorkOrderRepository define el puerto de persistencia para órdenes de trabajo.
type WorkOrderRepository interface {
	Create(order *entity.WorkOrder) error
	GetByID(id string) (*entity.WorkOrder, error)
	// GetForUpdate bloquea la fila de la orden: dos fulfillments concurrentes
	// sobre la misma orden se serializan y el segundo ve el estado terminal.
	GetForUpdate(id string) (*entity.WorkOrder, error)
	Update(order *entity.WorkOrder) error
	ListOpen(limit, offset int) ([]*entity.WorkOrder, error)
	ListByDateRange(from, to *time.Time, limit, offset int) ([]*entity.WorkOrder, error)
	CountByDateRange(from, to *time.Time) (int, error)
}
