package repository

import (
	"time"

	"github.com/jhoicas/fabrica-api/internal/domain/entity"
)

// DispatchOrderRepository define el puerto de persistencia para órdenes de despacho.
type DispatchOrderRepository interface {
	Create(order *entity.DispatchOrder) error
	GetByID(id string) (*entity.DispatchOrder, error)
	// GetForUpdate bloquea la fila de la orden durante fulfill/cancel.
	GetForUpdate(id string) (*entity.DispatchOrder, error)
	Update(order *entity.DispatchOrder) error
	ListPending(limit, offset int) ([]*entity.DispatchOrder, error)
	ListByDateRange(from, to *time.Time, limit, offset int) ([]*entity.DispatchOrder, error)
	CountByDateRange(from, to *time.Time) (int, error)
}
