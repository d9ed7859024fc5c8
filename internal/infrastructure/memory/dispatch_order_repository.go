package memory

import (
	"sort"
	"time"

	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/domain/repository"
)

var _ repository.DispatchOrderRepository = (*DispatchOrderRepo)(nil)

// DispatchOrderRepo implementación en memoria de DispatchOrderRepository.
type DispatchOrderRepo struct {
	store *Store
}

// NewDispatchOrderRepository construye el adaptador sobre el Store dado.
func NewDispatchOrderRepository(store *Store) *DispatchOrderRepo {
	return &DispatchOrderRepo{store: store}
}

func (r *DispatchOrderRepo) Create(order *entity.DispatchOrder) error {
	r.store.dispatches[order.ID] = copyDispatchOrder(order)
	return nil
}

func (r *DispatchOrderRepo) GetByID(id string) (*entity.DispatchOrder, error) {
	d, ok := r.store.dispatches[id]
	if !ok {
		return nil, nil
	}
	return copyDispatchOrder(d), nil
}

func (r *DispatchOrderRepo) GetForUpdate(id string) (*entity.DispatchOrder, error) {
	return r.GetByID(id)
}

func (r *DispatchOrderRepo) Update(order *entity.DispatchOrder) error {
	r.store.dispatches[order.ID] = copyDispatchOrder(order)
	return nil
}

// ListPending devuelve pendientes en orden de llegada (más antiguos primero).
func (r *DispatchOrderRepo) ListPending(limit, offset int) ([]*entity.DispatchOrder, error) {
	var orders []*entity.DispatchOrder
	for _, d := range r.store.dispatches {
		if d.Status == entity.DispatchPending {
			orders = append(orders, copyDispatchOrder(d))
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})
	return paginate(orders, limit, offset), nil
}

func (r *DispatchOrderRepo) ListByDateRange(from, to *time.Time, limit, offset int) ([]*entity.DispatchOrder, error) {
	var orders []*entity.DispatchOrder
	for _, d := range r.store.dispatches {
		if inRange(d.CreatedAt, from, to) {
			orders = append(orders, copyDispatchOrder(d))
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return paginate(orders, limit, offset), nil
}

func (r *DispatchOrderRepo) CountByDateRange(from, to *time.Time) (int, error) {
	total := 0
	for _, d := range r.store.dispatches {
		if inRange(d.CreatedAt, from, to) {
			total++
		}
	}
	return total, nil
}
