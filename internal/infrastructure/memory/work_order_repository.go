package memory

import (
	"sort"
	"time"

	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementación en memoria de WorkOrderRepository.
type WorkOrderRepo struct {
	store *Store
}

// NewWorkOrderRepository construye el adaptador sobre el Store dado.
func NewWorkOrderRepository(store *Store) *WorkOrderRepo {
	return &WorkOrderRepo{store: store}
}

func (r *WorkOrderRepo) Create(order *entity.WorkOrder) error {
	r.store.workOrds[order.ID] = copyWorkOrder(order)
	return nil
}

func (r *WorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	w, ok := r.store.workOrds[id]
	if !ok {
		return nil, nil
	}
	return copyWorkOrder(w), nil
}

func (r *WorkOrderRepo) GetForUpdate(id string) (*entity.WorkOrder, error) {
	return r.GetByID(id)
}

func (r *WorkOrderRepo) Update(order *entity.WorkOrder) error {
	r.store.workOrds[order.ID] = copyWorkOrder(order)
	return nil
}

func (r *WorkOrderRepo) ListOpen(limit, offset int) ([]*entity.WorkOrder, error) {
	var orders []*entity.WorkOrder
	for _, w := range r.store.workOrds {
		if w.Status == entity.WorkOrderOpen {
			orders = append(orders, copyWorkOrder(w))
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return paginate(orders, limit, offset), nil
}

func (r *WorkOrderRepo) ListByDateRange(from, to *time.Time, limit, offset int) ([]*entity.WorkOrder, error) {
	var orders []*entity.WorkOrder
	for _, w := range r.store.workOrds {
		if inRange(w.CreatedAt, from, to) {
			orders = append(orders, copyWorkOrder(w))
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return paginate(orders, limit, offset), nil
}

func (r *WorkOrderRepo) CountByDateRange(from, to *time.Time) (int, error) {
	total := 0
	for _, w := range r.store.workOrds {
		if inRange(w.CreatedAt, from, to) {
			total++
		}
	}
	return total, nil
}
