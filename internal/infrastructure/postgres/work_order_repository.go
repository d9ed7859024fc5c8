package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementación de WorkOrderRepository sobre PostgreSQL.
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

const workOrderColumns = `id, product_id, qty, status, created_by, created_at, fulfilled_at`

func scanWorkOrder(row pgx.Row) (*entity.WorkOrder, error) {
	var w entity.WorkOrder
	err := row.Scan(&w.ID, &w.ProductID, &w.Qty, &w.Status, &w.CreatedBy, &w.CreatedAt, &w.FulfilledAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan work order: %w", err)
	}
	return &w, nil
}

// Create persiste una orden de trabajo nueva.
func (r *WorkOrderRepo) Create(order *entity.WorkOrder) error {
	query := `
		INSERT INTO work_orders (id, product_id, qty, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ProductID, order.Qty, order.Status, order.CreatedBy, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert work order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *WorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE id = $1`
	return scanWorkOrder(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene la orden bloqueando la fila (SELECT FOR UPDATE):
// fulfill y cancel concurrentes sobre la misma orden se serializan.
func (r *WorkOrderRepo) GetForUpdate(id string) (*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE id = $1 FOR UPDATE`
	return scanWorkOrder(r.q.QueryRow(context.Background(), query, id))
}

// Update persiste estado y fulfilled_at de la orden.
func (r *WorkOrderRepo) Update(order *entity.WorkOrder) error {
	query := `UPDATE work_orders SET status = $2, fulfilled_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, order.ID, order.Status, order.FulfilledAt)
	if err != nil {
		return fmt.Errorf("update work order: %w", err)
	}
	return nil
}

// ListOpen lista órdenes abiertas, más recientes primero.
func (r *WorkOrderRepo) ListOpen(limit, offset int) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders
		WHERE status = 'open' ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

func (r *WorkOrderRepo) list(query string, args ...any) ([]*entity.WorkOrder, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.WorkOrder
	for rows.Next() {
		var w entity.WorkOrder
		if err := rows.Scan(&w.ID, &w.ProductID, &w.Qty, &w.Status, &w.CreatedBy,
			&w.CreatedAt, &w.FulfilledAt); err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		orders = append(orders, &w)
	}
	return orders, rows.Err()
}

// ListByDateRange lista órdenes del rango para reportes (todos los estados).
func (r *WorkOrderRepo) ListByDateRange(from, to *time.Time, limit, offset int) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE 1=1`
	clause, args := dateRangeClause("created_at", from, to, nil)
	query += clause
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return r.list(query, args...)
}

// CountByDateRange cuenta órdenes del rango.
func (r *WorkOrderRepo) CountByDateRange(from, to *time.Time) (int, error) {
	query := `SELECT count(*) FROM work_orders WHERE 1=1`
	clause, args := dateRangeClause("created_at", from, to, nil)
	query += clause

	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count work orders: %w", err)
	}
	return total, nil
}
