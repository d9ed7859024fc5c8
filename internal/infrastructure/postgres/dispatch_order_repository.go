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

var _ repository.DispatchOrderRepository = (*DispatchOrderRepo)(nil)

// DispatchOrderRepo implementación de DispatchOrderRepository sobre PostgreSQL.
type DispatchOrderRepo struct {
	q Querier
}

// NewDispatchOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDispatchOrderRepository(q Querier) *DispatchOrderRepo {
	return &DispatchOrderRepo{q: q}
}

const dispatchColumns = `id, product_id, quantity, client_name, status, created_at, processed_at`

func scanDispatchOrder(row pgx.Row) (*entity.DispatchOrder, error) {
	var d entity.DispatchOrder
	err := row.Scan(&d.ID, &d.ProductID, &d.Quantity, &d.ClientName, &d.Status, &d.CreatedAt, &d.ProcessedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan dispatch order: %w", err)
	}
	return &d, nil
}

// Create persiste un pedido de despacho nuevo.
func (r *DispatchOrderRepo) Create(order *entity.DispatchOrder) error {
	query := `
		INSERT INTO dispatch_orders (id, product_id, quantity, client_name, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ProductID, order.Quantity, order.ClientName, order.Status, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert dispatch order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *DispatchOrderRepo) GetByID(id string) (*entity.DispatchOrder, error) {
	query := `SELECT ` + dispatchColumns + ` FROM dispatch_orders WHERE id = $1`
	return scanDispatchOrder(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene el pedido bloqueando la fila (SELECT FOR UPDATE).
func (r *DispatchOrderRepo) GetForUpdate(id string) (*entity.DispatchOrder, error) {
	query := `SELECT ` + dispatchColumns + ` FROM dispatch_orders WHERE id = $1 FOR UPDATE`
	return scanDispatchOrder(r.q.QueryRow(context.Background(), query, id))
}

// Update persiste estado y processed_at del pedido.
func (r *DispatchOrderRepo) Update(order *entity.DispatchOrder) error {
	query := `UPDATE dispatch_orders SET status = $2, processed_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, order.ID, order.Status, order.ProcessedAt)
	if err != nil {
		return fmt.Errorf("update dispatch order: %w", err)
	}
	return nil
}

// ListPending lista pedidos pendientes, más antiguos primero (orden de llegada).
func (r *DispatchOrderRepo) ListPending(limit, offset int) ([]*entity.DispatchOrder, error) {
	query := `SELECT ` + dispatchColumns + ` FROM dispatch_orders
		WHERE status = 'pending' ORDER BY created_at LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

func (r *DispatchOrderRepo) list(query string, args ...any) ([]*entity.DispatchOrder, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list dispatch orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.DispatchOrder
	for rows.Next() {
		var d entity.DispatchOrder
		if err := rows.Scan(&d.ID, &d.ProductID, &d.Quantity, &d.ClientName, &d.Status,
			&d.CreatedAt, &d.ProcessedAt); err != nil {
			return nil, fmt.Errorf("scan dispatch order: %w", err)
		}
		orders = append(orders, &d)
	}
	return orders, rows.Err()
}

// ListByDateRange lista pedidos del rango para reportes (todos los estados).
func (r *DispatchOrderRepo) ListByDateRange(from, to *time.Time, limit, offset int) ([]*entity.DispatchOrder, error) {
	query := `SELECT ` + dispatchColumns + ` FROM dispatch_orders WHERE 1=1`
	clause, args := dateRangeClause("created_at", from, to, nil)
	query += clause
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return r.list(query, args...)
}

// CountByDateRange cuenta pedidos del rango.
func (r *DispatchOrderRepo) CountByDateRange(from, to *time.Time) (int, error) {
	query := `SELECT count(*) FROM dispatch_orders WHERE 1=1`
	clause, args := dateRangeClause("created_at", from, to, nil)
	query += clause

	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count dispatch orders: %w", err)
	}
	return total, nil
}
