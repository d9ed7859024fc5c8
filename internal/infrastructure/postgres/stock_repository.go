package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el saldo actual de un producto en un departamento.
// Si la fila no existe devuelve un saldo en cero (creación perezosa).
func (r *StockRepo) Get(productID string, dep entity.Department) (*entity.Stock, error) {
	query := `
		SELECT product_id, department, quantity, updated_at
		FROM stock WHERE product_id = $1 AND department = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, string(dep)).Scan(
		&s.ProductID, &s.Department, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, Department: dep, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el saldo y bloquea la fila para update (SELECT FOR UPDATE).
// Materializa la fila en cero antes de bloquear: FOR UPDATE sobre una fila
// inexistente no retiene ningún lock, y dos primeros créditos concurrentes al
// mismo (producto, departamento) se pisarían el saldo entre sí.
func (r *StockRepo) GetForUpdate(productID string, dep entity.Department) (*entity.Stock, error) {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO stock (product_id, department, quantity, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (product_id, department) DO NOTHING`,
		productID, string(dep),
	)
	if err != nil {
		return nil, fmt.Errorf("materialize stock row: %w", err)
	}
	query := `
		SELECT product_id, department, quantity, updated_at
		FROM stock WHERE product_id = $1 AND department = $2
		FOR UPDATE`
	var s entity.Stock
	err = r.q.QueryRow(context.Background(), query, productID, string(dep)).Scan(
		&s.ProductID, &s.Department, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, Department: dep, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza el saldo (por producto y departamento).
// El constraint CHECK (quantity >= 0) de la tabla es la última línea de
// defensa contra saldos negativos.
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, department, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, department)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ProductID, string(stock.Department), stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// List devuelve los saldos con datos del producto; dep nil = todos los departamentos.
func (r *StockRepo) List(dep *entity.Department) ([]*entity.StockItem, error) {
	query := `
		SELECT s.product_id, s.department, s.quantity, s.updated_at, p.sku, p.name, p.category, p.unit
		FROM stock s JOIN products p ON p.id = s.product_id`
	args := []any{}
	if dep != nil {
		query += ` WHERE s.department = $1`
		args = append(args, string(*dep))
	}
	query += ` ORDER BY p.name, s.department`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var items []*entity.StockItem
	for rows.Next() {
		var it entity.StockItem
		if err := rows.Scan(&it.ProductID, &it.Department, &it.Quantity, &it.UpdatedAt,
			&it.SKU, &it.Name, &it.Category, &it.Unit); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// ListLowStock devuelve los saldos en o por debajo del umbral del producto.
func (r *StockRepo) ListLowStock() ([]*entity.LowStockItem, error) {
	query := `
		SELECT s.product_id, p.sku, p.name, p.unit, s.department, s.quantity, p.low_stock_threshold
		FROM stock s JOIN products p ON p.id = s.product_id
		WHERE p.low_stock_threshold > 0 AND s.quantity <= p.low_stock_threshold
		ORDER BY s.quantity / p.low_stock_threshold`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	var items []*entity.LowStockItem
	for rows.Next() {
		var it entity.LowStockItem
		if err := rows.Scan(&it.ProductID, &it.SKU, &it.Name, &it.Unit,
			&it.Department, &it.Quantity, &it.Threshold); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}
