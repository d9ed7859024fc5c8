package repository

import "github.com/jhoicas/fabrica-api/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar saldos por
// producto+departamento. Las mutaciones siempre ocurren dentro de una
// transacción, vía los puntos de entrada del libro de stock.
type StockRepository interface {
	// Get devuelve el saldo actual; si no existe la fila, devuelve un saldo
	// en cero (el saldo se crea de forma perezosa en el primer crédito).
	Get(productID string, dep entity.Department) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productID string, dep entity.Department) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	// List devuelve los saldos con datos de producto; dep nil = todos.
	List(dep *entity.Department) ([]*entity.StockItem, error)
	// ListLowStock devuelve los saldos en o por debajo del umbral del producto.
	ListLowStock() ([]*entity.LowStockItem, error)
}
