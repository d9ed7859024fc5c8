package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa el saldo actual de un producto en un departamento.
// Clave natural: (ProductID, Department). Quantity nunca es negativa;
// el libro de stock es el único componente que la modifica.
type Stock struct {
	ProductID  string
	Department Department
	Quantity   decimal.Decimal
	UpdatedAt  time.Time
}

// StockItem es un saldo enriquecido con los datos del producto (para listados).
type StockItem struct {
	Stock
	SKU      string
	Name     string
	Category string
	Unit     string
}

// LowStockItem es un saldo que cayó en o por debajo del umbral configurado
// en el producto. Alimenta la lista de alertas de reposición.
type LowStockItem struct {
	ProductID  string
	SKU        string
	Name       string
	Unit       string
	Department Department
	Quantity   decimal.Decimal
	Threshold  decimal.Decimal
}
