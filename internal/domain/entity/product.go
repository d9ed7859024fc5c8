package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto.
const (
	CategoryRaw      = "raw"      // materia prima
	CategoryFinished = "finished" // producto terminado (requiere receta)
)

// RecipeItem es una línea de la receta (BOM): cuánta materia prima
// se consume por cada unidad de producto terminado.
type RecipeItem struct {
	RawProductID string
	Qty          decimal.Decimal // cantidad por unidad, siempre > 0
}

// Product representa un producto del catálogo. Para category = finished la
// receta tiene al menos una línea; para raw la receta queda vacía.
// Las cantidades en stock se manejan por departamento en Stock, nunca aquí.
type Product struct {
	ID                string
	SKU               string // código único, alfanumérico
	Name              string
	Category          string // raw | finished
	Unit              string // unidad de medida, por defecto "pcs"
	LowStockThreshold decimal.Decimal
	Recipe            []RecipeItem
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsFinished indica si el producto es terminado (tiene receta).
func (p *Product) IsFinished() bool {
	return p.Category == CategoryFinished
}
