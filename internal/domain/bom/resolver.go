package bom

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fabrica-api/internal/domain"
	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/domain/repository"
)

// MaterialRequirement es el requerimiento calculado de una línea de receta:
// cuánto se necesita, cuánto hay en producción y cuánto falta.
type MaterialRequirement struct {
	RawProductID string
	Name         string
	Unit         string
	Needed       decimal.Decimal // qty por unidad × cantidad solicitada
	Available    decimal.Decimal // saldo actual en el departamento de producción
	Shortage     decimal.Decimal // max(0, Needed - Available)
}

// Preview es el resultado de explotar la receta de un producto terminado
// para una cantidad solicitada. Solo lectura: no muta nada.
type Preview struct {
	ProductID   string
	ProductName string
	Qty         decimal.Decimal
	Materials   []MaterialRequirement
}

// AnyShortage indica si alguna línea tiene faltante.
func (p *Preview) AnyShortage() bool {
	for _, m := range p.Materials {
		if m.Shortage.IsPositive() {
			return true
		}
	}
	return false
}

// FirstShortage devuelve la primera línea con faltante, en orden de receta.
func (p *Preview) FirstShortage() *MaterialRequirement {
	for i := range p.Materials {
		if p.Materials[i].Shortage.IsPositive() {
			return &p.Materials[i]
		}
	}
	return nil
}

// Resolver calcula requerimientos de materia prima contra el stock de
// producción. Se construye sobre repositorios (pool o tx): dentro de una
// transacción de fulfillment ve los mismos datos que el resto de la operación.
type Resolver struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
}

// NewResolver construye el resolver con los repos dados.
func NewResolver(productRepo repository.ProductRepository, stockRepo repository.StockRepository) *Resolver {
	return &Resolver{productRepo: productRepo, stockRepo: stockRepo}
}

// Preview explota la receta de un producto terminado para la cantidad pedida.
// La materia prima siempre se consume del departamento de producción.
// Falla con ErrNotFound si el producto no existe, con ErrInvalidCategory si
// no es terminado y con ValidationError si la cantidad no es positiva.
// Determinista: sin cambios de stock, dos llamadas con los mismos argumentos
// devuelven lo mismo.
func (r *Resolver) Preview(productID string, qty decimal.Decimal) (*Preview, error) {
	if !qty.IsPositive() {
		return nil, domain.Validation().Add("qty", "la cantidad debe ser mayor que 0").Err()
	}
	product, err := r.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.IsFinished() {
		return nil, domain.ErrInvalidCategory
	}

	preview := &Preview{
		ProductID:   product.ID,
		ProductName: product.Name,
		Qty:         qty,
		Materials:   make([]MaterialRequirement, 0, len(product.Recipe)),
	}
	for _, item := range product.Recipe {
		raw, err := r.productRepo.GetByID(item.RawProductID)
		if err != nil {
			return nil, err
		}
		if raw == nil {
			return nil, fmt.Errorf("materia prima %s de la receta: %w", item.RawProductID, domain.ErrNotFound)
		}
		stock, err := r.stockRepo.Get(item.RawProductID, entity.DepartmentProduction)
		if err != nil {
			return nil, err
		}
		needed := item.Qty.Mul(qty)
		shortage := needed.Sub(stock.Quantity)
		if shortage.IsNegative() {
			shortage = decimal.Zero
		}
		preview.Materials = append(preview.Materials, MaterialRequirement{
			RawProductID: raw.ID,
			Name:         raw.Name,
			Unit:         raw.Unit,
			Needed:       needed,
			Available:    stock.Quantity,
			Shortage:     shortage,
		})
	}
	return preview, nil
}
