package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fabrica-api/internal/domain/entity"
)

// RecipeItemDTO línea de receta en requests y respuestas.
type RecipeItemDTO struct {
	RawProductID string          `json:"raw_product_id"`
	Qty          decimal.Decimal `json:"qty"`
}

// ProductRequest body para crear/actualizar un producto.
type ProductRequest struct {
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Unit              string          `json:"unit"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
	Recipe            []RecipeItemDTO `json:"recipe,omitempty"`
}

// ProductDTO producto en respuestas.
type ProductDTO struct {
	ID                string          `json:"id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Unit              string          `json:"unit"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
	Recipe            []RecipeItemDTO `json:"recipe,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// RecipeItems convierte las líneas del request en entidades.
func (r ProductRequest) RecipeItems() []entity.RecipeItem {
	items := make([]entity.RecipeItem, 0, len(r.Recipe))
	for _, it := range r.Recipe {
		items = append(items, entity.RecipeItem{RawProductID: it.RawProductID, Qty: it.Qty})
	}
	return items
}

// NewProductDTO convierte la entidad en DTO.
func NewProductDTO(p *entity.Product) ProductDTO {
	recipe := make([]RecipeItemDTO, 0, len(p.Recipe))
	for _, it := range p.Recipe {
		recipe = append(recipe, RecipeItemDTO{RawProductID: it.RawProductID, Qty: it.Qty})
	}
	return ProductDTO{
		ID:                p.ID,
		SKU:               p.SKU,
		Name:              p.Name,
		Category:          p.Category,
		Unit:              p.Unit,
		LowStockThreshold: p.LowStockThreshold,
		Recipe:            recipe,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// NewProductDTOs convierte un listado.
func NewProductDTOs(products []*entity.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductDTO(p))
	}
	return out
}
