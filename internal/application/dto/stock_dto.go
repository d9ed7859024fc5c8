package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fabrica-api/internal/domain/entity"
)

// StockEntryRequest body para POST /api/stock/credit y /api/stock/debit.
type StockEntryRequest struct {
	ProductID  string          `json:"product_id"`
	Department string          `json:"department"`
	Qty        decimal.Decimal `json:"qty"`
}

// StockBalanceDTO saldo resultante de un crédito/débito.
type StockBalanceDTO struct {
	ProductID  string          `json:"product_id"`
	Department string          `json:"department"`
	Quantity   decimal.Decimal `json:"quantity"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// StockItemDTO saldo con datos de producto para listados.
type StockItemDTO struct {
	ProductID  string          `json:"product_id"`
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Unit       string          `json:"unit"`
	Department string          `json:"department"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// LowStockItemDTO alerta de saldo en o por debajo del umbral.
type LowStockItemDTO struct {
	ProductID  string          `json:"product_id"`
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	Department string          `json:"department"`
	Quantity   decimal.Decimal `json:"quantity"`
	Threshold  decimal.Decimal `json:"threshold"`
}

// NewStockBalanceDTO convierte la entidad en DTO.
func NewStockBalanceDTO(s *entity.Stock) StockBalanceDTO {
	return StockBalanceDTO{
		ProductID:  s.ProductID,
		Department: string(s.Department),
		Quantity:   s.Quantity,
		UpdatedAt:  s.UpdatedAt,
	}
}

// NewStockItemDTOs convierte el listado de saldos.
func NewStockItemDTOs(items []*entity.StockItem) []StockItemDTO {
	out := make([]StockItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, StockItemDTO{
			ProductID:  it.ProductID,
			SKU:        it.SKU,
			Name:       it.Name,
			Category:   it.Category,
			Unit:       it.Unit,
			Department: string(it.Department),
			Quantity:   it.Quantity,
		})
	}
	return out
}

// NewLowStockItemDTOs convierte el listado de alertas.
func NewLowStockItemDTOs(items []*entity.LowStockItem) []LowStockItemDTO {
	out := make([]LowStockItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, LowStockItemDTO{
			ProductID:  it.ProductID,
			SKU:        it.SKU,
			Name:       it.Name,
			Unit:       it.Unit,
			Department: string(it.Department),
			Quantity:   it.Quantity,
			Threshold:  it.Threshold,
		})
	}
	return out
}
