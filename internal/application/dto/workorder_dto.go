package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fabrica-api/internal/domain/bom"
	"github.com/jhoicas/fabrica-api/internal/domain/entity"
)

// CreateWorkOrderRequest body para POST /api/workorders.
type CreateWorkOrderRequest struct {
	ProductID string          `json:"product_id"`
	Qty       decimal.Decimal `json:"qty"`
}

// WorkOrderDTO orden de trabajo en respuestas.
type WorkOrderDTO struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Qty         decimal.Decimal `json:"qty"`
	Status      string          `json:"status"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	FulfilledAt *time.Time      `json:"fulfilled_at,omitempty"`
}

// MaterialRequirementDTO línea del preview de receta.
type MaterialRequirementDTO struct {
	RawProductID string          `json:"raw_product_id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	Needed       decimal.Decimal `json:"needed"`
	Available    decimal.Decimal `json:"available"`
	Shortage     decimal.Decimal `json:"shortage"`
}

// BOMPreviewDTO respuesta de GET /api/workorders/preview.
type BOMPreviewDTO struct {
	ProductID   string                   `json:"product_id"`
	ProductName string                   `json:"product_name"`
	Qty         decimal.Decimal          `json:"qty"`
	Materials   []MaterialRequirementDTO `json:"materials"`
	AnyShortage bool                     `json:"any_shortage"`
}

// NewWorkOrderDTO convierte la entidad en DTO.
func NewWorkOrderDTO(w *entity.WorkOrder) WorkOrderDTO {
	return WorkOrderDTO{
		ID:          w.ID,
		ProductID:   w.ProductID,
		Qty:         w.Qty,
		Status:      w.Status,
		CreatedBy:   w.CreatedBy,
		CreatedAt:   w.CreatedAt,
		FulfilledAt: w.FulfilledAt,
	}
}

// NewWorkOrderDTOs convierte un listado.
func NewWorkOrderDTOs(orders []*entity.WorkOrder) []WorkOrderDTO {
	out := make([]WorkOrderDTO, 0, len(orders))
	for _, w := range orders {
		out = append(out, NewWorkOrderDTO(w))
	}
	return out
}

// NewBOMPreviewDTO convierte el preview del resolver en DTO.
func NewBOMPreviewDTO(p *bom.Preview) BOMPreviewDTO {
	materials := make([]MaterialRequirementDTO, 0, len(p.Materials))
	for _, m := range p.Materials {
		materials = append(materials, MaterialRequirementDTO{
			RawProductID: m.RawProductID,
			Name:         m.Name,
			Unit:         m.Unit,
			Needed:       m.Needed,
			Available:    m.Available,
			Shortage:     m.Shortage,
		})
	}
	return BOMPreviewDTO{
		ProductID:   p.ProductID,
		ProductName: p.ProductName,
		Qty:         p.Qty,
		Materials:   materials,
		AnyShortage: p.AnyShortage(),
	}
}
