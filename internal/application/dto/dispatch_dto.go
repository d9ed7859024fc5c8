package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fabrica-api/internal/domain/entity"
)

// CreateDispatchRequest body para POST /api/dispatch.
type CreateDispatchRequest struct {
	ProductID  string          `json:"product_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	ClientName string          `json:"client_name"`
}

// DispatchOrderDTO orden de despacho en respuestas.
type DispatchOrderDTO struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	ClientName  string          `json:"client_name"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
}

// NewDispatchOrderDTO convierte la entidad en DTO.
func NewDispatchOrderDTO(d *entity.DispatchOrder) DispatchOrderDTO {
	return DispatchOrderDTO{
		ID:          d.ID,
		ProductID:   d.ProductID,
		Quantity:    d.Quantity,
		ClientName:  d.ClientName,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
		ProcessedAt: d.ProcessedAt,
	}
}

// NewDispatchOrderDTOs convierte un listado.
func NewDispatchOrderDTOs(orders []*entity.DispatchOrder) []DispatchOrderDTO {
	out := make([]DispatchOrderDTO, 0, len(orders))
	for _, d := range orders {
		out = append(out, NewDispatchOrderDTO(d))
	}
	return out
}
