package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fabrica-api/internal/domain/entity"
)

// TransferRequest body para POST /api/transfers.
type TransferRequest struct {
	ProductID      string          `json:"product_id"`
	FromDepartment string          `json:"from_department"`
	ToDepartment   string          `json:"to_department"`
	Qty            decimal.Decimal `json:"qty"`
}

// TransferRecordDTO registro de traslado en respuestas.
type TransferRecordDTO struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	FromDepartment string          `json:"from_department"`
	ToDepartment   string          `json:"to_department"`
	Qty            decimal.Decimal `json:"qty"`
	TransferredBy  string          `json:"transferred_by"`
	TransferredAt  time.Time       `json:"transferred_at"`
}

// NewTransferRecordDTO convierte la entidad en DTO.
func NewTransferRecordDTO(r *entity.TransferRecord) TransferRecordDTO {
	return TransferRecordDTO{
		ID:             r.ID,
		ProductID:      r.ProductID,
		FromDepartment: string(r.FromDepartment),
		ToDepartment:   string(r.ToDepartment),
		Qty:            r.Qty,
		TransferredBy:  r.TransferredBy,
		TransferredAt:  r.TransferredAt,
	}
}

// NewTransferRecordDTOs convierte un listado.
func NewTransferRecordDTOs(records []*entity.TransferRecord) []TransferRecordDTO {
	out := make([]TransferRecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, NewTransferRecordDTO(r))
	}
	return out
}
