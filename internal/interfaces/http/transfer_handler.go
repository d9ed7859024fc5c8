package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fabrica-api/internal/application/dto"
	"github.com/jhoicas/fabrica-api/internal/application/transfer"
	"github.com/jhoicas/fabrica-api/internal/domain/entity"
)

// TransferHandler maneja los traslados de stock entre departamentos.
type TransferHandler struct {
	uc *transfer.TransferUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *transfer.TransferUseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Create ejecuta un traslado en nombre del actor autenticado.
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	record, err := h.uc.Transfer(c.Context(), GetActor(c), transfer.Input{
		ProductID:      in.ProductID,
		FromDepartment: entity.Department(in.FromDepartment),
		ToDepartment:   entity.Department(in.ToDepartment),
		Qty:            in.Qty,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewTransferRecordDTO(record))
}
