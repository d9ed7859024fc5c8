package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fabrica-api/internal/application/dto"
	"github.com/jhoicas/fabrica-api/internal/application/workorder"
)

// WorkOrderHandler maneja el ciclo de vida de las órdenes de trabajo.
type WorkOrderHandler struct {
	uc *workorder.WorkOrderUseCase
}

// NewWorkOrderHandler construye el handler.
func NewWorkOrderHandler(uc *workorder.WorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{uc: uc}
}

// Create abre una orden de trabajo para un producto terminado.
func (h *WorkOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Create(c.Context(), GetActor(c), in.ProductID, in.Qty)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewWorkOrderDTO(order))
}

// Preview explota la receta contra el stock de producción sin mutar nada.
// Query: ?product_id=...&qty=...
func (h *WorkOrderHandler) Preview(c *fiber.Ctx) error {
	qty, err := decimal.NewFromString(c.Query("qty", "1"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "qty inválida"})
	}
	preview, err := h.uc.Preview(c.Context(), c.Query("product_id"), qty)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewBOMPreviewDTO(preview))
}

// Fulfill ejecuta la orden: consume materia prima y acredita producto terminado.
func (h *WorkOrderHandler) Fulfill(c *fiber.Ctx) error {
	order, err := h.uc.Fulfill(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewWorkOrderDTO(order))
}

// Cancel marca la orden como cancelada sin tocar stock.
func (h *WorkOrderHandler) Cancel(c *fiber.Ctx) error {
	order, err := h.uc.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewWorkOrderDTO(order))
}

// ListOpen devuelve las órdenes abiertas.
func (h *WorkOrderHandler) ListOpen(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	orders, err := h.uc.ListOpen(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewWorkOrderDTOs(orders))
}
