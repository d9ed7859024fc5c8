package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fabrica-api/internal/application/dispatch"
	"github.com/jhoicas/fabrica-api/internal/application/dto"
)

// DispatchHandler maneja los pedidos de despacho a clientes.
type DispatchHandler struct {
	uc *dispatch.DispatchUseCase
}

// NewDispatchHandler construye el handler.
func NewDispatchHandler(uc *dispatch.DispatchUseCase) *DispatchHandler {
	return &DispatchHandler{uc: uc}
}

// Create registra un pedido pendiente (sin reservar stock).
func (h *DispatchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Create(c.Context(), in.ProductID, in.Quantity, in.ClientName)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewDispatchOrderDTO(order))
}

// Fulfill despacha el pedido debitando stock de producto terminado.
func (h *DispatchHandler) Fulfill(c *fiber.Ctx) error {
	order, err := h.uc.Fulfill(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewDispatchOrderDTO(order))
}

// Cancel marca el pedido como cancelado sin efecto en stock.
func (h *DispatchHandler) Cancel(c *fiber.Ctx) error {
	order, err := h.uc.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewDispatchOrderDTO(order))
}

// ListPending devuelve los pedidos pendientes en orden de llegada.
func (h *DispatchHandler) ListPending(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	orders, err := h.uc.ListPending(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewDispatchOrderDTOs(orders))
}
