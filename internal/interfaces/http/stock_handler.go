package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fabrica-api/internal/application/dto"
	"github.com/jhoicas/fabrica-api/internal/application/stock"
	"github.com/jhoicas/fabrica-api/internal/domain/entity"
)

// StockHandler maneja las peticiones HTTP del libro de stock.
type StockHandler struct {
	uc *stock.LedgerUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.LedgerUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List devuelve los saldos, con filtro opcional ?department=.
func (h *StockHandler) List(c *fiber.Ctx) error {
	var dep *entity.Department
	if q := c.Query("department"); q != "" {
		d := entity.Department(q)
		dep = &d
	}
	items, err := h.uc.List(c.Context(), dep)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewStockItemDTOs(items))
}

// GetBalance devuelve el saldo de un producto en un departamento.
func (h *StockHandler) GetBalance(c *fiber.Ctx) error {
	productID := c.Params("productId")
	dep := entity.Department(c.Params("department"))
	balance, err := h.uc.GetBalance(c.Context(), productID, dep)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StockBalanceDTO{
		ProductID:  productID,
		Department: string(dep),
		Quantity:   balance,
	})
}

// Credit suma stock a un producto en un departamento.
func (h *StockHandler) Credit(c *fiber.Ctx) error {
	var in dto.StockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.Credit(c.Context(), in.ProductID, entity.Department(in.Department), in.Qty)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewStockBalanceDTO(s))
}

// Debit resta stock de un producto en un departamento.
func (h *StockHandler) Debit(c *fiber.Ctx) error {
	var in dto.StockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.Debit(c.Context(), in.ProductID, entity.Department(in.Department), in.Qty)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewStockBalanceDTO(s))
}

// LowStock devuelve las alertas de saldo en o por debajo del umbral.
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.LowStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewLowStockItemDTOs(items))
}
