package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fabrica-api/internal/application/auth"
	"github.com/jhoicas/fabrica-api/internal/application/dto"
)

// EmployeeHandler maneja la administración de empleados (solo admin).
type EmployeeHandler struct {
	uc *auth.AuthUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *auth.AuthUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List devuelve los empleados paginados.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	employees, err := h.uc.ListEmployees(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewEmployeeDTOs(employees))
}

// GetByID obtiene un empleado.
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	employee, err := h.uc.GetEmployee(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewEmployeeDTO(employee))
}

// Delete elimina un empleado.
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteEmployee(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
