package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fabrica-api/internal/application/dto"
	"github.com/jhoicas/fabrica-api/internal/application/report"
)

// ReportHandler maneja los reportes históricos por rango de fechas.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// pageResponse envuelve los registros con los totales de paginación.
type pageResponse struct {
	Records    any `json:"records"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// parseDate acepta fecha sola (2006-01-02) o RFC3339.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// dateRange lee from/to de la query; el rango es opcional en ambos extremos.
func dateRange(c *fiber.Ctx) (from, to *time.Time, err error) {
	from, err = parseDate(c.Query("from"))
	if err != nil {
		return nil, nil, err
	}
	to, err = parseDate(c.Query("to"))
	if err != nil {
		return nil, nil, err
	}
	// "to" como fecha sola cubre el día completo.
	if to != nil && c.Query("to") != "" && len(c.Query("to")) == len("2006-01-02") {
		end := to.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}
	return from, to, nil
}

// Transfers devuelve los traslados del rango.
func (h *ReportHandler) Transfers(c *fiber.Ctx) error {
	from, to, err := dateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fecha inválida, usar YYYY-MM-DD o RFC3339"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	result, err := h.uc.Transfers(c.Context(), from, to, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pageResponse{
		Records:    dto.NewTransferRecordDTOs(result.Records),
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

// WorkOrders devuelve las órdenes de trabajo del rango.
func (h *ReportHandler) WorkOrders(c *fiber.Ctx) error {
	from, to, err := dateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fecha inválida, usar YYYY-MM-DD o RFC3339"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	result, err := h.uc.WorkOrders(c.Context(), from, to, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pageResponse{
		Records:    dto.NewWorkOrderDTOs(result.Records),
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

// Dispatches devuelve los pedidos de despacho del rango.
func (h *ReportHandler) Dispatches(c *fiber.Ctx) error {
	from, to, err := dateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fecha inválida, usar YYYY-MM-DD o RFC3339"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	result, err := h.uc.Dispatches(c.Context(), from, to, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pageResponse{
		Records:    dto.NewDispatchOrderDTOs(result.Records),
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}
