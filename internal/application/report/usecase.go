package report

import (
	"context"
	"time"

	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/domain/repository"
)

// ReportUseCase consulta el historial de traslados, órdenes de trabajo y
// despachos por rango de fechas con paginación. Solo lectura: los motores
// escriben, los reportes miran.
type ReportUseCase struct {
	transferRepo  repository.TransferRecordRepository
	workOrderRepo repository.WorkOrderRepository
	dispatchRepo  repository.DispatchOrderRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	transferRepo repository.TransferRecordRepository,
	workOrderRepo repository.WorkOrderRepository,
	dispatchRepo repository.DispatchOrderRepository,
) *ReportUseCase {
	return &ReportUseCase{
		transferRepo:  transferRepo,
		workOrderRepo: workOrderRepo,
		dispatchRepo:  dispatchRepo,
	}
}

// Page resultado paginado genérico de los reportes.
type Page[T any] struct {
	Records    []T
	Total      int
	TotalPages int
}

func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}

// Transfers devuelve los traslados del rango [from, to].
func (uc *ReportUseCase) Transfers(ctx context.Context, from, to *time.Time, limit, offset int) (*Page[*entity.TransferRecord], error) {
	records, err := uc.transferRepo.ListByDateRange(from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.transferRepo.CountByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	return &Page[*entity.TransferRecord]{Records: records, Total: total, TotalPages: totalPages(total, limit)}, nil
}

// WorkOrders devuelve las órdenes de trabajo del rango [from, to].
func (uc *ReportUseCase) WorkOrders(ctx context.Context, from, to *time.Time, limit, offset int) (*Page[*entity.WorkOrder], error) {
	records, err := uc.workOrderRepo.ListByDateRange(from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.workOrderRepo.CountByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	return &Page[*entity.WorkOrder]{Records: records, Total: total, TotalPages: totalPages(total, limit)}, nil
}

// Dispatches devuelve las órdenes de despacho del rango [from, to].
func (uc *ReportUseCase) Dispatches(ctx context.Context, from, to *time.Time, limit, offset int) (*Page[*entity.DispatchOrder], error) {
	records, err := uc.dispatchRepo.ListByDateRange(from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.dispatchRepo.CountByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	return &Page[*entity.DispatchOrder]{Records: records, Total: total, TotalPages: totalPages(total, limit)}, nil
}
