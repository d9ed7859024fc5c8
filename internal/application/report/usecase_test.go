package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fabrica-api/internal/application/report"
	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/infrastructure/memory"
)

func setup(t *testing.T) (*report.ReportUseCase, *memory.TransferRecordRepo) {
	t.Helper()
	store := memory.NewStore()
	transfers := memory.NewTransferRecordRepository(store)
	workOrders := memory.NewWorkOrderRepository(store)
	dispatches := memory.NewDispatchOrderRepository(store)
	return report.NewReportUseCase(transfers, workOrders, dispatches), transfers
}

func seedTransfers(t *testing.T, repo *memory.TransferRecordRepo, days ...int) {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, d := range days {
		require.NoError(t, repo.Create(&entity.TransferRecord{
			ID:             string(rune('a' + i)),
			ProductID:      "p1",
			FromDepartment: entity.DepartmentRaw,
			ToDepartment:   entity.DepartmentProduction,
			Qty:            decimal.NewFromInt(1),
			TransferredAt:  base.AddDate(0, 0, d),
		}))
	}
}

func TestTransfers_FiltraPorRango(t *testing.T) {
	uc, transfers := setup(t)
	seedTransfers(t, transfers, 0, 5, 10, 15)

	from := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	page, err := uc.Transfers(context.Background(), &from, &to, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Len(t, page.Records, 2)
	assert.Equal(t, 1, page.TotalPages)
}

func TestTransfers_RangoAbierto(t *testing.T) {
	uc, transfers := setup(t)
	seedTransfers(t, transfers, 0, 5, 10)

	// Sin from ni to: todo el historial.
	page, err := uc.Transfers(context.Background(), nil, nil, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)

	// Solo from.
	from := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	page, err = uc.Transfers(context.Background(), &from, nil, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestTransfers_PaginaYCalculaTotales(t *testing.T) {
	uc, transfers := setup(t)
	seedTransfers(t, transfers, 0, 1, 2, 3, 4)

	page, err := uc.Transfers(context.Background(), nil, nil, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Records, 2)
	// Más recientes primero.
	assert.True(t, page.Records[0].TransferredAt.After(page.Records[1].TransferredAt))
}
