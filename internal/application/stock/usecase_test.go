package stock_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fabrica-api/internal/application/stock"
	"github.com/jhoicas/fabrica-api/internal/domain"
	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/infrastructure/memory"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func setup(t *testing.T) (*stock.LedgerUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	stocks := memory.NewStockRepository(store)

	require.NoError(t, products.Create(&entity.Product{
		ID: "cobre", SKU: "COB001", Name: "Cobre", Category: entity.CategoryRaw, Unit: "kg",
		LowStockThreshold: dec("5"),
	}))

	uc := stock.NewLedgerUseCase(memory.NewTxRunner(store), products, stocks)
	return uc, store
}

func TestCredit_CreaSaldoPerezoso(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()

	// Sin fila previa: el saldo arranca en cero y el crédito la crea.
	before, err := uc.GetBalance(ctx, "cobre", entity.DepartmentRaw)
	require.NoError(t, err)
	assert.True(t, before.IsZero())

	s, err := uc.Credit(ctx, "cobre", entity.DepartmentRaw, dec("12.5"))
	require.NoError(t, err)
	assert.True(t, s.Quantity.Equal(dec("12.5")))

	after, err := uc.GetBalance(ctx, "cobre", entity.DepartmentRaw)
	require.NoError(t, err)
	assert.True(t, after.Equal(dec("12.5")))
}

func TestCredit_PrimerosCreditosConcurrentes_ConservanElTotal(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()

	// Varios créditos simultáneos sobre una fila que todavía no existe:
	// ninguno puede pisar al otro y el total es la suma de todos.
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Credit(ctx, "cobre", entity.DepartmentProduction, dec("3"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	balance, err := uc.GetBalance(ctx, "cobre", entity.DepartmentProduction)
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("30")))
}

func TestCredit_ProductoInexistente(t *testing.T) {
	uc, _ := setup(t)
	_, err := uc.Credit(context.Background(), "nope", entity.DepartmentRaw, dec("1"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDebit_NuncaDejaNegativo(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()

	_, err := uc.Credit(ctx, "cobre", entity.DepartmentRaw, dec("10"))
	require.NoError(t, err)

	_, err = uc.Debit(ctx, "cobre", entity.DepartmentRaw, dec("10.000001"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	balance, err := uc.GetBalance(ctx, "cobre", entity.DepartmentRaw)
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("10")), "un débito rechazado no cambia el saldo")

	s, err := uc.Debit(ctx, "cobre", entity.DepartmentRaw, dec("10"))
	require.NoError(t, err)
	assert.True(t, s.Quantity.IsZero(), "debitar el saldo exacto deja cero")
}

func TestValidaciones_AcumulanErrores(t *testing.T) {
	uc, _ := setup(t)

	_, err := uc.Credit(context.Background(), "", "bodega", dec("0"))
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)

	_, err = uc.Debit(context.Background(), "cobre", entity.DepartmentRaw, dec("-1"))
	require.ErrorAs(t, err, &verr)
}

func TestList_FiltraPorDepartamento(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()

	_, err := uc.Credit(ctx, "cobre", entity.DepartmentRaw, dec("7"))
	require.NoError(t, err)
	_, err = uc.Credit(ctx, "cobre", entity.DepartmentProduction, dec("3"))
	require.NoError(t, err)

	all, err := uc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	raw := entity.DepartmentRaw
	filtered, err := uc.List(ctx, &raw)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, entity.DepartmentRaw, filtered[0].Department)
	assert.Equal(t, "COB001", filtered[0].SKU)
}

func TestLowStock_RespetaElUmbral(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()

	// Umbral del producto: 5. Con 7 no alerta; con 4 sí.
	_, err := uc.Credit(ctx, "cobre", entity.DepartmentRaw, dec("7"))
	require.NoError(t, err)

	alerts, err := uc.LowStock(ctx)
	require.NoError(t, err)
	assert.Empty(t, alerts)

	_, err = uc.Debit(ctx, "cobre", entity.DepartmentRaw, dec("3"))
	require.NoError(t, err)

	alerts, err = uc.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.True(t, alerts[0].Quantity.Equal(dec("4")))
	assert.True(t, alerts[0].Threshold.Equal(dec("5")))
}
