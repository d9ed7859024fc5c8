package workorder_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fabrica-api/internal/application/workorder"
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

type woFixture struct {
	uc     *workorder.WorkOrderUseCase
	stocks *memory.StockRepo
	orders *memory.WorkOrderRepo
}

// setup arma un producto terminado F cuya receta consume 10 kg de la materia
// prima A por unidad, con 50 kg de A en producción.
func setup(t *testing.T) woFixture {
	t.Helper()
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	stocks := memory.NewStockRepository(store)
	orders := memory.NewWorkOrderRepository(store)

	require.NoError(t, products.Create(&entity.Product{
		ID: "resina", SKU: "RES001", Name: "Resina", Category: entity.CategoryRaw, Unit: "kg",
	}))
	require.NoError(t, products.Create(&entity.Product{
		ID: "panel", SKU: "PNL001", Name: "Panel", Category: entity.CategoryFinished, Unit: "pcs",
		Recipe: []entity.RecipeItem{{RawProductID: "resina", Qty: dec("10")}},
	}))
	require.NoError(t, stocks.Upsert(&entity.Stock{
		ProductID: "resina", Department: entity.DepartmentProduction, Quantity: dec("50"),
	}))

	uc := workorder.NewWorkOrderUseCase(memory.NewTxRunner(store), products, stocks, orders)
	return woFixture{uc: uc, stocks: stocks, orders: orders}
}

func balance(t *testing.T, stocks *memory.StockRepo, productID string, dep entity.Department) decimal.Decimal {
	t.Helper()
	s, err := stocks.Get(productID, dep)
	require.NoError(t, err)
	return s.Quantity
}

var actor = domain.Actor{EmployeeID: "emp-1", Role: entity.RoleEmployee, Department: entity.DepartmentProduction}

func TestCreate_SoloProductosTerminados(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	order, err := f.uc.Create(ctx, actor, "panel", dec("5"))
	require.NoError(t, err)
	assert.Equal(t, entity.WorkOrderOpen, order.Status)
	assert.Equal(t, "emp-1", order.CreatedBy)

	_, err = f.uc.Create(ctx, actor, "resina", dec("5"))
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestFulfill_ConsumeYAcredita(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	order, err := f.uc.Create(ctx, actor, "panel", dec("5"))
	require.NoError(t, err)

	fulfilled, err := f.uc.Fulfill(ctx, order.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.WorkOrderFulfilled, fulfilled.Status)
	require.NotNil(t, fulfilled.FulfilledAt)
	// 5 unidades × 10 kg = 50 kg consumidos de producción.
	assert.True(t, balance(t, f.stocks, "resina", entity.DepartmentProduction).IsZero())
	assert.True(t, balance(t, f.stocks, "panel", entity.DepartmentFinished).Equal(dec("5")))
}

func TestFulfill_StockInsuficiente_OrdenSigueAbierta(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	// 20 unidades necesitan 200 kg; solo hay 50.
	order, err := f.uc.Create(ctx, actor, "panel", dec("20"))
	require.NoError(t, err)

	_, err = f.uc.Fulfill(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada cambió: ni stock ni estado.
	assert.True(t, balance(t, f.stocks, "resina", entity.DepartmentProduction).Equal(dec("50")))
	assert.True(t, balance(t, f.stocks, "panel", entity.DepartmentFinished).IsZero())

	reloaded, err := f.orders.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.WorkOrderOpen, reloaded.Status)
}

func TestFulfill_TodoONada_ConRecetaMultilinea(t *testing.T) {
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	stocks := memory.NewStockRepository(store)
	orders := memory.NewWorkOrderRepository(store)

	// Primera línea alcanza, segunda no: ninguna debe descontarse.
	require.NoError(t, products.Create(&entity.Product{
		ID: "a", SKU: "A1", Name: "Material A", Category: entity.CategoryRaw, Unit: "kg",
	}))
	require.NoError(t, products.Create(&entity.Product{
		ID: "b", SKU: "B1", Name: "Material B", Category: entity.CategoryRaw, Unit: "kg",
	}))
	require.NoError(t, products.Create(&entity.Product{
		ID: "f", SKU: "F1", Name: "Final", Category: entity.CategoryFinished, Unit: "pcs",
		Recipe: []entity.RecipeItem{
			{RawProductID: "a", Qty: dec("1")},
			{RawProductID: "b", Qty: dec("1")},
		},
	}))
	require.NoError(t, stocks.Upsert(&entity.Stock{
		ProductID: "a", Department: entity.DepartmentProduction, Quantity: dec("100"),
	}))
	require.NoError(t, stocks.Upsert(&entity.Stock{
		ProductID: "b", Department: entity.DepartmentProduction, Quantity: dec("3"),
	}))

	uc := workorder.NewWorkOrderUseCase(memory.NewTxRunner(store), products, stocks, orders)
	ctx := context.Background()

	order, err := uc.Create(ctx, actor, "f", dec("10"))
	require.NoError(t, err)

	_, err = uc.Fulfill(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Material B", "el error nombra el primer material faltante")

	assert.True(t, balance(t, stocks, "a", entity.DepartmentProduction).Equal(dec("100")),
		"la línea suficiente tampoco se descuenta")
	assert.True(t, balance(t, stocks, "b", entity.DepartmentProduction).Equal(dec("3")))
}

func TestFulfill_OrdenTerminal(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	order, err := f.uc.Create(ctx, actor, "panel", dec("2"))
	require.NoError(t, err)

	_, err = f.uc.Fulfill(ctx, order.ID)
	require.NoError(t, err)

	// Segundo fulfill sobre la misma orden: terminal, sin doble descuento.
	_, err = f.uc.Fulfill(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyTerminal)
	assert.True(t, balance(t, f.stocks, "panel", entity.DepartmentFinished).Equal(dec("2")))
}

func TestCancel_ConservaLaFila(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	order, err := f.uc.Create(ctx, actor, "panel", dec("3"))
	require.NoError(t, err)

	cancelled, err := f.uc.Cancel(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.WorkOrderCancelled, cancelled.Status)

	// La orden cancelada sigue existiendo y no admite fulfill.
	reloaded, err := f.orders.GetByID(order.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, entity.WorkOrderCancelled, reloaded.Status)

	_, err = f.uc.Fulfill(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyTerminal)
	assert.True(t, balance(t, f.stocks, "resina", entity.DepartmentProduction).Equal(dec("50")))
}

func TestCancel_OrdenYaCancelada(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	order, err := f.uc.Create(ctx, actor, "panel", dec("1"))
	require.NoError(t, err)

	_, err = f.uc.Cancel(ctx, order.ID)
	require.NoError(t, err)
	_, err = f.uc.Cancel(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyTerminal)
}

func TestFulfill_OrdenInexistente(t *testing.T) {
	f := setup(t)
	_, err := f.uc.Fulfill(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListOpen_ExcluyeTerminales(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	a, err := f.uc.Create(ctx, actor, "panel", dec("1"))
	require.NoError(t, err)
	b, err := f.uc.Create(ctx, actor, "panel", dec("2"))
	require.NoError(t, err)

	_, err = f.uc.Cancel(ctx, a.ID)
	require.NoError(t, err)

	open, err := f.uc.ListOpen(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, b.ID, open[0].ID)
}
