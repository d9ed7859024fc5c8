package dispatch_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fabrica-api/internal/application/dispatch"
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

type dispatchFixture struct {
	uc     *dispatch.DispatchUseCase
	stocks *memory.StockRepo
	orders *memory.DispatchOrderRepo
}

// setup arma un producto terminado con 10 unidades en finished.
func setup(t *testing.T) dispatchFixture {
	t.Helper()
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	stocks := memory.NewStockRepository(store)
	orders := memory.NewDispatchOrderRepository(store)

	require.NoError(t, products.Create(&entity.Product{
		ID: "mueble", SKU: "MUE001", Name: "Mueble", Category: entity.CategoryFinished, Unit: "pcs",
		Recipe: []entity.RecipeItem{{RawProductID: "madera", Qty: dec("1")}},
	}))
	require.NoError(t, stocks.Upsert(&entity.Stock{
		ProductID: "mueble", Department: entity.DepartmentFinished, Quantity: dec("10"),
	}))

	uc := dispatch.NewDispatchUseCase(memory.NewTxRunner(store), products, orders)
	return dispatchFixture{uc: uc, stocks: stocks, orders: orders}
}

func balance(t *testing.T, stocks *memory.StockRepo, productID string) decimal.Decimal {
	t.Helper()
	s, err := stocks.Get(productID, entity.DepartmentFinished)
	require.NoError(t, err)
	return s.Quantity
}

func TestCreate_NoReservaStock(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	// Dos pedidos que juntos exceden el stock: ambos se aceptan.
	a, err := f.uc.Create(ctx, "mueble", dec("8"), "Cliente Uno")
	require.NoError(t, err)
	b, err := f.uc.Create(ctx, "mueble", dec("8"), "Cliente Dos")
	require.NoError(t, err)

	assert.Equal(t, entity.DispatchPending, a.Status)
	assert.Equal(t, entity.DispatchPending, b.Status)
	assert.True(t, balance(t, f.stocks, "mueble").Equal(dec("10")), "crear no toca stock")
}

func TestCreate_ValidaNombreDeCliente(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, "mueble", dec("1"), "A")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	long := make([]byte, 51)
	for i := range long {
		long[i] = 'x'
	}
	_, err = f.uc.Create(ctx, "mueble", dec("1"), string(long))
	require.ErrorAs(t, err, &verr)
}

func TestCreate_ProductoInexistente(t *testing.T) {
	f := setup(t)
	_, err := f.uc.Create(context.Background(), "nope", dec("1"), "Cliente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFulfill_DebitaYMarcaDespachado(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	order, err := f.uc.Create(ctx, "mueble", dec("4"), "Cliente Uno")
	require.NoError(t, err)

	fulfilled, err := f.uc.Fulfill(ctx, order.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.DispatchFulfilled, fulfilled.Status)
	require.NotNil(t, fulfilled.ProcessedAt)
	assert.True(t, balance(t, f.stocks, "mueble").Equal(dec("6")))
}

func TestFulfill_StockInsuficiente_SiguePendiente(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	order, err := f.uc.Create(ctx, "mueble", dec("11"), "Cliente Uno")
	require.NoError(t, err)

	_, err = f.uc.Fulfill(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	reloaded, err := f.orders.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DispatchPending, reloaded.Status, "el pedido queda pendiente para reintentar")
	assert.True(t, balance(t, f.stocks, "mueble").Equal(dec("10")))
}

func TestFulfill_PrimeroEnLlegarGana(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	a, err := f.uc.Create(ctx, "mueble", dec("8"), "Cliente Uno")
	require.NoError(t, err)
	b, err := f.uc.Create(ctx, "mueble", dec("8"), "Cliente Dos")
	require.NoError(t, err)

	_, err = f.uc.Fulfill(ctx, a.ID)
	require.NoError(t, err)

	// El segundo pedido ya no alcanza: quedan 2.
	_, err = f.uc.Fulfill(ctx, b.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, balance(t, f.stocks, "mueble").Equal(dec("2")))
}

func TestCancel_SinEfectoEnStock(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	order, err := f.uc.Create(ctx, "mueble", dec("5"), "Cliente Uno")
	require.NoError(t, err)

	cancelled, err := f.uc.Cancel(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DispatchCancelled, cancelled.Status)
	require.NotNil(t, cancelled.ProcessedAt)
	assert.True(t, balance(t, f.stocks, "mueble").Equal(dec("10")))

	// Terminal: ni fulfill ni segundo cancel.
	_, err = f.uc.Fulfill(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyTerminal)
	_, err = f.uc.Cancel(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyTerminal)
}

func TestListPending_OrdenDeLlegada(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	a, err := f.uc.Create(ctx, "mueble", dec("1"), "Cliente Uno")
	require.NoError(t, err)
	b, err := f.uc.Create(ctx, "mueble", dec("2"), "Cliente Dos")
	require.NoError(t, err)

	_, err = f.uc.Fulfill(ctx, a.ID)
	require.NoError(t, err)

	pending, err := f.uc.ListPending(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, b.ID, pending[0].ID)
}
