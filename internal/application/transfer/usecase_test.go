package transfer_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fabrica-api/internal/application/transfer"
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

type transferFixture struct {
	uc     *transfer.TransferUseCase
	stocks *memory.StockRepo
	store  *memory.Store
}

// setup arma un producto con 100 unidades en la bodega de materia prima.
func setup(t *testing.T) transferFixture {
	t.Helper()
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	stocks := memory.NewStockRepository(store)

	require.NoError(t, products.Create(&entity.Product{
		ID: "acero", SKU: "ACE001", Name: "Acero", Category: entity.CategoryRaw, Unit: "kg",
	}))
	require.NoError(t, stocks.Upsert(&entity.Stock{
		ProductID: "acero", Department: entity.DepartmentRaw, Quantity: dec("100"),
	}))

	return transferFixture{
		uc:     transfer.NewTransferUseCase(memory.NewTxRunner(store)),
		stocks: stocks,
		store:  store,
	}
}

func balance(t *testing.T, stocks *memory.StockRepo, productID string, dep entity.Department) decimal.Decimal {
	t.Helper()
	s, err := stocks.Get(productID, dep)
	require.NoError(t, err)
	return s.Quantity
}

var (
	operario = domain.Actor{EmployeeID: "emp-1", Role: entity.RoleEmployee, Department: entity.DepartmentRaw}
	admin    = domain.Actor{EmployeeID: "adm-1", Role: entity.RoleAdmin, Department: entity.DepartmentFinished}
)

func TestTransfer_MueveSaldoEntreDepartamentos(t *testing.T) {
	f := setup(t)

	record, err := f.uc.Transfer(context.Background(), operario, transfer.Input{
		ProductID:      "acero",
		FromDepartment: entity.DepartmentRaw,
		ToDepartment:   entity.DepartmentProduction,
		Qty:            dec("30"),
	})
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.True(t, balance(t, f.stocks, "acero", entity.DepartmentRaw).Equal(dec("70")))
	assert.True(t, balance(t, f.stocks, "acero", entity.DepartmentProduction).Equal(dec("30")))
	assert.Equal(t, "emp-1", record.TransferredBy)
	assert.NotEmpty(t, record.ID)
}

func TestTransfer_ConservaElTotal(t *testing.T) {
	f := setup(t)

	_, err := f.uc.Transfer(context.Background(), operario, transfer.Input{
		ProductID:      "acero",
		FromDepartment: entity.DepartmentRaw,
		ToDepartment:   entity.DepartmentProduction,
		Qty:            dec("42.5"),
	})
	require.NoError(t, err)

	total := balance(t, f.stocks, "acero", entity.DepartmentRaw).
		Add(balance(t, f.stocks, "acero", entity.DepartmentProduction)).
		Add(balance(t, f.stocks, "acero", entity.DepartmentFinished))
	assert.True(t, total.Equal(dec("100")), "un traslado no crea ni destruye stock")
}

func TestTransfer_SaldoInsuficiente_SinEfectoParcial(t *testing.T) {
	f := setup(t)

	_, err := f.uc.Transfer(context.Background(), operario, transfer.Input{
		ProductID:      "acero",
		FromDepartment: entity.DepartmentRaw,
		ToDepartment:   entity.DepartmentProduction,
		Qty:            dec("100.01"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, balance(t, f.stocks, "acero", entity.DepartmentRaw).Equal(dec("100")))
	assert.True(t, balance(t, f.stocks, "acero", entity.DepartmentProduction).IsZero())
}

func TestTransfer_MismoDepartamento(t *testing.T) {
	f := setup(t)

	_, err := f.uc.Transfer(context.Background(), operario, transfer.Input{
		ProductID:      "acero",
		FromDepartment: entity.DepartmentRaw,
		ToDepartment:   entity.DepartmentRaw,
		Qty:            dec("10"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransfer)
}

func TestTransfer_ActorSinAutoridadSobreOrigen(t *testing.T) {
	f := setup(t)

	produccion := domain.Actor{EmployeeID: "emp-2", Role: entity.RoleEmployee, Department: entity.DepartmentProduction}
	_, err := f.uc.Transfer(context.Background(), produccion, transfer.Input{
		ProductID:      "acero",
		FromDepartment: entity.DepartmentRaw,
		ToDepartment:   entity.DepartmentProduction,
		Qty:            dec("10"),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.True(t, balance(t, f.stocks, "acero", entity.DepartmentRaw).Equal(dec("100")))
}

func TestTransfer_AdminOperaCualquierOrigen(t *testing.T) {
	f := setup(t)

	_, err := f.uc.Transfer(context.Background(), admin, transfer.Input{
		ProductID:      "acero",
		FromDepartment: entity.DepartmentRaw,
		ToDepartment:   entity.DepartmentFinished,
		Qty:            dec("10"),
	})
	require.NoError(t, err)
	assert.True(t, balance(t, f.stocks, "acero", entity.DepartmentFinished).Equal(dec("10")))
}

func TestTransfer_ProductoInexistente(t *testing.T) {
	f := setup(t)

	_, err := f.uc.Transfer(context.Background(), admin, transfer.Input{
		ProductID:      "fantasma",
		FromDepartment: entity.DepartmentRaw,
		ToDepartment:   entity.DepartmentProduction,
		Qty:            dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransfer_ValidaCampos(t *testing.T) {
	f := setup(t)

	_, err := f.uc.Transfer(context.Background(), operario, transfer.Input{
		ProductID:      "",
		FromDepartment: "bodega",
		ToDepartment:   entity.DepartmentProduction,
		Qty:            dec("-5"),
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3, "acumula todos los errores de campo")
}
