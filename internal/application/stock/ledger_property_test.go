package stock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/jhoicas/fabrica-api/internal/application/stock"
	"github.com/jhoicas/fabrica-api/internal/application/transfer"
	"github.com/jhoicas/fabrica-api/internal/domain"
	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/infrastructure/memory"
)

// Propiedades del libro de stock bajo secuencias arbitrarias de créditos,
// débitos y traslados:
//   - ningún saldo queda negativo
//   - los traslados conservan el total del producto
//   - el total solo cambia por créditos y débitos aplicados
func TestLedger_Propiedades(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		store := memory.NewStore()
		products := memory.NewProductRepository(store)
		stocks := memory.NewStockRepository(store)
		txRunner := memory.NewTxRunner(store)

		require.NoError(t, products.Create(&entity.Product{
			ID: "p1", SKU: "P1", Name: "Producto", Category: entity.CategoryRaw, Unit: "kg",
		}))

		ledger := stock.NewLedgerUseCase(txRunner, products, stocks)
		transfers := transfer.NewTransferUseCase(txRunner)
		admin := domain.Actor{EmployeeID: "adm", Role: entity.RoleAdmin, Department: entity.DepartmentProduction}
		ctx := context.Background()

		// Total esperado según los créditos y débitos que sí se aplicaron.
		expected := decimal.Zero

		depGen := rapid.SampledFrom(entity.AllDepartments)
		qtyGen := rapid.Int64Range(1, 100)

		steps := rapid.IntRange(1, 50).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			op := rapid.IntRange(0, 2).Draw(rt, "op")
			qty := decimal.NewFromInt(qtyGen.Draw(rt, "qty"))

			switch op {
			case 0: // crédito
				dep := depGen.Draw(rt, "dep")
				_, err := ledger.Credit(ctx, "p1", dep, qty)
				require.NoError(rt, err)
				expected = expected.Add(qty)

			case 1: // débito, puede fallar por saldo insuficiente
				dep := depGen.Draw(rt, "dep")
				_, err := ledger.Debit(ctx, "p1", dep, qty)
				if err != nil {
					require.ErrorIs(rt, err, domain.ErrInsufficientStock)
				} else {
					expected = expected.Sub(qty)
				}

			case 2: // traslado, puede fallar por saldo insuficiente
				from := depGen.Draw(rt, "from")
				to := depGen.Draw(rt, "to")
				if from == to {
					continue
				}
				_, err := transfers.Transfer(ctx, admin, transfer.Input{
					ProductID:      "p1",
					FromDepartment: from,
					ToDepartment:   to,
					Qty:            qty,
				})
				if err != nil {
					require.True(rt, errors.Is(err, domain.ErrInsufficientStock),
						"único fallo admisible: stock insuficiente, se obtuvo %v", err)
				}
			}

			// Invariantes tras cada paso.
			total := decimal.Zero
			for _, dep := range entity.AllDepartments {
				balance, err := ledger.GetBalance(ctx, "p1", dep)
				require.NoError(rt, err)
				require.False(rt, balance.IsNegative(), "saldo negativo en %s", dep)
				total = total.Add(balance)
			}
			require.True(rt, total.Equal(expected),
				"total %s != esperado %s", total, expected)
		}
	})
}
