package stock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fabrica-api/internal/application/ports"
	"github.com/jhoicas/fabrica-api/internal/domain"
	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/domain/repository"
)

// LedgerUseCase es el libro de stock: única puerta de entrada para acreditar
// y debitar saldos. Todos los demás motores delegan aquí o reproducen esta
// misma disciplina dentro de sus transacciones (GetForUpdate → verificar →
// Upsert); ningún componente escribe un saldo directo.
type LedgerUseCase struct {
	txRunner    ports.TxRunner
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner ports.TxRunner, productRepo repository.ProductRepository, stockRepo repository.StockRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, productRepo: productRepo, stockRepo: stockRepo}
}

// validateEntry valida los argumentos comunes de crédito/débito.
func validateEntry(productID string, dep entity.Department, qty decimal.Decimal) error {
	v := domain.Validation()
	if productID == "" {
		v.Add("productId", "el producto es obligatorio")
	}
	if !dep.Valid() {
		v.Add("department", "departamento inválido")
	}
	if !qty.IsPositive() {
		v.Add("qty", "la cantidad debe ser mayor que 0")
	}
	return v.Err()
}

// GetBalance devuelve el saldo actual (0 si no existe la fila).
func (uc *LedgerUseCase) GetBalance(ctx context.Context, productID string, dep entity.Department) (decimal.Decimal, error) {
	s, err := uc.stockRepo.Get(productID, dep)
	if err != nil {
		return decimal.Zero, err
	}
	return s.Quantity, nil
}

// Credit suma qty al saldo (crea la fila si no existe) dentro de una
// transacción con bloqueo de fila. Devuelve el saldo resultante.
func (uc *LedgerUseCase) Credit(ctx context.Context, productID string, dep entity.Department, qty decimal.Decimal) (*entity.Stock, error) {
	if err := validateEntry(productID, dep, qty); err != nil {
		return nil, err
	}
	var result *entity.Stock
	err := uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		product, err := r.Products.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		s, err := r.Stock.GetForUpdate(productID, dep)
		if err != nil {
			return err
		}
		s.Quantity = s.Quantity.Add(qty)
		s.UpdatedAt = time.Now()
		if err := r.Stock.Upsert(s); err != nil {
			return err
		}
		result = s
		return nil
	})
	return result, err
}

// Debit resta qty del saldo dentro de una transacción con bloqueo de fila.
// Si el saldo es menor que qty falla con ErrInsufficientStock y no cambia
// nada: un saldo nunca queda negativo.
func (uc *LedgerUseCase) Debit(ctx context.Context, productID string, dep entity.Department, qty decimal.Decimal) (*entity.Stock, error) {
	if err := validateEntry(productID, dep, qty); err != nil {
		return nil, err
	}
	var result *entity.Stock
	err := uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		product, err := r.Products.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		s, err := r.Stock.GetForUpdate(productID, dep)
		if err != nil {
			return err
		}
		if s.Quantity.LessThan(qty) {
			return domain.ErrInsufficientStock
		}
		s.Quantity = s.Quantity.Sub(qty)
		s.UpdatedAt = time.Now()
		if err := r.Stock.Upsert(s); err != nil {
			return err
		}
		result = s
		return nil
	})
	return result, err
}

// List devuelve una foto de los saldos, opcionalmente filtrada por departamento.
func (uc *LedgerUseCase) List(ctx context.Context, dep *entity.Department) ([]*entity.StockItem, error) {
	if dep != nil && !dep.Valid() {
		return nil, domain.Validation().Add("department", "departamento inválido").Err()
	}
	return uc.stockRepo.List(dep)
}

// LowStock devuelve los saldos en o por debajo del umbral configurado en el
// producto, para la pantalla de alertas de reposición.
func (uc *LedgerUseCase) LowStock(ctx context.Context) ([]*entity.LowStockItem, error) {
	return uc.stockRepo.ListLowStock()
}
