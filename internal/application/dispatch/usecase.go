package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fabrica-api/internal/application/ports"
	"github.com/jhoicas/fabrica-api/internal/domain"
	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/domain/repository"
)

// DispatchUseCase maneja pedidos de cliente por producto terminado:
// pending → fulfilled (debita stock de finished) o pending → cancelled.
// La creación no reserva stock: la disponibilidad se verifica recién al
// despachar, política aceptada por diseño.
type DispatchUseCase struct {
	txRunner     ports.TxRunner
	productRepo  repository.ProductRepository
	dispatchRepo repository.DispatchOrderRepository
}

// NewDispatchUseCase construye el caso de uso.
func NewDispatchUseCase(txRunner ports.TxRunner, productRepo repository.ProductRepository, dispatchRepo repository.DispatchOrderRepository) *DispatchUseCase {
	return &DispatchUseCase{txRunner: txRunner, productRepo: productRepo, dispatchRepo: dispatchRepo}
}

// Create registra un pedido pendiente. Valida producto, cantidad y nombre de
// cliente (2 a 50 caracteres); no toca stock.
func (uc *DispatchUseCase) Create(ctx context.Context, productID string, quantity decimal.Decimal, clientName string) (*entity.DispatchOrder, error) {
	v := domain.Validation()
	if productID == "" {
		v.Add("productId", "el producto es obligatorio")
	}
	if !quantity.IsPositive() {
		v.Add("quantity", "la cantidad debe ser mayor que 0")
	}
	if len(clientName) < 2 {
		v.Add("clientName", "el nombre del cliente debe tener al menos 2 caracteres")
	}
	if len(clientName) > 50 {
		v.Add("clientName", "el nombre del cliente no puede exceder 50 caracteres")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	order := &entity.DispatchOrder{
		ID:         uuid.New().String(),
		ProductID:  productID,
		Quantity:   quantity,
		ClientName: clientName,
		Status:     entity.DispatchPending,
		CreatedAt:  time.Now(),
	}
	if err := uc.dispatchRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Fulfill despacha el pedido: debita el stock de producto terminado y marca
// la orden como fulfilled, en una sola transacción. Si el saldo no alcanza
// falla con ErrInsufficientStock y la orden sigue pendiente.
func (uc *DispatchUseCase) Fulfill(ctx context.Context, orderID string) (*entity.DispatchOrder, error) {
	var fulfilled *entity.DispatchOrder
	err := uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		order, err := r.Dispatches.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.DispatchPending {
			return domain.ErrAlreadyTerminal
		}

		now := time.Now()
		stock, err := r.Stock.GetForUpdate(order.ProductID, entity.DepartmentFinished)
		if err != nil {
			return err
		}
		if stock.Quantity.LessThan(order.Quantity) {
			return domain.ErrInsufficientStock
		}
		stock.Quantity = stock.Quantity.Sub(order.Quantity)
		stock.UpdatedAt = now
		if err := r.Stock.Upsert(stock); err != nil {
			return err
		}

		order.Status = entity.DispatchFulfilled
		order.ProcessedAt = &now
		if err := r.Dispatches.Update(order); err != nil {
			return err
		}
		fulfilled = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fulfilled, nil
}

// Cancel marca el pedido como cancelled sin efecto en stock. La fila se
// conserva para los reportes.
func (uc *DispatchUseCase) Cancel(ctx context.Context, orderID string) (*entity.DispatchOrder, error) {
	var cancelled *entity.DispatchOrder
	err := uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		order, err := r.Dispatches.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.DispatchPending {
			return domain.ErrAlreadyTerminal
		}
		now := time.Now()
		order.Status = entity.DispatchCancelled
		order.ProcessedAt = &now
		if err := r.Dispatches.Update(order); err != nil {
			return err
		}
		cancelled = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// ListPending devuelve los pedidos pendientes para la pantalla de despacho.
func (uc *DispatchUseCase) ListPending(ctx context.Context, limit, offset int) ([]*entity.DispatchOrder, error) {
	return uc.dispatchRepo.ListPending(limit, offset)
}
