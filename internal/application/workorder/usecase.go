package workorder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fabrica-api/internal/application/ports"
	"github.com/jhoicas/fabrica-api/internal/domain"
	"github.com/jhoicas/fabrica-api/internal/domain/bom"
	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/domain/repository"
)

// WorkOrderUseCase maneja el ciclo de vida de las órdenes de trabajo:
// open → fulfilled (consume materia prima de producción y acredita producto
// terminado) u open → cancelled. El fulfillment completo corre en una sola
// transacción: si cualquier línea de la receta falla, nada queda descontado.
type WorkOrderUseCase struct {
	txRunner      ports.TxRunner
	productRepo   repository.ProductRepository
	stockRepo     repository.StockRepository
	workOrderRepo repository.WorkOrderRepository
}

// NewWorkOrderUseCase construye el caso de uso.
func NewWorkOrderUseCase(
	txRunner ports.TxRunner,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	workOrderRepo repository.WorkOrderRepository,
) *WorkOrderUseCase {
	return &WorkOrderUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		stockRepo:     stockRepo,
		workOrderRepo: workOrderRepo,
	}
}

// Create abre una orden de trabajo. Solo productos terminados admiten órdenes.
func (uc *WorkOrderUseCase) Create(ctx context.Context, actor domain.Actor, productID string, qty decimal.Decimal) (*entity.WorkOrder, error) {
	v := domain.Validation()
	if productID == "" {
		v.Add("productId", "el producto es obligatorio")
	}
	if !qty.IsPositive() {
		v.Add("qty", "la cantidad debe ser mayor que 0")
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
	if !product.IsFinished() {
		return nil, domain.ErrInvalidCategory
	}
	order := &entity.WorkOrder{
		ID:        uuid.New().String(),
		ProductID: productID,
		Qty:       qty,
		Status:    entity.WorkOrderOpen,
		CreatedBy: actor.EmployeeID,
		CreatedAt: time.Now(),
	}
	if err := uc.workOrderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Preview explota la receta contra el stock de producción sin mutar nada.
// Sirve tanto para la pantalla de previsualización como de pre-chequeo
// antes de fulfillment.
func (uc *WorkOrderUseCase) Preview(ctx context.Context, productID string, qty decimal.Decimal) (*bom.Preview, error) {
	if !qty.IsPositive() {
		return nil, domain.Validation().Add("qty", "la cantidad debe ser mayor que 0").Err()
	}
	resolver := bom.NewResolver(uc.productRepo, uc.stockRepo)
	return resolver.Preview(productID, qty)
}

// Fulfill ejecuta la orden: verifica suficiencia vía receta, descuenta cada
// materia prima del stock de producción en orden de receta, acredita el
// producto terminado y marca la orden como fulfilled. Todo ocurre dentro de
// una transacción con las filas de stock bloqueadas, así que la verificación
// y los débitos ven el mismo estado: o se aplica todo o no se aplica nada.
func (uc *WorkOrderUseCase) Fulfill(ctx context.Context, orderID string) (*entity.WorkOrder, error) {
	var fulfilled *entity.WorkOrder
	err := uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		order, err := r.WorkOrders.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.WorkOrderOpen {
			return domain.ErrAlreadyTerminal
		}
		product, err := r.Products.GetByID(order.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		// Pre-chequeo de suficiencia con el resolver atado a la misma tx:
		// ve exactamente el estado que van a ver los débitos.
		resolver := bom.NewResolver(r.Products, r.Stock)
		preview, err := resolver.Preview(order.ProductID, order.Qty)
		if err != nil {
			return err
		}
		if short := preview.FirstShortage(); short != nil {
			return fmt.Errorf("%w: falta %s", domain.ErrInsufficientStock, short.Name)
		}

		now := time.Now()

		// Descuento línea por línea, en orden de receta, con la fila bloqueada.
		for _, item := range product.Recipe {
			needed := item.Qty.Mul(order.Qty)
			stock, err := r.Stock.GetForUpdate(item.RawProductID, entity.DepartmentProduction)
			if err != nil {
				return err
			}
			if stock.Quantity.LessThan(needed) {
				// Con las filas bloqueadas esto no debería ocurrir; si ocurre,
				// se aborta la transacción completa sin descuento parcial.
				return fmt.Errorf("%w: falta %s", domain.ErrInsufficientStock, item.RawProductID)
			}
			stock.Quantity = stock.Quantity.Sub(needed)
			stock.UpdatedAt = now
			if err := r.Stock.Upsert(stock); err != nil {
				return err
			}
		}

		// Crédito del producto terminado en el departamento finished.
		finished, err := r.Stock.GetForUpdate(order.ProductID, entity.DepartmentFinished)
		if err != nil {
			return err
		}
		finished.Quantity = finished.Quantity.Add(order.Qty)
		finished.UpdatedAt = now
		if err := r.Stock.Upsert(finished); err != nil {
			return err
		}

		order.Status = entity.WorkOrderFulfilled
		order.FulfilledAt = &now
		if err := r.WorkOrders.Update(order); err != nil {
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

// Cancel marca la orden como cancelled sin tocar stock. La fila se conserva
// para los reportes en lugar de borrarse.
func (uc *WorkOrderUseCase) Cancel(ctx context.Context, orderID string) (*entity.WorkOrder, error) {
	var cancelled *entity.WorkOrder
	err := uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		order, err := r.WorkOrders.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.WorkOrderOpen {
			return domain.ErrAlreadyTerminal
		}
		order.Status = entity.WorkOrderCancelled
		if err := r.WorkOrders.Update(order); err != nil {
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

// ListOpen devuelve las órdenes abiertas para la pantalla de producción.
func (uc *WorkOrderUseCase) ListOpen(ctx context.Context, limit, offset int) ([]*entity.WorkOrder, error) {
	return uc.workOrderRepo.ListOpen(limit, offset)
}
