package memory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación en memoria de StockRepository.
type StockRepo struct {
	store *Store
}

// NewStockRepository construye el adaptador sobre el Store dado.
func NewStockRepository(store *Store) *StockRepo {
	return &StockRepo{store: store}
}

func (r *StockRepo) Get(productID string, dep entity.Department) (*entity.Stock, error) {
	key := stockKey{ProductID: productID, Department: dep}
	if st, ok := r.store.stocks[key]; ok {
		c := *st
		return &c, nil
	}
	// Saldo perezoso: fila inexistente equivale a saldo cero.
	return &entity.Stock{
		ProductID:  productID,
		Department: dep,
		Quantity:   decimal.Zero,
	}, nil
}

func (r *StockRepo) GetForUpdate(productID string, dep entity.Department) (*entity.Stock, error) {
	// En memoria el mutex del TxRunner ya serializa; no hay bloqueo por fila.
	return r.Get(productID, dep)
}

func (r *StockRepo) Upsert(stock *entity.Stock) error {
	key := stockKey{ProductID: stock.ProductID, Department: stock.Department}
	c := *stock
	c.UpdatedAt = time.Now()
	r.store.stocks[key] = &c
	return nil
}

func (r *StockRepo) List(dep *entity.Department) ([]*entity.StockItem, error) {
	var items []*entity.StockItem
	for key, st := range r.store.stocks {
		if dep != nil && key.Department != *dep {
			continue
		}
		p, ok := r.store.products[key.ProductID]
		if !ok {
			continue
		}
		items = append(items, &entity.StockItem{
			Stock:    *st,
			SKU:      p.SKU,
			Name:     p.Name,
			Category: p.Category,
			Unit:     p.Unit,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].Department < items[j].Department
	})
	return items, nil
}

func (r *StockRepo) ListLowStock() ([]*entity.LowStockItem, error) {
	var items []*entity.LowStockItem
	for key, st := range r.store.stocks {
		p, ok := r.store.products[key.ProductID]
		if !ok || p.LowStockThreshold.IsZero() {
			continue
		}
		if st.Quantity.GreaterThan(p.LowStockThreshold) {
			continue
		}
		items = append(items, &entity.LowStockItem{
			ProductID:  key.ProductID,
			SKU:        p.SKU,
			Name:       p.Name,
			Unit:       p.Unit,
			Department: key.Department,
			Quantity:   st.Quantity,
			Threshold:  p.LowStockThreshold,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}
