package memory

import (
	"context"

	"github.com/jhoicas/fabrica-api/internal/application/ports"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta fn bajo el mutex del Store, con snapshot previo: si fn
// devuelve error se restaura el estado completo. Emula la atomicidad de la
// transacción Postgres para las pruebas de casos de uso.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el Store dado.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repositorios atados al Store. Todo-o-nada.
func (t *TxRunner) Run(ctx context.Context, fn func(r ports.TxRepos) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	snap := t.store.snapshot()
	repos := ports.TxRepos{
		Products:   NewProductRepository(t.store),
		Stock:      NewStockRepository(t.store),
		Transfers:  NewTransferRecordRepository(t.store),
		WorkOrders: NewWorkOrderRepository(t.store),
		Dispatches: NewDispatchOrderRepository(t.store),
	}
	if err := fn(repos); err != nil {
		t.store.restore(snap)
		return err
	}
	return nil
}
