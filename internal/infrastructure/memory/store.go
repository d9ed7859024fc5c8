// Package memory provee implementaciones en memoria de los puertos de
// persistencia. Se usan en pruebas de casos de uso: mismo contrato que los
// adaptadores Postgres, sin base de datos.
package memory

import (
	"sync"

	"github.com/jhoicas/fabrica-api/internal/domain/entity"
)

type stockKey struct {
	ProductID  string
	Department entity.Department
}

// Store es el estado compartido por todos los repositorios en memoria.
// Un solo mutex serializa las transacciones (suficiente para pruebas).
type Store struct {
	mu sync.Mutex

	products   map[string]*entity.Product
	stocks     map[stockKey]*entity.Stock
	transfers  []*entity.TransferRecord
	workOrds   map[string]*entity.WorkOrder
	dispatches map[string]*entity.DispatchOrder
	employees  map[string]*entity.Employee
}

// NewStore construye un Store vacío.
func NewStore() *Store {
	return &Store{
		products:   make(map[string]*entity.Product),
		stocks:     make(map[stockKey]*entity.Stock),
		workOrds:   make(map[string]*entity.WorkOrder),
		dispatches: make(map[string]*entity.DispatchOrder),
		employees:  make(map[string]*entity.Employee),
	}
}

// snapshot copia profunda del estado, para restaurar si una tx falla.
func (s *Store) snapshot() *Store {
	snap := NewStore()
	for id, p := range s.products {
		snap.products[id] = copyProduct(p)
	}
	for k, st := range s.stocks {
		c := *st
		snap.stocks[k] = &c
	}
	snap.transfers = make([]*entity.TransferRecord, len(s.transfers))
	for i, t := range s.transfers {
		c := *t
		snap.transfers[i] = &c
	}
	for id, w := range s.workOrds {
		snap.workOrds[id] = copyWorkOrder(w)
	}
	for id, d := range s.dispatches {
		snap.dispatches[id] = copyDispatchOrder(d)
	}
	for id, e := range s.employees {
		c := *e
		snap.employees[id] = &c
	}
	return snap
}

// restore reemplaza el estado por el del snapshot.
func (s *Store) restore(snap *Store) {
	s.products = snap.products
	s.stocks = snap.stocks
	s.transfers = snap.transfers
	s.workOrds = snap.workOrds
	s.dispatches = snap.dispatches
	s.employees = snap.employees
}

func copyProduct(p *entity.Product) *entity.Product {
	c := *p
	c.Recipe = make([]entity.RecipeItem, len(p.Recipe))
	copy(c.Recipe, p.Recipe)
	return &c
}

func copyWorkOrder(w *entity.WorkOrder) *entity.WorkOrder {
	c := *w
	if w.FulfilledAt != nil {
		t := *w.FulfilledAt
		c.FulfilledAt = &t
	}
	return &c
}

func copyDispatchOrder(d *entity.DispatchOrder) *entity.DispatchOrder {
	c := *d
	if d.ProcessedAt != nil {
		t := *d.ProcessedAt
		c.ProcessedAt = &t
	}
	return &c
}
