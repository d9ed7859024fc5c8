package memory

import (
	"sort"

	"github.com/jhoicas/fabrica-api/internal/domain"
	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación en memoria de EmployeeRepository.
type EmployeeRepo struct {
	store *Store
}

// NewEmployeeRepository construye el adaptador sobre el Store dado.
func NewEmployeeRepository(store *Store) *EmployeeRepo {
	return &EmployeeRepo{store: store}
}

func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	for _, e := range r.store.employees {
		if e.Email == employee.Email {
			return domain.ErrDuplicate
		}
	}
	c := *employee
	r.store.employees[employee.ID] = &c
	return nil
}

func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	e, ok := r.store.employees[id]
	if !ok {
		return nil, nil
	}
	c := *e
	c.PasswordHash = ""
	return &c, nil
}

func (r *EmployeeRepo) GetByEmail(email string) (*entity.Employee, error) {
	for _, e := range r.store.employees {
		if e.Email == email {
			c := *e
			return &c, nil
		}
	}
	return nil, nil
}

func (r *EmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	all := make([]*entity.Employee, 0, len(r.store.employees))
	for _, e := range r.store.employees {
		c := *e
		c.PasswordHash = ""
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, limit, offset), nil
}

func (r *EmployeeRepo) Delete(id string) error {
	delete(r.store.employees, id)
	return nil
}
