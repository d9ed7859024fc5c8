package repository

import "github.com/jhoicas/fabrica-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para empleados.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	// GetByEmail incluye el hash de contraseña (solo para login).
	GetByEmail(email string) (*entity.Employee, error)
	List(limit, offset int) ([]*entity.Employee, error)
	Delete(id string) error
}
