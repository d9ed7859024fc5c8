package domain

import "github.com/jhoicas/fabrica-api/internal/domain/entity"

// Actor identifica quién ejecuta una operación del motor. Se construye desde
// los claims del JWT en el middleware de auth y se pasa explícito a cada caso
// de uso; ningún componente lee usuario/departamento de estado global.
type Actor struct {
	EmployeeID string
	Role       string // employee | admin
	Department entity.Department
}

// IsAdmin indica si el actor tiene rol administrador.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// CanActOn es el único predicado de autorización por departamento:
// admin opera sobre cualquier departamento, el resto solo sobre el propio.
func (a Actor) CanActOn(dep entity.Department) bool {
	return a.IsAdmin() || a.Department == dep
}
