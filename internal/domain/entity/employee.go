package entity

import "time"

// Roles de empleado.
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// Employee representa un empleado de la planta. Cada empleado pertenece a un
// departamento; el rol admin puede operar sobre cualquier departamento.
type Employee struct {
	ID           string
	Name         string
	Email        string // único
	PasswordHash string // bcrypt, nunca se expone en respuestas
	Role         string // employee | admin
	Department   Department
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
