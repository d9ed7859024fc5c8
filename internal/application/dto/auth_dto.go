package dto

import "github.com/jhoicas/fabrica-api/internal/domain/entity"

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role,omitempty"`
	Department string `json:"department"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EmployeeDTO empleado en respuestas (sin hash).
type EmployeeDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// LoginResponse respuesta de login.
type LoginResponse struct {
	Token    string      `json:"token"`
	Employee EmployeeDTO `json:"employee"`
}

// NewEmployeeDTO convierte la entidad en DTO.
func NewEmployeeDTO(e *entity.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Role:       e.Role,
		Department: string(e.Department),
	}
}

// NewEmployeeDTOs convierte un listado.
func NewEmployeeDTOs(employees []*entity.Employee) []EmployeeDTO {
	out := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		out[i] = NewEmployeeDTO(e)
	}
	return out
}
