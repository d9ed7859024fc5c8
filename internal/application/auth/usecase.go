package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/fabrica-api/internal/domain"
	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/domain/repository"
	"github.com/jhoicas/fabrica-api/pkg/jwt"
)

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registro y login de empleados. El token emitido lleva rol y
// departamento: de ahí sale el Actor que reciben los motores.
type AuthUseCase struct {
	employeeRepo repository.EmployeeRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(employeeRepo repository.EmployeeRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{employeeRepo: employeeRepo, jwtCfg: jwtCfg}
}

// RegisterInput datos para registrar un empleado.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Role       string
	Department entity.Department
}

// Register crea un empleado con contraseña bcrypt. El email debe ser único.
func (uc *AuthUseCase) Register(ctx context.Context, in RegisterInput) (*entity.Employee, error) {
	v := domain.Validation()
	if len(in.Name) < 2 {
		v.Add("name", "el nombre debe tener al menos 2 caracteres")
	}
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if !strings.Contains(in.Email, "@") {
		v.Add("email", "email inválido")
	}
	if len(in.Password) < 8 {
		v.Add("password", "la contraseña debe tener al menos 8 caracteres")
	}
	if in.Role == "" {
		in.Role = entity.RoleEmployee
	}
	if in.Role != entity.RoleEmployee && in.Role != entity.RoleAdmin {
		v.Add("role", "rol inválido")
	}
	if !in.Department.Valid() {
		v.Add("department", "departamento inválido")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	if existing, err := uc.employeeRepo.GetByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Department:   in.Department,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.employeeRepo.Create(employee); err != nil {
		return nil, err
	}
	employee.PasswordHash = ""
	return employee, nil
}

// Login verifica credenciales y emite un JWT con rol y departamento.
// Devuelve el mismo ErrUnauthorized para email inexistente y contraseña
// incorrecta, sin distinguir el caso.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (string, *entity.Employee, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	employee, err := uc.employeeRepo.GetByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if employee == nil {
		return "", nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, employee.ID, employee.Role, string(employee.Department), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", nil, err
	}
	employee.PasswordHash = ""
	return token, employee, nil
}

// GetEmployee obtiene un empleado por ID (sin hash de contraseña).
func (uc *AuthUseCase) GetEmployee(ctx context.Context, id string) (*entity.Employee, error) {
	employee, err := uc.employeeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return employee, nil
}

// ListEmployees lista empleados con paginación (sin hash de contraseña).
func (uc *AuthUseCase) ListEmployees(ctx context.Context, limit, offset int) ([]*entity.Employee, error) {
	return uc.employeeRepo.List(limit, offset)
}

// DeleteEmployee elimina un empleado. Sus registros históricos (traslados,
// órdenes creadas) conservan el ID como referencia textual.
func (uc *AuthUseCase) DeleteEmployee(ctx context.Context, id string) error {
	employee, err := uc.employeeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	return uc.employeeRepo.Delete(id)
}
