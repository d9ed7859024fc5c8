package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fabrica-api/internal/domain"
	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/domain/repository"
)

// ProductUseCase maneja el catálogo de productos. La regla central: un
// producto terminado siempre lleva receta con al menos una línea; a un
// producto raw la receta se le descarta.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Input datos para crear o actualizar un producto.
type Input struct {
	SKU               string
	Name              string
	Category          string
	Unit              string
	LowStockThreshold decimal.Decimal
	Recipe            []entity.RecipeItem
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// validate aplica las reglas de catálogo y devuelve el producto normalizado
// (receta descartada para raw, unidad por defecto "pcs").
func (uc *ProductUseCase) validate(in Input) (*Input, error) {
	v := domain.Validation()
	if len(in.Name) < 2 || len(in.Name) > 100 {
		v.Add("name", "el nombre debe tener entre 2 y 100 caracteres")
	}
	if len(in.SKU) < 2 || len(in.SKU) > 50 {
		v.Add("sku", "el SKU debe tener entre 2 y 50 caracteres")
	} else if !isAlphanumeric(in.SKU) {
		v.Add("sku", "el SKU debe ser alfanumérico")
	}
	if in.Category != entity.CategoryRaw && in.Category != entity.CategoryFinished {
		v.Add("category", "la categoría debe ser 'raw' o 'finished'")
	}
	if in.LowStockThreshold.IsNegative() {
		v.Add("lowStockThreshold", "el umbral no puede ser negativo")
	}
	if in.Unit == "" {
		in.Unit = "pcs"
	}
	switch in.Category {
	case entity.CategoryFinished:
		if len(in.Recipe) == 0 {
			v.Add("recipe", "un producto terminado debe tener al menos una línea de receta")
		}
		for _, item := range in.Recipe {
			if item.RawProductID == "" {
				v.Add("recipe", "la línea de receta requiere una materia prima")
				continue
			}
			if !item.Qty.IsPositive() {
				v.Add("recipe", "la cantidad por unidad debe ser mayor que 0")
				continue
			}
			raw, err := uc.productRepo.GetByID(item.RawProductID)
			if err != nil {
				return nil, err
			}
			if raw == nil || raw.Category != entity.CategoryRaw {
				v.Add("recipe", "cada línea debe referenciar una materia prima existente")
			}
		}
	case entity.CategoryRaw:
		in.Recipe = nil
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	return &in, nil
}

// Create registra un producto nuevo. El SKU debe ser único.
func (uc *ProductUseCase) Create(ctx context.Context, in Input) (*entity.Product, error) {
	norm, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	if existing, err := uc.productRepo.GetBySKU(norm.SKU); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		SKU:               norm.SKU,
		Name:              norm.Name,
		Category:          norm.Category,
		Unit:              norm.Unit,
		LowStockThreshold: norm.LowStockThreshold,
		Recipe:            norm.Recipe,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto con su receta.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// Update reemplaza los datos del producto. Si el SKU cambia, verifica unicidad.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in Input) (*entity.Product, error) {
	existing, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	norm, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	if norm.SKU != existing.SKU {
		if dup, err := uc.productRepo.GetBySKU(norm.SKU); err != nil {
			return nil, err
		} else if dup != nil {
			return nil, domain.ErrDuplicate
		}
	}
	existing.SKU = norm.SKU
	existing.Name = norm.Name
	existing.Category = norm.Category
	existing.Unit = norm.Unit
	existing.LowStockThreshold = norm.LowStockThreshold
	existing.Recipe = norm.Recipe
	existing.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete elimina el producto del catálogo. Los saldos y registros históricos
// que lo referencian no se tocan (decisión registrada en DESIGN.md).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

// List devuelve el catálogo paginado.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.List(limit, offset)
}
