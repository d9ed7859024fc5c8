package repository

import "github.com/jhoicas/fabrica-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// La receta se persiste junto con el producto y se devuelve en orden.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
