package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fabrica-api/internal/domain"
	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). La receta vive en product_recipe, ordenada por
// position para preservar el orden de las líneas.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo con su receta.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, category, unit, low_stock_threshold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Category, product.Unit,
		product.LowStockThreshold, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return r.insertRecipe(product.ID, product.Recipe)
}

func (r *ProductRepo) insertRecipe(productID string, recipe []entity.RecipeItem) error {
	for i, item := range recipe {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO product_recipe (product_id, raw_product_id, qty, position) VALUES ($1, $2, $3, $4)`,
			productID, item.RawProductID, item.Qty, i,
		)
		if err != nil {
			return fmt.Errorf("insert recipe line: %w", err)
		}
	}
	return nil
}

func (r *ProductRepo) loadRecipe(productID string) ([]entity.RecipeItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT raw_product_id, qty FROM product_recipe WHERE product_id = $1 ORDER BY position`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("load recipe: %w", err)
	}
	defer rows.Close()

	var recipe []entity.RecipeItem
	for rows.Next() {
		var item entity.RecipeItem
		if err := rows.Scan(&item.RawProductID, &item.Qty); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		recipe = append(recipe, item)
	}
	return recipe, rows.Err()
}

// GetByID obtiene un producto por ID, con su receta en orden.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, sku, name, category, unit, low_stock_threshold, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Category, &p.Unit, &p.LowStockThreshold, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if p.Category == entity.CategoryFinished {
		if p.Recipe, err = r.loadRecipe(p.ID); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `
		SELECT id, sku, name, category, unit, low_stock_threshold, created_at, updated_at
		FROM products WHERE sku = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, sku).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Category, &p.Unit, &p.LowStockThreshold, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	if p.Category == entity.CategoryFinished {
		if p.Recipe, err = r.loadRecipe(p.ID); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

// Update actualiza el producto y reemplaza su receta completa.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET sku = $2, name = $3, category = $4, unit = $5, low_stock_threshold = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Category, product.Unit,
		product.LowStockThreshold, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM product_recipe WHERE product_id = $1`, product.ID); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return r.insertRecipe(product.ID, product.Recipe)
}

// List lista el catálogo con paginación, recetas incluidas.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, sku, name, category, unit, low_stock_threshold, created_at, updated_at
		FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Category, &p.Unit,
			&p.LowStockThreshold, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.Category == entity.CategoryFinished {
			if p.Recipe, err = r.loadRecipe(p.ID); err != nil {
				return nil, err
			}
		}
	}
	return products, nil
}

// Delete elimina el producto y su receta (cascade en product_recipe).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
