// seed puebla la base con datos de arranque para desarrollo: un empleado
// admin, materias primas de ejemplo, un producto terminado con receta y
// stock inicial en la bodega de materia prima.
//
// Uso: go run ./cmd/seed
// Idempotente: si el SKU o el email ya existen, la fila se omite.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fabrica-api/internal/application/auth"
	"github.com/jhoicas/fabrica-api/internal/application/catalog"
	"github.com/jhoicas/fabrica-api/internal/application/stock"
	"github.com/jhoicas/fabrica-api/internal/domain"
	"github.com/jhoicas/fabrica-api/internal/domain/entity"
	"github.com/jhoicas/fabrica-api/internal/infrastructure/postgres"
	"github.com/jhoicas/fabrica-api/pkg/config"
	"github.com/jhoicas/fabrica-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := catalog.NewProductUseCase(productRepo)
	stockUC := stock.NewLedgerUseCase(txRunner, productRepo, stockRepo)
	authUC := auth.NewAuthUseCase(employeeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Admin inicial.
	if _, err := authUC.Register(ctx, auth.RegisterInput{
		Name:       "Administrador",
		Email:      "admin@fabrica.local",
		Password:   "cambiarme123",
		Role:       entity.RoleAdmin,
		Department: entity.DepartmentProduction,
	}); err != nil && !errors.Is(err, domain.ErrDuplicate) {
		log.Fatal().Err(err).Msg("crear admin")
	}

	type rawSeed struct {
		sku, name, unit string
		threshold       string
		initial         string
	}
	raws := []rawSeed{
		{"HAR001", "Harina de trigo", "kg", "50", "500"},
		{"AZU001", "Azúcar refinada", "kg", "20", "200"},
		{"LEV001", "Levadura seca", "kg", "5", "30"},
	}

	rawIDs := make(map[string]string, len(raws))
	for _, r := range raws {
		threshold, _ := decimal.NewFromString(r.threshold)
		p, err := productUC.Create(ctx, catalog.Input{
			SKU:               r.sku,
			Name:              r.name,
			Category:          entity.CategoryRaw,
			Unit:              r.unit,
			LowStockThreshold: threshold,
		})
		if errors.Is(err, domain.ErrDuplicate) {
			existing, gerr := productRepo.GetBySKU(r.sku)
			if gerr != nil || existing == nil {
				log.Fatal().Err(gerr).Str("sku", r.sku).Msg("buscar producto existente")
			}
			rawIDs[r.sku] = existing.ID
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("sku", r.sku).Msg("crear materia prima")
		}
		rawIDs[r.sku] = p.ID

		initial, _ := decimal.NewFromString(r.initial)
		if _, err := stockUC.Credit(ctx, p.ID, entity.DepartmentRaw, initial); err != nil {
			log.Fatal().Err(err).Str("sku", r.sku).Msg("stock inicial")
		}
	}

	// Producto terminado de ejemplo: pan, con receta sobre las materias primas.
	qty := func(s string) decimal.Decimal { d, _ := decimal.NewFromString(s); return d }
	if _, err := productUC.Create(ctx, catalog.Input{
		SKU:               "PAN001",
		Name:              "Pan campesino",
		Category:          entity.CategoryFinished,
		Unit:              "pcs",
		LowStockThreshold: qty("10"),
		Recipe: []entity.RecipeItem{
			{RawProductID: rawIDs["HAR001"], Qty: qty("0.5")},
			{RawProductID: rawIDs["AZU001"], Qty: qty("0.05")},
			{RawProductID: rawIDs["LEV001"], Qty: qty("0.01")},
		},
	}); err != nil && !errors.Is(err, domain.ErrDuplicate) {
		log.Fatal().Err(err).Msg("crear producto terminado")
	}

	log.Info().Msg("seed completado")
}
