package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/fabrica-api/internal/application/auth"
	"github.com/jhoicas/fabrica-api/internal/application/catalog"
	"github.com/jhoicas/fabrica-api/internal/application/dispatch"
	"github.com/jhoicas/fabrica-api/internal/application/report"
	"github.com/jhoicas/fabrica-api/internal/application/stock"
	"github.com/jhoicas/fabrica-api/internal/application/transfer"
	"github.com/jhoicas/fabrica-api/internal/application/workorder"
	"github.com/jhoicas/fabrica-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/fabrica-api/internal/interfaces/http"
	"github.com/jhoicas/fabrica-api/pkg/config"
	"github.com/jhoicas/fabrica-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	transferRepo := postgres.NewTransferRecordRepository(pool)
	workOrderRepo := postgres.NewWorkOrderRepository(pool)
	dispatchRepo := postgres.NewDispatchOrderRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(employeeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := catalog.NewProductUseCase(productRepo)
	stockUC := stock.NewLedgerUseCase(txRunner, productRepo, stockRepo)
	transferUC := transfer.NewTransferUseCase(txRunner)
	workOrderUC := workorder.NewWorkOrderUseCase(txRunner, productRepo, stockRepo, workOrderRepo)
	dispatchUC := dispatch.NewDispatchUseCase(txRunner, productRepo, dispatchRepo)
	reportUC := report.NewReportUseCase(transferRepo, workOrderRepo, dispatchRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		StockUC:     stockUC,
		TransferUC:  transferUC,
		WorkOrderUC: workOrderUC,
		DispatchUC:  dispatchUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
