package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fabrica-api/internal/application/auth"
	"github.com/jhoicas/fabrica-api/internal/application/catalog"
	"github.com/jhoicas/fabrica-api/internal/application/dispatch"
	"github.com/jhoicas/fabrica-api/internal/application/report"
	"github.com/jhoicas/fabrica-api/internal/application/stock"
	"github.com/jhoicas/fabrica-api/internal/application/transfer"
	"github.com/jhoicas/fabrica-api/internal/application/workorder"
	"github.com/jhoicas/fabrica-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *catalog.ProductUseCase
	StockUC     *stock.LedgerUseCase
	TransferUC  *transfer.TransferUseCase
	WorkOrderUC *workorder.WorkOrderUseCase
	DispatchUC  *dispatch.DispatchUseCase
	ReportUC    *report.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo de productos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Administración de empleados (solo admin)
	employees := protected.Group("/employees", RequireRole(entity.RoleAdmin))
	employeeHandler := NewEmployeeHandler(deps.AuthUC)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Delete("/:id", employeeHandler.Delete)

	// Libro de stock
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Get("/alerts", stockHandler.LowStock)
	stockGroup.Get("/:productId/:department", stockHandler.GetBalance)
	stockGroup.Post("/credit", stockHandler.Credit)
	stockGroup.Post("/debit", stockHandler.Debit)

	// Traslados entre departamentos
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", transferHandler.Create)

	// Órdenes de trabajo
	workorders := protected.Group("/workorders")
	workOrderHandler := NewWorkOrderHandler(deps.WorkOrderUC)
	workorders.Post("/", workOrderHandler.Create)
	workorders.Get("/", workOrderHandler.ListOpen)
	workorders.Get("/preview", workOrderHandler.Preview)
	workorders.Post("/:id/fulfill", workOrderHandler.Fulfill)
	workorders.Post("/:id/cancel", workOrderHandler.Cancel)

	// Despachos a clientes
	dispatches := protected.Group("/dispatch")
	dispatchHandler := NewDispatchHandler(deps.DispatchUC)
	dispatches.Post("/", dispatchHandler.Create)
	dispatches.Get("/", dispatchHandler.ListPending)
	dispatches.Post("/:id/fulfill", dispatchHandler.Fulfill)
	dispatches.Post("/:id/cancel", dispatchHandler.Cancel)

	// Reportes históricos
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/transfers", reportHandler.Transfers)
	reports.Get("/workorders", reportHandler.WorkOrders)
	reports.Get("/dispatches", reportHandler.Dispatches)
}
