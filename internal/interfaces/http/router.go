package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/liftory/liftory-api/internal/application/auth"
	"github.com/liftory/liftory-api/internal/application/catalog"
	"github.com/liftory/liftory-api/internal/application/expense"
	"github.com/liftory/liftory-api/internal/application/ledger"
	"github.com/liftory/liftory-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	CatalogUC  *catalog.UseCase
	MovementUC *ledger.UseCase
	ExpenseUC  *expense.UseCase
	ReportUC   *report.UseCase
	JWTSecret  string
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

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Movements, el ledger (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)
	movements.Delete("/", movementHandler.DeleteAll)
	movements.Delete("/:id", movementHandler.Delete)

	// Expenses (protegido)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Reports (protegido, derivado bajo demanda)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/", reportHandler.Report)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/chart", reportHandler.Chart)
	reports.Get("/top-products", reportHandler.TopProducts)
	reports.Get("/range", reportHandler.Range)
}
