package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Repo      repository.Repository
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.Repo)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.Repo)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.Create)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", transactionHandler.Delete)

	dashboardHandler := NewDashboardHandler(deps.Repo)
	protected.Get("/reports/dashboard", dashboardHandler.Summary)

	// Personal: solo Admin y Manager
	staff := RequireRole(entity.RoleAdmin, entity.RoleManager)
	employeeHandler := NewEmployeeHandler(deps.Repo, deps.Repo)
	employees := protected.Group("/employees", staff)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	payrolls := protected.Group("/payrolls", staff)
	payrolls.Get("/", employeeHandler.ListPayrolls)
	payrolls.Post("/", employeeHandler.CreatePayroll)
	payrolls.Delete("/:id", employeeHandler.DeletePayroll)

	reimbursements := protected.Group("/reimbursements")
	reimbursementHandler := NewReimbursementHandler(deps.Repo)
	reimbursements.Get("/", reimbursementHandler.List)
	reimbursements.Post("/", reimbursementHandler.Create)
	reimbursements.Put("/:id", staff, reimbursementHandler.Update)
	reimbursements.Delete("/:id", staff, reimbursementHandler.Delete)

	// Inventario: /movements antes de /:id
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Repo)
	inventory.Get("/movements", inventoryHandler.ListMovements)
	inventory.Post("/movements", inventoryHandler.RegisterMovement)
	inventory.Get("/", inventoryHandler.List)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Put("/:id", inventoryHandler.Update)
	inventory.Delete("/:id", inventoryHandler.Delete)

	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.Repo)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id/items", invoiceHandler.Items)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.Repo)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id/items", orderHandler.Items)
	orders.Post("/:id/deliver", orderHandler.Deliver)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.Repo)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	priceHandler := NewPriceHandler(deps.Repo)
	purchase := protected.Group("/purchase-prices")
	purchase.Get("/", priceHandler.ListPurchase)
	purchase.Post("/", priceHandler.CreatePurchase)
	purchase.Put("/:id", priceHandler.UpdatePurchase)
	purchase.Delete("/:id", priceHandler.DeletePurchase)

	sale := protected.Group("/sale-prices")
	sale.Get("/", priceHandler.ListSale)
	sale.Post("/", priceHandler.CreateSale)
	sale.Put("/:id", priceHandler.UpdateSale)
	sale.Delete("/:id", priceHandler.DeleteSale)
}
