package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/textil-crm/internal/application/auth"
	"github.com/tu-usuario/textil-crm/internal/application/billing"
	"github.com/tu-usuario/textil-crm/internal/application/crm"
	"github.com/tu-usuario/textil-crm/internal/application/files"
	"github.com/tu-usuario/textil-crm/internal/application/hr"
	"github.com/tu-usuario/textil-crm/internal/application/inventory"
	"github.com/tu-usuario/textil-crm/internal/application/notification"
	"github.com/tu-usuario/textil-crm/internal/application/reports"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	CustomerUC     *crm.CustomerUseCase
	OrderUC        *crm.OrderUseCase
	ProductUC      *inventory.ProductUseCase
	AlertUC        *inventory.AlertUseCase
	InvoiceUC      *billing.InvoiceUseCase
	PaymentUC      *billing.PaymentUseCase
	EmployeeUC     *hr.EmployeeUseCase
	WorkLogUC      *hr.WorkLogUseCase
	NotificationUC *notification.UseCase
	EmailUC        *notification.EmailUseCase
	FileUC         *files.UseCase
	DashboardUC    *reports.DashboardUseCase
	JWTSecret      string
	Log            *logger.Logger
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
	adminOnly := RequireRole(entity.RoleAdmin, entity.RoleManager)

	protected.Get("/auth/me", authHandler.Me)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.OrderUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", adminOnly, customerHandler.Delete)
	customers.Get("/:id/orders", customerHandler.ListOrders)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.EmailUC, deps.Log)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Delete("/:id", adminOnly, orderHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/stock", productHandler.UpdateStock)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Stock alerts (protegido)
	alerts := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts.Post("/", alertHandler.Create)
	alerts.Get("/", alertHandler.List)
	alerts.Post("/check", alertHandler.CheckAll)
	alerts.Post("/check/:productId", alertHandler.CheckProduct)
	alerts.Get("/:id", alertHandler.GetByID)
	alerts.Patch("/:id/status", alertHandler.UpdateStatus)
	alerts.Post("/:id/resolve", alertHandler.Resolve)
	alerts.Delete("/:id", adminOnly, alertHandler.Delete)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.EmailUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/number/:number", invoiceHandler.GetByNumber)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Patch("/:id/status", invoiceHandler.UpdateStatus)
	invoices.Get("/:id/balance", invoiceHandler.Balance)
	invoices.Post("/:id/send", invoiceHandler.Send)
	invoices.Delete("/:id", adminOnly, invoiceHandler.Delete)

	// Payments (protegido)
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC, deps.EmailUC, deps.Log)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Put("/:id", paymentHandler.Update)
	payments.Post("/:id/process", paymentHandler.Process)
	payments.Delete("/:id", adminOnly, paymentHandler.Delete)

	// Employees y jornadas (protegido; escritura solo admin/manager)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.WorkLogUC)
	employees.Post("/", adminOnly, employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", adminOnly, employeeHandler.Update)
	employees.Delete("/:id", adminOnly, employeeHandler.Delete)
	employees.Get("/:id/worklogs", employeeHandler.ListWorkLogs)

	worklogs := protected.Group("/worklogs")
	workLogHandler := NewWorkLogHandler(deps.WorkLogUC)
	worklogs.Post("/check-in", workLogHandler.CheckIn)
	worklogs.Post("/:id/check-out", workLogHandler.CheckOut)
	worklogs.Get("/:id", workLogHandler.GetByID)
	worklogs.Delete("/:id", adminOnly, workLogHandler.Delete)

	// Notifications del usuario autenticado
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Patch("/read-all", notificationHandler.MarkAllRead)
	notifications.Get("/:id", notificationHandler.GetByID)
	notifications.Patch("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.Delete)

	// Files (protegido)
	filesGroup := protected.Group("/files")
	fileHandler := NewFileHandler(deps.FileUC)
	filesGroup.Post("/", fileHandler.Upload)
	filesGroup.Get("/", fileHandler.List)
	filesGroup.Get("/:id", fileHandler.GetByID)
	filesGroup.Get("/:id/download", fileHandler.Download)
	filesGroup.Delete("/:id", adminOnly, fileHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
