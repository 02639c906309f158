package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/tu-usuario/textil-crm/docs"
	"github.com/tu-usuario/textil-crm/internal/application/auth"
	"github.com/tu-usuario/textil-crm/internal/application/billing"
	"github.com/tu-usuario/textil-crm/internal/application/crm"
	"github.com/tu-usuario/textil-crm/internal/application/files"
	"github.com/tu-usuario/textil-crm/internal/application/hr"
	"github.com/tu-usuario/textil-crm/internal/application/inventory"
	"github.com/tu-usuario/textil-crm/internal/application/notification"
	"github.com/tu-usuario/textil-crm/internal/application/reports"
	infragateway "github.com/tu-usuario/textil-crm/internal/infrastructure/gateway"
	inframail "github.com/tu-usuario/textil-crm/internal/infrastructure/mail"
	infrapdf "github.com/tu-usuario/textil-crm/internal/infrastructure/pdf"
	"github.com/tu-usuario/textil-crm/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/textil-crm/internal/interfaces/http"
	"github.com/tu-usuario/textil-crm/pkg/config"
	"github.com/tu-usuario/textil-crm/pkg/logger"
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

	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	seqRepo := postgres.NewSequenceRepository(pool)
	alertRepo := postgres.NewStockAlertRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	workLogRepo := postgres.NewWorkLogRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	fileRepo := postgres.NewFileRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Correo: con SMTP configurado se envía de verdad; si no, a consola.
	var sender notification.EmailSender
	if cfg.SMTP.Enabled() {
		sender = inframail.NewGomailSender(cfg.SMTP)
	} else {
		sender = inframail.NewConsoleSender(log)
	}
	pdfGenerator := infrapdf.NewMarotoInvoiceGenerator(cfg.App.Name)
	gateway := infragateway.NewSimulatedGateway(cfg.Gateway)

	notificationUC := notification.NewUseCase(notificationRepo)
	emailUC := notification.NewEmailUseCase(
		sender, pdfGenerator,
		customerRepo, invoiceRepo, orderRepo, paymentRepo, userRepo, log,
	)

	alertUC := inventory.NewAlertUseCase(
		alertRepo, productRepo, userRepo, notificationUC, emailUC, log,
	)
	productUC := inventory.NewProductUseCase(productRepo, alertUC, log)

	customerUC := crm.NewCustomerUseCase(customerRepo)
	orderUC := crm.NewOrderUseCase(orderRepo, customerRepo, productRepo, txRunner)

	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, paymentRepo, seqRepo)
	paymentUC := billing.NewPaymentUseCase(paymentRepo, invoiceRepo, seqRepo, gateway, log)

	employeeUC := hr.NewEmployeeUseCase(employeeRepo)
	workLogUC := hr.NewWorkLogUseCase(workLogRepo, employeeRepo)

	authUC := auth.NewUseCase(userRepo, cfg.JWT)
	fileUC := files.NewUseCase(fileRepo, cfg.Files.UploadDir, log)
	dashboardUC := reports.NewDashboardUseCase(reportRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Textil CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CustomerUC:     customerUC,
		OrderUC:        orderUC,
		ProductUC:      productUC,
		AlertUC:        alertUC,
		InvoiceUC:      invoiceUC,
		PaymentUC:      paymentUC,
		EmployeeUC:     employeeUC,
		WorkLogUC:      workLogUC,
		NotificationUC: notificationUC,
		EmailUC:        emailUC,
		FileUC:         fileUC,
		DashboardUC:    dashboardUC,
		JWTSecret:      cfg.JWT.Secret,
		Log:            log,
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
