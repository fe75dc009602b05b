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

	"github.com/nordico/barber-api/internal/application/auth"
	"github.com/nordico/barber-api/internal/application/pos"
	"github.com/nordico/barber-api/internal/application/reports"
	"github.com/nordico/barber-api/internal/application/usecase"
	infrapdf "github.com/nordico/barber-api/internal/infrastructure/pdf"
	"github.com/nordico/barber-api/internal/infrastructure/postgres"
	httpRouter "github.com/nordico/barber-api/internal/interfaces/http"
	"github.com/nordico/barber-api/internal/scheduler"
	"github.com/nordico/barber-api/pkg/config"
	"github.com/nordico/barber-api/pkg/logger"
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

	// Toda la contabilidad (cierres de caja, cortes semanales) corre en la
	// zona horaria de la cadena, no en la del servidor.
	tz, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("tz", cfg.App.Timezone).Msg("zona horaria inválida")
	}
	now := func() time.Time { return time.Now().In(tz) }

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	locationRepo := postgres.NewLocationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	queueRepo := postgres.NewQueueRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	otherIncomeRepo := postgres.NewOtherIncomeRepository(pool)
	withdrawalRepo := postgres.NewWithdrawalRepository(pool)
	closeRepo := postgres.NewDailyCloseRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, locationRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	locationUC := usecase.NewLocationUseCase(locationRepo)
	staffUC := usecase.NewStaffUseCase(staffRepo, locationRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, staffRepo)
	otherIncomeUC := usecase.NewOtherIncomeUseCase(otherIncomeRepo)
	withdrawalUC := usecase.NewWithdrawalUseCase(withdrawalRepo)

	queueUC := pos.NewQueueUseCase(queueRepo, staffRepo)
	ticketUC := pos.NewTicketUseCase(
		ticketRepo, transactionRepo, serviceRepo, productRepo,
		staffRepo, customerRepo, queueUC, txRunner,
	)

	distributionUC := reports.NewDistributionUseCase(locationRepo, analyticsRepo, cfg.Business, now)
	commissionUC := reports.NewCommissionUseCase(staffRepo, analyticsRepo, cfg.Business, now)
	incomeUC := reports.NewIncomeUseCase(staffRepo, transactionRepo, analyticsRepo, now)
	dashboardUC := reports.NewDashboardUseCase(analyticsRepo, ticketRepo, staffRepo, now)
	cashUC := reports.NewCashRegisterUseCase(analyticsRepo, transactionRepo, withdrawalRepo, closeRepo, locationRepo, now)

	// PDF: comprobante imprimible del cierre de caja
	pdfGenerator := infrapdf.NewMarotoCloseGenerator()
	closePDFUC := reports.NewClosePDFUseCase(closeRepo, locationRepo, pdfGenerator)

	// Cierre automático de caja a las 23:55 en cada sede
	sched := scheduler.New(cashUC, locationRepo, tz, log)
	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("iniciar scheduler")
	}

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
		Title:    "Nórdico Barber API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		LocationUC:     locationUC,
		StaffUC:        staffUC,
		CustomerUC:     customerUC,
		ServiceUC:      serviceUC,
		ProductUC:      productUC,
		ExpenseUC:      expenseUC,
		OtherIncomeUC:  otherIncomeUC,
		WithdrawalUC:   withdrawalUC,
		TicketUC:       ticketUC,
		QueueUC:        queueUC,
		DistributionUC: distributionUC,
		CommissionUC:   commissionUC,
		IncomeUC:       incomeUC,
		DashboardUC:    dashboardUC,
		CashUC:         cashUC,
		ClosePDFUC:     closePDFUC,
		JWTSecret:      cfg.JWT.Secret,
		Now:            now,
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
	sched.Stop()

	log.Info().Msg("aplicación detenida")
}
