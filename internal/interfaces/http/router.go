package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nordico/barber-api/internal/application/auth"
	"github.com/nordico/barber-api/internal/application/pos"
	"github.com/nordico/barber-api/internal/application/reports"
	"github.com/nordico/barber-api/internal/application/usecase"
	"github.com/nordico/barber-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	LocationUC     *usecase.LocationUseCase
	StaffUC        *usecase.StaffUseCase
	CustomerUC     *usecase.CustomerUseCase
	ServiceUC      *usecase.ServiceUseCase
	ProductUC      *usecase.ProductUseCase
	ExpenseUC      *usecase.ExpenseUseCase
	OtherIncomeUC  *usecase.OtherIncomeUseCase
	WithdrawalUC   *usecase.WithdrawalUseCase
	TicketUC       *pos.TicketUseCase
	QueueUC        *pos.QueueUseCase
	DistributionUC *reports.DistributionUseCase
	CommissionUC   *reports.CommissionUseCase
	IncomeUC       *reports.IncomeUseCase
	DashboardUC    *reports.DashboardUseCase
	CashUC         *reports.CashRegisterUseCase
	ClosePDFUC     *reports.ClosePDFUseCase
	JWTSecret      string
	// Now reloj en la zona horaria de la cadena, para resolver presets de período.
	Now func() time.Time
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
	adminOnly := RequireRole(entity.UserRoleAdmin)

	protected.Get("/auth/me", authHandler.Me)

	// Locations (protegido, solo lectura)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)

	// Staff (protegido; altas, bajas y cambios solo admin)
	staff := protected.Group("/staff")
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Get("/", staffHandler.List)
	staff.Get("/:id", staffHandler.GetByID)
	staff.Post("/", adminOnly, staffHandler.Create)
	staff.Put("/:id", adminOnly, staffHandler.Update)
	staff.Delete("/:id", adminOnly, staffHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Catálogo: servicios y productos (protegido)
	catalogHandler := NewCatalogHandler(deps.ServiceUC, deps.ProductUC)
	services := protected.Group("/services")
	services.Post("/", catalogHandler.CreateService)
	services.Get("/", catalogHandler.ListServices)
	services.Get("/:id", catalogHandler.GetService)
	services.Put("/:id", catalogHandler.UpdateService)
	services.Delete("/:id", catalogHandler.DeleteService)

	products := protected.Group("/products")
	products.Post("/", catalogHandler.CreateProduct)
	products.Get("/", catalogHandler.ListProducts)
	products.Get("/:id", catalogHandler.GetProduct)
	products.Put("/:id", catalogHandler.UpdateProduct)
	products.Delete("/:id", catalogHandler.DeleteProduct)

	// POS: tickets, ventas y cola de turnos (protegido)
	posHandler := NewPOSHandler(deps.TicketUC, deps.QueueUC, deps.Now)
	tickets := protected.Group("/tickets")
	tickets.Post("/", posHandler.OpenTicket)
	tickets.Get("/", posHandler.ListTickets)
	tickets.Get("/:id", posHandler.GetTicket)
	tickets.Delete("/:id", posHandler.CancelTicket)
	tickets.Post("/:id/items", posHandler.AddItem)
	tickets.Delete("/:id/items/:index", posHandler.RemoveItem)
	tickets.Post("/:id/finalize", posHandler.FinalizeTicket)

	transactions := protected.Group("/transactions")
	transactions.Get("/", posHandler.ListTransactions)
	transactions.Get("/:id", posHandler.GetTransaction)

	queue := protected.Group("/queue")
	queue.Get("/", posHandler.GetQueue)
	queue.Put("/", posHandler.SetQueue)
	queue.Post("/:barber_id/join", posHandler.JoinQueue)
	queue.Post("/:barber_id/leave", posHandler.LeaveQueue)

	// Gastos e ingresos adicionales (protegido)
	expenseHandler := NewExpenseHandler(deps.ExpenseUC, deps.OtherIncomeUC, deps.Now)
	expenses := protected.Group("/expenses")
	expenses.Post("/", expenseHandler.CreateExpense)
	expenses.Get("/", expenseHandler.ListExpenses)
	expenses.Delete("/:id", expenseHandler.DeleteExpense)

	otherIncomes := protected.Group("/other-incomes")
	otherIncomes.Post("/", expenseHandler.CreateOtherIncome)
	otherIncomes.Get("/", expenseHandler.ListOtherIncomes)
	otherIncomes.Delete("/:id", expenseHandler.DeleteOtherIncome)

	// Caja: retiros, arqueo y cierres (protegido)
	cashHandler := NewCashHandler(deps.WithdrawalUC, deps.CashUC, deps.ClosePDFUC, deps.Now)
	withdrawals := protected.Group("/withdrawals")
	withdrawals.Post("/", adminOnly, cashHandler.CreateWithdrawal)
	withdrawals.Get("/", cashHandler.ListWithdrawals)

	cash := protected.Group("/cash")
	cash.Get("/summary", cashHandler.GetSummary)
	cash.Post("/close", adminOnly, cashHandler.CloseDay)
	cash.Get("/closes", cashHandler.ListCloses)
	cash.Get("/closes/:id", cashHandler.GetClose)
	cash.Get("/closes/:id/pdf", cashHandler.ExportClosePDF)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)

	// Reportes (protegido; reparto de utilidades solo admin)
	reportsHandler := NewReportsHandler(deps.DistributionUC, deps.CommissionUC, deps.IncomeUC)
	rep := protected.Group("/reports")
	rep.Get("/distribution", adminOnly, reportsHandler.GetDistributionAll)
	rep.Get("/distribution/:location_id", adminOnly, reportsHandler.GetDistribution)
	rep.Get("/commissions", reportsHandler.GetCommissionBoard)
	rep.Get("/commissions/barber/:barber_id", reportsHandler.GetCommission)
	rep.Get("/income-by-category", reportsHandler.GetIncomeByCategory)
	rep.Get("/item-earnings", reportsHandler.GetItemEarnings)
	rep.Get("/barbers/:barber_id", reportsHandler.GetBarberReport)
}
