package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/lana-app/backend/docs"
	"github.com/lana-app/backend/internal/config"
	"github.com/lana-app/backend/internal/handler"
	"github.com/lana-app/backend/internal/logger"
	"github.com/lana-app/backend/internal/repository"
	"github.com/lana-app/backend/internal/service"
)

// @title LANA API
// @version 1.0
// @description Personal finance bookkeeping API: users, accounts, transactions, budgets, fixed payments, goals and alerts.

// @contact.name API Support
// @contact.email soporte@lana-app.mx

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	cfg := config.Load()

	db, err := sqlx.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.PingOnStart {
		if err := db.Ping(); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}
	}

	if err := runMigrations(cfg.Database.URL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	transferRepo := repository.NewTransferRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	fixedPaymentRepo := repository.NewFixedPaymentRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	recurringRepo := repository.NewRecurringRepository(db)
	alertRepo := repository.NewAlertRepository(db)

	// Services
	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	accountService := service.NewAccountService(accountRepo)
	transactionService := service.NewTransactionService(transactionRepo)
	transferService := service.NewTransferService(transferRepo)
	budgetService := service.NewBudgetService(budgetRepo)
	fixedPaymentService := service.NewFixedPaymentService(fixedPaymentRepo, budgetRepo)
	goalService := service.NewGoalService(goalRepo)
	recurringService := service.NewRecurringService(recurringRepo)
	alertService := service.NewAlertService(alertRepo)
	chartService := service.NewChartService(transactionRepo)

	// Handlers
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	accountHandler := handler.NewAccountHandler(accountService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	transferHandler := handler.NewTransferHandler(transferService)
	budgetHandler := handler.NewBudgetHandler(budgetService)
	fixedPaymentHandler := handler.NewFixedPaymentHandler(fixedPaymentService)
	goalHandler := handler.NewGoalHandler(goalService)
	recurringHandler := handler.NewRecurringHandler(recurringService)
	alertHandler := handler.NewAlertHandler(alertService)
	chartHandler := handler.NewChartHandler(chartService)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(handler.RequestContext)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Users and login
	r.Post("/usuarios", userHandler.Register)
	r.Post("/login", userHandler.Login)
	r.Get("/usuarios", userHandler.List)
	r.Get("/usuarios/{id}", userHandler.Get)
	r.Put("/usuarios/{id}", userHandler.Update)
	r.Delete("/usuarios/{id}", userHandler.Delete)

	// Categories
	r.Get("/categorias", categoryHandler.List)
	r.Post("/categorias", categoryHandler.Create)
	r.Get("/categorias/{id}", categoryHandler.Get)
	r.Put("/categorias/{id}", categoryHandler.Update)
	r.Delete("/categorias/{id}", categoryHandler.Delete)

	// Accounts
	r.Get("/cuentas", accountHandler.List)
	r.Post("/cuentas", accountHandler.Create)
	r.Get("/cuentas/{id}", accountHandler.Get)
	r.Put("/cuentas/{id}", accountHandler.Update)
	r.Delete("/cuentas/{id}", accountHandler.Delete)

	// Transactions
	r.Get("/transacciones", transactionHandler.List)
	r.Post("/transacciones", transactionHandler.Create)
	r.Get("/transacciones/{id}", transactionHandler.Get)
	r.Put("/transacciones/{id}", transactionHandler.Update)
	r.Delete("/transacciones/{id}", transactionHandler.Delete)

	// Transfers
	r.Get("/transferencias", transferHandler.List)
	r.Post("/transferencias", transferHandler.Create)
	r.Get("/transferencias/{id}", transferHandler.Get)
	r.Put("/transferencias/{id}", transferHandler.Update)
	r.Delete("/transferencias/{id}", transferHandler.Delete)

	// Budgets and reconciliation
	r.Get("/presupuestos", budgetHandler.List)
	r.Post("/presupuestos", budgetHandler.Create)
	r.Get("/presupuestos/{id}", budgetHandler.Get)
	r.Put("/presupuestos/{id}", budgetHandler.Update)
	r.Delete("/presupuestos/{id}", budgetHandler.Delete)
	r.Get("/presupuesto-alerta/{usuarioID}", budgetHandler.Alerts)

	// Fixed payments
	r.Get("/pagos-fijos", fixedPaymentHandler.List)
	r.Post("/pagos-fijos", fixedPaymentHandler.Create)
	r.Get("/pagos-fijos/validar-presupuesto/{usuarioID}", fixedPaymentHandler.ValidateBudget)
	r.Get("/pagos-fijos/{id}", fixedPaymentHandler.Get)
	r.Put("/pagos-fijos/{id}", fixedPaymentHandler.Update)
	r.Delete("/pagos-fijos/{id}", fixedPaymentHandler.Delete)

	// Savings goals
	r.Get("/metas", goalHandler.List)
	r.Post("/metas", goalHandler.Create)
	r.Get("/metas/{id}", goalHandler.Get)
	r.Put("/metas/{id}", goalHandler.Update)
	r.Delete("/metas/{id}", goalHandler.Delete)
	r.Post("/metas/{id}/abonar", goalHandler.Contribute)

	// Recurring transactions
	r.Get("/transacciones-recurrentes", recurringHandler.List)
	r.Post("/transacciones-recurrentes", recurringHandler.Create)
	r.Get("/transacciones-recurrentes/{id}", recurringHandler.Get)
	r.Put("/transacciones-recurrentes/{id}", recurringHandler.Update)
	r.Delete("/transacciones-recurrentes/{id}", recurringHandler.Delete)

	// Alert history
	r.Get("/alertas", alertHandler.List)
	r.Post("/alertas", alertHandler.Create)
	r.Get("/alertas/{id}", alertHandler.Get)
	r.Put("/alertas/{id}/leida", alertHandler.MarkRead)
	r.Delete("/alertas/{id}", alertHandler.Delete)

	// Chart aggregation
	r.Get("/grafica/{usuarioID}", chartHandler.Data)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("Server failed: %v", err)
	}
}

// runMigrations applies pending schema migrations from the migrations
// directory. An already-current schema is not an error.
func runMigrations(databaseURL string) error {
	m, err := migrate.New("file://migrations", databaseURL)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
