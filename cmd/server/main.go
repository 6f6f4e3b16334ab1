package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expenseease/internal/config"
	"expenseease/internal/database"
	"expenseease/internal/handlers"
	custommw "expenseease/internal/middleware"
	"expenseease/internal/plaid"
	"expenseease/internal/repositories"
	"expenseease/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", slog.Any("error", err))
		os.Exit(1)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	budgetRepo := repositories.NewBudgetRepository(db)
	dynamicBudgetRepo := repositories.NewDynamicBudgetRepository(db)
	goalRepo := repositories.NewGoalRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	bankAccountRepo := repositories.NewBankAccountRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	// Shared infrastructure
	metrics := services.NewPrometheusMetrics()
	feedClient := plaid.NewClient(&cfg.Plaid)
	webhookVerifier := plaid.NewWebhookVerifier(feedClient, &cfg.Plaid)
	circuitBreaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())

	// Services
	notifier := services.NewNotificationService(notificationRepo, metrics, logger)
	ingestionService := services.NewIngestionService(transactionRepo, categoryRepo, metrics, logger)
	categoryService := services.NewCategoryService(categoryRepo, transactionRepo, logger)
	budgetService := services.NewBudgetService(budgetRepo, categoryRepo, transactionRepo,
		dynamicBudgetRepo, notifier, metrics, logger)
	goalService := services.NewGoalService(goalRepo, logger)
	userService := services.NewUserService(userRepo, budgetService, logger)
	syncService := services.NewSyncService(itemRepo, bankAccountRepo, transactionRepo,
		categoryRepo, feedClient, notifier, metrics, circuitBreaker,
		cfg.Plaid.MaxRetryAttempts, cfg.Scheduler.MaxConcurrentItems, logger)

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	transactionHandler := handlers.NewTransactionHandler(ingestionService, categoryService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	goalHandler := handlers.NewGoalHandler(goalService)
	notificationHandler := handlers.NewNotificationHandler(notifier)
	itemHandler := handlers.NewItemHandler(syncService, webhookVerifier)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, custommw.OwnerIDHeader},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	// Registration and webhooks carry no owner header
	api.POST("/users", userHandler.Register)
	api.POST("/webhooks/plaid", itemHandler.Webhook)

	owned := api.Group("", custommw.OwnerContext(userRepo))
	owned.GET("/users/me", userHandler.GetMe)

	owned.POST("/transactions", transactionHandler.CreateTransaction)
	owned.GET("/transactions", transactionHandler.ListTransactions)
	owned.POST("/transactions/recategorize", transactionHandler.BulkRecategorize)
	owned.DELETE("/transactions", transactionHandler.DeleteAllTransactions)
	owned.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	owned.GET("/categories", categoryHandler.ListCategories)
	owned.POST("/categories", categoryHandler.CreateCategory)

	owned.POST("/budgets", budgetHandler.CreateBudget)
	owned.GET("/budgets", budgetHandler.ListBudgets)
	owned.POST("/budgets/dynamic", budgetHandler.GenerateDynamicBudgets)
	owned.GET("/budgets/dynamic", budgetHandler.ListDynamicBudgets)
	owned.POST("/budgets/auto-create", budgetHandler.AutoCreateBudgets)
	owned.POST("/budgets/:id/adjust", budgetHandler.AdjustBudget)
	owned.DELETE("/budgets/:id", budgetHandler.DeleteBudget)

	owned.POST("/goals", goalHandler.CreateGoal)
	owned.GET("/goals", goalHandler.ListGoals)
	owned.PUT("/goals/:id/progress", goalHandler.UpdateGoalProgress)
	owned.DELETE("/goals/:id", goalHandler.DeleteGoal)

	owned.GET("/notifications", notificationHandler.ListNotifications)
	owned.POST("/notifications/:id/read", notificationHandler.MarkNotificationRead)

	owned.POST("/items", itemHandler.LinkItem)
	owned.GET("/items", itemHandler.ListItems)
	owned.POST("/items/:id/sync", itemHandler.SyncItem)
	owned.GET("/accounts", itemHandler.ListBankAccounts)

	// Background reconciliation
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	scheduler := services.NewScheduler(cfg.Scheduler, syncService, budgetService,
		userRepo, notificationRepo, metrics, logger)
	scheduler.Start(schedulerCtx)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server", slog.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	stopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
	}
}
