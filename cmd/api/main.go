package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/config"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/handler"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/middleware"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/repository/sqlite"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/service"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Open the record store. One handle owns the database for the life of
	// the process; migrations run before the first request.
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open record store")
	}
	defer store.Close()
	log.Info().Str("db_path", cfg.DBPath).Msg("Record store opened")

	// Initialize repositories
	incomeRepo := sqlite.NewIncomeRepository(store)
	fixedExpenseRepo := sqlite.NewFixedExpenseRepository(store)
	transactionRepo := sqlite.NewTransactionRepository(store)
	goalRepo := sqlite.NewGoalRepository(store)

	// Initialize services
	incomeService := service.NewIncomeService(incomeRepo)
	fixedExpenseService := service.NewFixedExpenseService(fixedExpenseRepo)
	transactionService := service.NewTransactionService(transactionRepo)
	budgetService := service.NewBudgetService(incomeRepo, fixedExpenseRepo, transactionRepo)
	goalService := service.NewGoalService(goalRepo, budgetService)
	dashboardService := service.NewDashboardService(budgetService, goalService)
	snapshotService := service.NewSnapshotService(incomeRepo, fixedExpenseRepo, transactionRepo, goalRepo)

	// Initialize WebSocket hub and wire event publishing
	hub := websocket.NewHub()
	incomeService.SetEventPublisher(hub)
	fixedExpenseService.SetEventPublisher(hub)
	transactionService.SetEventPublisher(hub)
	goalService.SetEventPublisher(hub)
	snapshotService.SetEventPublisher(hub)

	// Initialize handlers
	incomeHandler := handler.NewIncomeHandler(incomeService)
	fixedExpenseHandler := handler.NewFixedExpenseHandler(fixedExpenseService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	goalHandler := handler.NewGoalHandler(goalService)
	payrollHandler := handler.NewPayrollHandler()
	periodHandler := handler.NewPeriodHandler()
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	snapshotHandler := handler.NewSnapshotHandler(snapshotService)
	wsHandler := handler.NewWebSocketHandler(hub, cfg.CORSOrigins)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Rate limiting middleware keyed by client IP
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	defer rateLimiter.Stop()
	e.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// WebSocket endpoint
	e.GET("/ws", wsHandler.HandleWS)

	// Register API routes
	handler.RegisterRoutes(e, incomeHandler, fixedExpenseHandler, transactionHandler, goalHandler, payrollHandler, periodHandler, dashboardHandler, snapshotHandler)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	hub.CloseAll()

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
