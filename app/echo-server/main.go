package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamePassAPI/app/echo-server/router"
	"gamePassAPI/business/catalog"
	"gamePassAPI/business/gamepass"
	"gamePassAPI/internal/middleware"
	"gamePassAPI/internal/repository/gameserver"
	psqlRepo "gamePassAPI/internal/repository/postgres"
	redisRepo "gamePassAPI/internal/repository/redis"
	"gamePassAPI/internal/rest"
	"gamePassAPI/pkg/config"
	"gamePassAPI/pkg/database"
	redisdb "gamePassAPI/pkg/database/redis"
	"gamePassAPI/pkg/logger"
	"gamePassAPI/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Game Pass API", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}

	metrics.Init()

	// Game server mail API for item reward delivery
	mailRepo := gameserver.NewMailRepository(gameserver.MailConfig{
		MailBaseURL:           cfg.GameServer.MailBaseURL,
		MailBasicAuthUsername: cfg.GameServer.MailBasicAuthUsername,
		MailBasicAuthPassword: cfg.GameServer.MailBasicAuthPassword,
	})

	// Init repo
	claimRepo := psqlRepo.NewClaimRepository(db)
	walletRepo := psqlRepo.NewWalletRepository(db)
	entitlementRepo := psqlRepo.NewEntitlementRepository(db)
	catalogRepo := psqlRepo.NewCatalogRepository(db)
	settingsRepo := psqlRepo.NewSettingsRepository(db)
	sessionRepo := redisRepo.NewSessionRepository(redisClient)

	// Init service
	gamePassService := gamepass.NewService(claimRepo, walletRepo, entitlementRepo, catalogRepo, settingsRepo, mailRepo)
	catalogService := catalog.NewCatalogService(catalogRepo)

	// Init handler
	gamePassHandler := rest.NewGamePassHandler(gamePassService)
	catalogAdminHandler := rest.NewCatalogAdminHandler(catalogService)
	settingsAdminHandler := rest.NewSettingsAdminHandler(settingsRepo)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithRedis(sessionRepo)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupGamePassRoutes(api, gamePassHandler, authRequired)
	router.SetupCatalogAdminRoutes(api, catalogAdminHandler, authRequired, adminOnly)
	router.SetupSettingsAdminRoutes(api, settingsAdminHandler, authRequired, adminOnly)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := redisdb.CloseRedisClient(redisClient); err != nil {
		logger.Error("Redis shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
