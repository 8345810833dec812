package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appcatalog "github.com/cataloghub/backend/internal/application/catalog"
	"github.com/cataloghub/backend/internal/application/feed"
	appidentity "github.com/cataloghub/backend/internal/application/identity"
	"github.com/cataloghub/backend/internal/application/integration"
	"github.com/cataloghub/backend/internal/infrastructure/auth"
	"github.com/cataloghub/backend/internal/infrastructure/cache"
	"github.com/cataloghub/backend/internal/infrastructure/config"
	"github.com/cataloghub/backend/internal/infrastructure/logger"
	"github.com/cataloghub/backend/internal/infrastructure/persistence"
	"github.com/cataloghub/backend/internal/interfaces/http/handler"
	"github.com/cataloghub/backend/internal/interfaces/http/middleware"
	"github.com/cataloghub/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting CatalogHub",
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Repositories
	vendorARepo := persistence.NewGormVendorARepository(db.DB)
	vendorBRepo := persistence.NewGormVendorBRepository(db.DB)
	vendorCRepo := persistence.NewGormVendorCRepository(db.DB)
	catalogRepo := persistence.NewGormCatalogRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Optional catalog snapshot cache
	var catalogCache *cache.RedisCatalogCache
	if cfg.Redis.Enabled {
		catalogCache, err = cache.NewRedisCatalogCache(&cfg.Redis, cfg.Integration.CacheTTL)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			_ = catalogCache.Close()
		}()
		log.Info("Catalog snapshot cache enabled", zap.String("addr", cfg.Redis.Addr()))
	}

	// Services
	tokens := auth.NewTokenService(cfg.JWT)
	authService := appidentity.NewAuthService(userRepo, tokens, log)
	feedService := feed.NewService(vendorARepo, vendorBRepo, vendorCRepo, log)

	var invalidator integration.SnapshotInvalidator
	var snapshots appcatalog.SnapshotCache
	if catalogCache != nil {
		invalidator = catalogCache
		snapshots = catalogCache
	}

	integrationService := integration.NewService(
		vendorARepo, vendorBRepo, vendorCRepo, catalogRepo, invalidator,
		integration.Config{
			FetchTimeout: cfg.Integration.FetchTimeout,
			SampleSize:   cfg.Integration.SampleSize,
		},
		log,
	)
	catalogService := appcatalog.NewService(catalogRepo, snapshots, log)

	// HTTP server
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORS(middleware.CORSConfig{AllowOrigins: cfg.HTTP.CORSAllowOrigins}),
	)

	requireAuth := middleware.RequireAuth(tokens)

	router.NewRouter(engine).
		Register(handler.NewHealthHandler(db)).
		Register(handler.NewAuthHandler(authService)).
		Register(handler.NewFeedHandler(feedService, requireAuth)).
		Register(handler.NewProductHandler(catalogService, integrationService)).
		Register(handler.NewIntegrationHandler(integrationService, requireAuth, middleware.RequireAdmin())).
		Setup()

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info("Shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
