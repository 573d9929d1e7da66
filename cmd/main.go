package main

import (
	"context"
	"net/http"

	"rvintel-service/internal/cache"
	"rvintel-service/internal/handler"
	mid "rvintel-service/internal/middleware"
	"rvintel-service/internal/refresh"
	"rvintel-service/internal/store"
	"rvintel-service/internal/warehouse"
	"rvintel-service/pkg/config"
	"rvintel-service/pkg/database"
	"rvintel-service/pkg/jwtutil"
	"rvintel-service/pkg/logger"
	"rvintel-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration (reads .env when present)
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting rvintel-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database. The service can run without it; the cache serves
	// every request, the database only provides warm starts.
	var snapshotStore refresh.SnapshotStore
	if err := database.InitDB(appConfig); err != nil {
		log.Warn("Database unavailable, snapshot persistence disabled", zap.Error(err))
	} else {
		s, err := store.New(database.GetDB())
		if err != nil {
			log.Fatal("Failed to migrate snapshot store", zap.Error(err))
		}
		snapshotStore = s
		log.Info("Database connection established")
	}

	// Warehouse client and snapshot refresher
	warehouseClient := warehouse.NewClient(
		appConfig.Warehouse.Endpoint,
		appConfig.Warehouse.Token,
		appConfig.Warehouse.PageSize,
		log)
	sessionCache := cache.New()
	refresher := refresh.New(warehouseClient, sessionCache, snapshotStore, log, appConfig.Warehouse.RefreshInterval)

	if warmed, err := refresher.WarmStart(); err != nil {
		log.Warn("Warm start failed, waiting for first refresh", zap.Error(err))
	} else if warmed {
		log.Info("Serving persisted snapshot until first refresh completes")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go refresher.Run(ctx)

	h := handler.New(sessionCache)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Dashboard API routes - Apply auth middleware to validate JWT
	api := e.Group("/api", mid.AuthMiddleware)
	api.GET("/filters", h.GetFilters)
	api.GET("/dealers", h.GetDealers)
	api.GET("/inventory", h.GetInventory)
	api.GET("/inventory/summary", h.GetInventorySummary)
	api.GET("/inventory/totals", h.GetTotals)
	api.GET("/inventory/aggregated", h.GetAggregated)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
