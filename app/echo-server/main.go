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

	"shopreco/app/echo-server/router"
	"shopreco/business/reco"
	"shopreco/internal/middleware"
	psqlRepo "shopreco/internal/repository/postgres"
	redisRepo "shopreco/internal/repository/redis"
	"shopreco/internal/repository/scoring"
	"shopreco/internal/rest"
	"shopreco/pkg/config"
	"shopreco/pkg/database"
	redisdb "shopreco/pkg/database/redis"
	"shopreco/pkg/logger"
	"shopreco/pkg/metrics"

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
	logger.Info("Starting ShopReco", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer redisdb.CloseRedisClient(redisClient)

	logger.Info("Redis connected successfully")

	metrics.Init()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	productsRepo := psqlRepo.NewProductRepository(db)
	viewRepo := psqlRepo.NewViewRepository(db)
	experimentRepo := psqlRepo.NewExperimentRepository(db)
	eventRepo := psqlRepo.NewRecoEventRepository(db)
	similarityRepo := redisRepo.NewSimilarityRepository(redisClient)
	trendingCache := redisRepo.NewTrendingCache(redisClient)

	var reranker reco.Reranker
	if cfg.Recommendation.RerankEnabled {
		reranker = scoring.NewScoringRepository(scoring.ScoringConfig{
			ScoringUrl: cfg.Recommendation.RerankURL,
		})
	}

	// Init service
	recoService := reco.NewService(
		reco.Config{
			ExperimentName:   cfg.Recommendation.ExperimentName,
			GeneratorTimeout: time.Duration(cfg.Recommendation.GeneratorTimeoutMs) * time.Millisecond,
			RerankEnabled:    cfg.Recommendation.RerankEnabled,
			RerankTimeout:    time.Duration(cfg.Recommendation.RerankTimeoutMs) * time.Millisecond,
			DefaultLimit:     cfg.Recommendation.DefaultLimit,
			MaxLimit:         cfg.Recommendation.MaxLimit,
		},
		userRepo,
		productsRepo,
		ordersRepo,
		viewRepo,
		similarityRepo,
		experimentRepo,
		eventRepo,
		reranker,
		trendingCache,
	)

	// Init handler
	recoHandler := rest.NewRecommendationHandler(recoService)
	adminHandler := rest.NewExperimentAdminHandler(experimentRepo)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetRecommendationRoutes(api, recoHandler)
	router.SetExperimentAdminRoutes(api, adminHandler)

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

	logger.Info("Server stopped")
}
