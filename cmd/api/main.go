package main

// @title Watermatrix Map Service API
// @version 1.0.0
// @description Сервис данных карты для мобильного приложения watermatrix. Загружает объекты и участки из upstream GIS, нормализует их и отдаёт готовые к отрисовке наборы маркеров и полигонов под текущий viewport.
// @description
// @description Основные возможности:
// @description - Получение render-набора (маркеры + полигоны) под viewport с фильтрацией
// @description - Текстовый поиск локаций через геокодер
// @description - Добавление пользовательских объявлений
// @description - Статистика по загруженному снапшоту

// @contact.name API Support
// @contact.email support@watermatrix.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/DurraizShahid/watermatrixfrontend-sub000/docs/swagger"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/config"
	httpDelivery "github.com/DurraizShahid/watermatrixfrontend-sub000/internal/delivery/http"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/delivery/http/handler"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/infrastructure/geocoder"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/infrastructure/gis"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/pkg/logger"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/repository/cache"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/repository/memory"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/repository/postgres"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/usecase"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/worker"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/worker/refresh"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Watermatrix Map Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL (пользовательские объявления)
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	sourceRepo := gis.NewClient(&cfg.Source, log)
	geocoderRepo := geocoder.NewClient(&cfg.Geocoder, log)
	listingRepo := postgres.NewListingRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	snapshotStore := memory.NewSnapshotStore()

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	cullParams := usecase.CullParams{
		ZoomThreshold: cfg.Map.ZoomThreshold,
		BatchSize:     cfg.Map.BatchSize,
		PaddingFactor: cfg.Map.PaddingFactor,
	}

	mapUC := usecase.NewMapDataUseCase(
		sourceRepo,
		listingRepo,
		cacheRepo,
		snapshotStore,
		log,
		cullParams,
		cfg.Cache.SnapshotCacheTTL,
	)

	listingUC := usecase.NewListingUseCase(
		listingRepo,
		snapshotStore,
		log,
	)

	searchUC := usecase.NewSearchUseCase(
		geocoderRepo,
		cacheRepo,
		log,
		cfg.Cache.GeocodeCacheTTL,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	mapHandler := handler.NewMapHandler(mapUC, log)
	listingHandler := handler.NewListingHandler(listingUC, log)
	searchHandler := handler.NewSearchHandler(searchUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		mapHandler,
		listingHandler,
		searchHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start background workers
	workerManager := worker.NewManager(log)
	if cfg.Worker.Enabled {
		workerManager.Register(refresh.NewWorker(mapUC, cfg.Worker.RefreshInterval, log))
		if err := workerManager.Start(context.Background()); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
		log.Info("Background workers started")
	} else {
		log.Info("Background workers disabled")
	}

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop background workers
	if cfg.Worker.Enabled {
		if err := workerManager.Stop(); err != nil {
			log.Error("Worker shutdown error", zap.Error(err))
		}
	}

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
