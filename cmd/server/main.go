package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/ignatzorin/jovial-backend/internal/config"
	"github.com/ignatzorin/jovial-backend/internal/db"
	"github.com/ignatzorin/jovial-backend/internal/goroutine"
	httpHandlers "github.com/ignatzorin/jovial-backend/internal/http/handlers"
	httpRouter "github.com/ignatzorin/jovial-backend/internal/http/router"
	"github.com/ignatzorin/jovial-backend/internal/logger"
	"github.com/ignatzorin/jovial-backend/internal/metrics"
	"github.com/ignatzorin/jovial-backend/internal/repository"
	"github.com/ignatzorin/jovial-backend/internal/service"
	"github.com/ignatzorin/jovial-backend/internal/storage"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
	}
	logger.Init(logLevel, cfg.Env)
	log := logger.WithComponent("main")

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, os.DirFS(cfg.MigrationsPath)); err != nil {
		log.Fatalf("ошибка миграций: %v", err)
	}

	// Метрики.
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(dbConn.DB, "jovial"),
	)
	portfolioMetrics := metrics.NewPortfolioMetrics(registry)

	assets, err := storage.NewAssetStorage(cfg.MediaStoragePath, cfg.MediaPublicBaseURL, cfg.MaxUploadSizeMB)
	if err != nil {
		log.Fatalf("не удалось подготовить файловое хранилище: %v", err)
	}

	catalog, err := service.DefaultCatalog()
	if err != nil {
		log.Fatalf("некорректный каталог витрины: %v", err)
	}

	// Репозитории.
	videoRepo := repository.NewVideoRepository(dbConn)
	externalRepo := repository.NewExternalVideoRepository(dbConn)
	orderRepo := repository.NewOrderRepository(dbConn)

	// Сервисы.
	tokenManager := service.NewTokenManager(cfg.JWTSecret)
	aggregator := service.NewPortfolioAggregator(videoRepo, externalRepo, catalog, portfolioMetrics)
	videoService := service.NewVideoService(videoRepo, assets, cfg.VideoBucket, cfg.ThumbnailBucket, portfolioMetrics)
	orderService := service.NewOrderService(orderRepo)
	contactService := service.NewContactService(cfg.ContactEmail)

	// HTTP хэндлеры.
	healthHandler := httpHandlers.NewHealthHandler(dbConn)
	portfolioHandler := httpHandlers.NewPortfolioHandler(aggregator, cfg.PreviewLimit)
	videoHandler := httpHandlers.NewVideoHandler(videoService, aggregator, cfg.MaxUploadSizeMB)
	orderHandler := httpHandlers.NewOrderHandler(orderService)
	contactHandler := httpHandlers.NewContactHandler(contactService)

	var seedHandler *httpHandlers.SeedHandler
	if cfg.Env == "development" {
		seedHandler = httpHandlers.NewSeedHandler(service.NewSeedService(externalRepo))
	}

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, tokenManager, registry,
		healthHandler, portfolioHandler, videoHandler, orderHandler, contactHandler, seedHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	goroutine.SafeGo("http-shutdown", func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("ошибка остановки http сервера")
		}
	})

	log.Infof("HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(conn *sqlx.DB) {
	if err := conn.Close(); err != nil {
		logger.WithComponent("main").WithError(err).Error("ошибка закрытия базы")
	}
}
