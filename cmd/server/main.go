package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/micaelrauan/stokk-backend/config"
	alerthandler "github.com/micaelrauan/stokk-backend/internal/alert/handler"
	alertrepository "github.com/micaelrauan/stokk-backend/internal/alert/repository"
	alertusecase "github.com/micaelrauan/stokk-backend/internal/alert/usecase"
	api "github.com/micaelrauan/stokk-backend/internal/api/router"
	dashboardhandler "github.com/micaelrauan/stokk-backend/internal/dashboard/handler"
	dashboardrepository "github.com/micaelrauan/stokk-backend/internal/dashboard/repository"
	dashboardusecase "github.com/micaelrauan/stokk-backend/internal/dashboard/usecase"
	"github.com/micaelrauan/stokk-backend/internal/pkg/broker"
	"github.com/micaelrauan/stokk-backend/internal/pkg/cache"
	"github.com/micaelrauan/stokk-backend/internal/pkg/logger"
	"github.com/micaelrauan/stokk-backend/internal/pkg/postgres"
	"github.com/micaelrauan/stokk-backend/internal/pkg/search"
	producthandler "github.com/micaelrauan/stokk-backend/internal/product/handler"
	productrepository "github.com/micaelrauan/stokk-backend/internal/product/repository"
	productusecase "github.com/micaelrauan/stokk-backend/internal/product/usecase"
	referencehandler "github.com/micaelrauan/stokk-backend/internal/reference/handler"
	referencerepository "github.com/micaelrauan/stokk-backend/internal/reference/repository"
	referenceusecase "github.com/micaelrauan/stokk-backend/internal/reference/usecase"
	salehandler "github.com/micaelrauan/stokk-backend/internal/sale/handler"
	salelistener "github.com/micaelrauan/stokk-backend/internal/sale/listener"
	salerepository "github.com/micaelrauan/stokk-backend/internal/sale/repository"
	saleusecase "github.com/micaelrauan/stokk-backend/internal/sale/usecase"
	stockhandler "github.com/micaelrauan/stokk-backend/internal/stock/handler"
	stockrepository "github.com/micaelrauan/stokk-backend/internal/stock/repository"
	stockusecase "github.com/micaelrauan/stokk-backend/internal/stock/usecase"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

func main() {
	// No .env in production; environment variables are set directly.
	_ = godotenv.Load()

	cfg := config.LoadEnv()

	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.Server.AppEnv == "development",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer appLogger.Sync()

	appLogger.Info("starting stokk-backend", zap.String("env", cfg.Server.AppEnv))

	pgCfg := &postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	}

	if err := runMigrations(pgCfg); err != nil {
		appLogger.Fatal("migrations failed", zap.Error(err))
	}

	db, err := postgres.NewPostgres(pgCfg)
	if err != nil {
		appLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("redis connection failed", zap.Error(err))
	}
	defer redisClient.Close()

	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		// Search degrades to DB queries when ES is down.
		appLogger.Warn("elasticsearch unavailable", zap.Error(err))
		esClient = nil
	}

	alertRepo := alertrepository.NewPGRepository(db)
	stockRepo := stockrepository.NewPGRepository(db)
	productRepo := productrepository.NewPGRepository(db)
	saleRepo := salerepository.NewPGRepository(db)
	dashboardRepo := dashboardrepository.NewPGRepository(db)
	referenceRepo := referencerepository.NewPGRepository(db)

	alertUC := alertusecase.NewAlertUseCase(alertRepo, appLogger)
	stockUC := stockusecase.NewStockUseCase(stockRepo, alertRepo, redisClient, appLogger)
	productUC := productusecase.NewProductUseCase(productRepo, redisClient, esClient, appLogger)
	saleUC := saleusecase.NewSaleUseCase(saleRepo, stockUC, appLogger)
	dashboardUC := dashboardusecase.NewDashboardUseCase(dashboardRepo, redisClient, appLogger)
	referenceUC := referenceusecase.NewReferenceUseCase(referenceRepo, appLogger)

	router := api.NewRouter(&api.Handlers{
		Stock:     stockhandler.NewStockHandler(stockUC, appLogger),
		Sale:      salehandler.NewSaleHandler(saleUC, appLogger),
		Alert:     alerthandler.NewAlertHandler(alertUC, appLogger),
		Dashboard: dashboardhandler.NewDashboardHandler(dashboardUC, appLogger),
		Product:   producthandler.NewProductHandler(productUC, appLogger),
		Reference: referencehandler.NewReferenceHandler(referenceUC, appLogger),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer consumer.Close()

	listener := salelistener.NewSaleListener(consumer, saleUC, appLogger)
	go listener.Start(ctx)

	server := &http.Server{
		Addr:         cfg.Server.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		appLogger.Info("http server listening", zap.String("addr", cfg.Server.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func runMigrations(cfg *postgres.Config) error {
	db, err := goose.OpenDBWithDriver("pgx", cfg.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetTableName("goose_db_version")
	return goose.Up(db, "migrations")
}
