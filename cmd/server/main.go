package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appbackup "github.com/catalogsync/backend/internal/application/backup"
	appcatalog "github.com/catalogsync/backend/internal/application/catalog"
	"github.com/catalogsync/backend/internal/infrastructure/cache"
	"github.com/catalogsync/backend/internal/infrastructure/catalogapi"
	"github.com/catalogsync/backend/internal/infrastructure/config"
	"github.com/catalogsync/backend/internal/infrastructure/logger"
	"github.com/catalogsync/backend/internal/infrastructure/persistence"
	"github.com/catalogsync/backend/internal/infrastructure/scheduler"
	"github.com/catalogsync/backend/internal/interfaces/http/handler"
	"github.com/catalogsync/backend/internal/interfaces/http/middleware"
	"github.com/catalogsync/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting catalog sync backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection
	db, err := persistence.Open(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	priceEntryRepo := persistence.NewGormPriceEntryRepository(db.DB)
	snapshotRepo := persistence.NewGormBackupSnapshotRepository(db.DB)

	// Initialize remote catalog client
	catalogClient, err := catalogapi.NewClient(&catalogapi.Config{
		BaseURL:        cfg.Catalog.BaseURL,
		RequestTimeout: cfg.Catalog.RequestTimeout,
	})
	if err != nil {
		log.Fatal("Failed to create catalog client", zap.Error(err))
	}

	// Initialize catalog list cache when enabled
	var listCache appcatalog.CatalogListCache
	if cfg.Catalog.CacheEnabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cancel()
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		listCache = cache.NewRedisCatalogCache(redisClient, cfg.Catalog.CacheTTL, log)
		log.Info("Catalog list cache enabled", zap.Duration("ttl", cfg.Catalog.CacheTTL))
	}

	// Initialize application services
	priceSyncService := appcatalog.NewPriceSyncService(priceEntryRepo, log)
	importService := appcatalog.NewImportService(productRepo, priceSyncService, log)
	browseService := appcatalog.NewBrowseService(catalogClient, listCache, log)
	productQueryService := appcatalog.NewProductQueryService(productRepo, log)
	snapshotService := appbackup.NewSnapshotService(productRepo, snapshotRepo, log, appbackup.SnapshotServiceConfig{
		ChunkSize: cfg.Backup.ChunkSize,
	})

	// Initialize backup scheduler
	backupLocation := time.Local
	if cfg.Backup.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Backup.Timezone)
		if err != nil {
			log.Fatal("Invalid backup timezone", zap.String("timezone", cfg.Backup.Timezone), zap.Error(err))
		}
		backupLocation = loc
	}

	backupScheduler, err := scheduler.NewBackupScheduler(snapshotService, log, scheduler.BackupSchedulerConfig{
		Enabled:      cfg.Backup.Enabled,
		TriggerTimes: cfg.Backup.TriggerTimes,
		Location:     backupLocation,
		RunTimeout:   cfg.Backup.RunTimeout,
	})
	if err != nil {
		log.Fatal("Failed to create backup scheduler", zap.Error(err))
	}

	schedulerCtx, schedulerCancel := context.WithCancel(context.Background())
	defer schedulerCancel()

	if err := backupScheduler.Start(schedulerCtx); err != nil {
		log.Fatal("Failed to start backup scheduler", zap.Error(err))
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := backupScheduler.Stop(stopCtx); err != nil {
			log.Error("Error stopping backup scheduler", zap.Error(err))
		}
	}()

	// Set up HTTP server
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	healthHandler := handler.NewHealthHandler(db)
	engine.GET("/health", healthHandler.Check)

	r := router.New(engine, "v1")
	r.Mount(
		handler.NewCatalogHandler(browseService, importService),
		handler.NewProductHandler(productQueryService),
		handler.NewBackupHandler(backupScheduler),
	)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
