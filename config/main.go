package config

import (
	"context"
	"time"

	"github.com/akeren/saascribe/config/router"
	"github.com/akeren/saascribe/internal/log"
	"github.com/akeren/saascribe/internal/models"
	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"
)

type ApplicationConfig struct {
	// DB is nil unless the waitlist store is SQL-backed.
	DB        *gorm.DB
	DBDialect string
	// RecordStore is nil unless WAITLIST_STORE=rest.
	RecordStore     *resty.Client
	RouterService   *router.RouterService
	Logger          *log.Logger
	Cache           Cache
	Settings        *Settings
	TracingShutdown func(context.Context) error
}

func (ac *ApplicationConfig) Cleanup() {
	if ac.TracingShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := ac.TracingShutdown(ctx); err != nil {
			ac.Logger.Error("Failed to shutdown tracer provider", "error", err)
		}
	}

	if ac.DB != nil {
		CloseDatabase(ac.DB, ac.Logger)
	}

	if ac.RouterService != nil {
		ac.RouterService.Cleanup()
	}

	if ac.Cache != nil {
		_ = CloseCache(ac.Cache, ac.Logger)
	}

	ac.Logger.Info("Application cleanup completed")
}

func LoadApplicationConfiguration(logger *log.Logger, autoMigrate bool) (*ApplicationConfig, error) {
	InitializeEnvFile(logger)

	settings, err := LoadSettings()
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		return nil, err
	}

	if autoMigrate {
		appEnv := GetAppEnv()
		if err := ValidateAutoMigrateAllowed(appEnv); err != nil {
			return nil, err
		}
		if appEnv == "" {
			logger.Warn("APP_ENV not set; allowing --auto-migrate as development")
		}
	}

	tracingShutdown, err := SetupTracing(logger)
	if err != nil {
		return nil, err
	}

	db, dialect, err := OpenStoreDatabase(logger, &settings.Store)
	if err != nil {
		return nil, err
	}

	if autoMigrate {
		if db == nil {
			logger.Warn("--auto-migrate ignored; waitlist store is not SQL-backed", "store", settings.Store.Backend)
		} else if err := AutoMigrate(logger, db, models.ModelRegistry...); err != nil {
			return nil, err
		}
	}

	cacheConfig, err := NewCacheConfig()
	if err != nil {
		return nil, err
	}
	cache, err := cacheConfig.NewCacheOrNil(logger, settings.Store.Backend == StoreBackendRedis)
	if err != nil {
		logger.Error("Redis is required for WAITLIST_STORE=redis", "error", err)
		return nil, err
	}

	var recordStore *resty.Client
	if settings.Store.Backend == StoreBackendREST {
		recordStore = NewRecordStoreClient(logger, &settings.Store, settings.App.RequestTimeout)
	}

	routerService := router.CreateRouterService(logger, &router.RouterConfig{
		RequestTimeout: settings.App.RequestTimeout,
		Port:           settings.App.Port,
	})

	logger.Info("Application configuration loaded successfully", "store", settings.Store.Backend)

	return &ApplicationConfig{
		DB:              db,
		DBDialect:       dialect,
		RecordStore:     recordStore,
		RouterService:   routerService,
		Logger:          logger,
		Cache:           cache,
		Settings:        settings,
		TracingShutdown: tracingShutdown,
	}, nil
}
