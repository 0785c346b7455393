package monitoring

import (
	"context"

	"github.com/akeren/saascribe/config"
	"github.com/akeren/saascribe/config/router"
	"github.com/akeren/saascribe/internal/log"
	"gorm.io/gorm"
)

// MonitoringCache defines the cache interface for the monitoring controller factory.
type MonitoringCache interface {
	Ping(ctx context.Context) error
}

type MonitoringControllerFactory interface {
	CreateController() *router.RESTController
}

type DefaultMonitoringControllerFactory struct {
	db     *gorm.DB
	logger *log.Logger
	cache  MonitoringCache
	store  string
}

func NewMonitoringControllerFactory(appConfig *config.ApplicationConfig) MonitoringControllerFactory {
	f := &DefaultMonitoringControllerFactory{
		db:     appConfig.DB,
		logger: appConfig.Logger,
		store:  config.StoreBackendPostgres,
	}

	// A nil config.Cache must stay a nil interface here.
	if appConfig.Cache != nil {
		f.cache = appConfig.Cache
	}
	if appConfig.Settings != nil {
		f.store = appConfig.Settings.Store.Backend
	}

	return f
}

func (f *DefaultMonitoringControllerFactory) CreateController() *router.RESTController {
	return NewMonitoringController(f.db, f.logger, f.cache, f.store)
}
