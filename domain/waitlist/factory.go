package waitlist

import (
	"fmt"

	"github.com/akeren/saascribe/config"
	"github.com/akeren/saascribe/config/router"
	"github.com/akeren/saascribe/internal/log"
	"github.com/prometheus/client_golang/prometheus"
)

type WaitlistServiceFactory interface {
	CreateRepository() (WaitlistRepository, error)
	CreateService(reg prometheus.Registerer) (WaitlistService, error)
	CreateController(service WaitlistService) *router.RESTController
}

type DefaultWaitlistServiceFactory struct {
	appConfig *config.ApplicationConfig
	logger    *log.Logger
}

func NewWaitlistServiceFactory(appConfig *config.ApplicationConfig) WaitlistServiceFactory {
	return &DefaultWaitlistServiceFactory{
		appConfig: appConfig,
		logger:    appConfig.Logger,
	}
}

// CreateRepository picks the record store named by WAITLIST_STORE. The matching
// connection must already be open on the application config.
func (f *DefaultWaitlistServiceFactory) CreateRepository() (WaitlistRepository, error) {
	backend := config.StoreBackendPostgres
	if f.appConfig.Settings != nil {
		backend = f.appConfig.Settings.Store.Backend
	}

	switch backend {
	case config.StoreBackendPostgres, config.StoreBackendSQLite:
		if f.appConfig.DB == nil {
			return nil, fmt.Errorf("waitlist store %q has no database connection", backend)
		}
		return NewWaitlistRepository(f.appConfig.DB), nil
	case config.StoreBackendREST:
		if f.appConfig.RecordStore == nil {
			return nil, fmt.Errorf("waitlist store %q has no record store client", backend)
		}
		return NewRESTWaitlistRepository(f.appConfig.RecordStore), nil
	case config.StoreBackendRedis:
		client := config.GetRedisClient(f.appConfig.Cache)
		if client == nil {
			return nil, fmt.Errorf("waitlist store %q has no redis client", backend)
		}
		return NewRedisWaitlistRepository(client), nil
	default:
		return nil, fmt.Errorf("unsupported waitlist store %q", backend)
	}
}

func (f *DefaultWaitlistServiceFactory) CreateService(reg prometheus.Registerer) (WaitlistService, error) {
	repository, err := f.CreateRepository()
	if err != nil {
		return nil, err
	}

	return NewWaitlistService(f.logger, repository, NewSubmissionMetrics(reg)), nil
}

func (f *DefaultWaitlistServiceFactory) CreateController(service WaitlistService) *router.RESTController {
	return NewWaitlistController(service, f.logger)
}
