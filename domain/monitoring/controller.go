package monitoring

import (
	"context"
	"net/http"
	"time"

	"github.com/akeren/saascribe/config/router"
	"github.com/akeren/saascribe/internal/log"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

type Cache interface {
	Ping(ctx context.Context) error
}

type HealthStatus struct {
	Store    string `json:"store"`
	Database int    `json:"database"` // 1 = healthy, 0 = unhealthy/not configured
	Cache    int    `json:"cache"`    // 1 = healthy, 0 = unhealthy/not configured
	Healthy  bool   `json:"healthy"`
	Uptime   int    `json:"uptime"` // seconds
}

type MonitoringController struct {
	db        *gorm.DB
	logger    *log.Logger
	cache     Cache
	store     string
	startTime time.Time
}

func NewMonitoringController(db *gorm.DB, logger *log.Logger, cache Cache, store string) *router.RESTController {
	ctrl := &MonitoringController{
		db:        db,
		logger:    logger,
		cache:     cache,
		store:     store,
		startTime: time.Now(),
	}

	return router.NewRESTController(
		"MonitoringController",
		"/",
		func(routerService *router.RouterService, controller *router.RESTController) {
			routerService.AddGetHandler(controller, "monitoring", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.monitor(c)
			})

			health := func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.healthCheck(routerService, c)
			}
			routerService.AddGetHandler(controller, "health", health)
			routerService.AddHeadHandler(controller, "health", health)
		},
	)
}

func (ctrl *MonitoringController) healthCheck(
	routerService *router.RouterService,
	c *router.RequestContext,
) *router.ServiceResult {
	logger := routerService.GetLogger(c)
	logger.Debug("Health check endpoint called")

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	healthStatus := ctrl.performHealthChecks(ctx, logger)

	statusCode := http.StatusOK
	if !healthStatus.Healthy {
		statusCode = http.StatusServiceUnavailable
	}

	return &router.ServiceResult{
		StatusCode: statusCode,
		Data:       healthStatus,
		Message:    "saascribe health check completed",
	}
}

func (ctrl *MonitoringController) monitor(
	c *router.RequestContext,
) *router.ServiceResult {
	return &router.ServiceResult{
		StatusCode: http.StatusOK,
		Data:       "Monitoring endpoint is operational.",
		Message:    "Monitoring successful",
	}
}

// performHealthChecks is healthy when whichever connection backs the waitlist
// store answers. The REST store is not probed; its first insert is the probe.
func (ctrl *MonitoringController) performHealthChecks(ctx context.Context, logger *log.Logger) HealthStatus {
	status := HealthStatus{
		Store:  ctrl.store,
		Uptime: int(time.Since(ctrl.startTime).Seconds()),
	}

	checkDatabaseConnectivity(ctx, ctrl, &status, logger)
	checkCacheConnectivity(ctx, ctrl, &status, logger)

	switch {
	case ctrl.db != nil:
		status.Healthy = status.Database == 1
	case ctrl.store == "redis":
		status.Healthy = status.Cache == 1
	default:
		status.Healthy = true
	}

	return status
}

func checkCacheConnectivity(ctx context.Context, ctrl *MonitoringController, status *HealthStatus, logger *log.Logger) {
	if ctrl.cache == nil {
		logger.Debug("Cache not configured, cache health check skipped")
		return
	}

	if ctrl.cache.Ping(ctx) == nil {
		status.Cache = 1
		logger.Debug("Cache health check passed")
	} else {
		logger.Error("Cache health check failed")
	}
}

func checkDatabaseConnectivity(ctx context.Context, ctrl *MonitoringController, status *HealthStatus, logger *log.Logger) {
	if ctrl.db == nil {
		logger.Debug("No SQL store configured, database health check skipped")
		return
	}

	if ctrl.checkDatabase(ctx) {
		status.Database = 1
		logger.Debug("Database health check passed")
	} else {
		logger.Error("Database health check failed")
	}
}

func (ctrl *MonitoringController) checkDatabase(ctx context.Context) bool {
	sqlDB, err := ctrl.db.DB()
	if err != nil {
		return false
	}

	return sqlDB.PingContext(ctx) == nil
}
