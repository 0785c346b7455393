package domain

import (
	"fmt"

	"github.com/akeren/saascribe/config"
	"github.com/akeren/saascribe/domain/landing"
	"github.com/akeren/saascribe/domain/monitoring"
	"github.com/akeren/saascribe/domain/waitlist"
)

// SetupCoreDomain mounts every controller. The landing page and the JSON
// endpoint share one waitlist service so its metrics register once.
func SetupCoreDomain(appConfig *config.ApplicationConfig) error {
	rs := appConfig.RouterService

	rs.MountController(monitoring.NewMonitoringControllerFactory(appConfig).CreateController())

	waitlistFactory := waitlist.NewWaitlistServiceFactory(appConfig)
	service, err := waitlistFactory.CreateService(rs.MetricsRegistry())
	if err != nil {
		return fmt.Errorf("waitlist: %w", err)
	}

	assets, err := landing.Assets()
	if err != nil {
		return fmt.Errorf("landing assets: %w", err)
	}
	rs.ServeStatic("/static", assets)

	site := config.SiteConfig{Name: "SaaScribe"}
	if appConfig.Settings != nil {
		site = appConfig.Settings.Site
	}

	rs.MountController(landing.NewLandingController(service, site, appConfig.Logger))
	rs.MountController(waitlistFactory.CreateController(service))

	return nil
}
