package landing

import (
	"net/http"
	"time"

	"github.com/akeren/saascribe/config"
	"github.com/akeren/saascribe/config/router"
	"github.com/akeren/saascribe/domain/waitlist"
	"github.com/akeren/saascribe/internal/log"
	apperrors "github.com/akeren/saascribe/pkg/errors"
)

type LandingController struct {
	service waitlist.WaitlistService
	site    config.SiteConfig
	logger  *log.Logger
	now     func() time.Time
}

// NewLandingController serves the page on GET / and takes plain form posts on
// POST /waitlist, re-rendering the page with the outcome.
func NewLandingController(service waitlist.WaitlistService, site config.SiteConfig, logger *log.Logger) *router.RESTController {
	ctrl := &LandingController{
		service: service,
		site:    site,
		logger:  logger,
		now:     time.Now,
	}

	return ctrl.routes()
}

func (ctrl *LandingController) routes() *router.RESTController {
	return router.NewRESTController(
		"LandingController",
		"/",
		func(routerService *router.RouterService, controller *router.RESTController) {
			routerService.AddPageHandler(controller, http.MethodGet, "", ctrl.index)
			routerService.AddPageHandler(controller, http.MethodPost, "waitlist", ctrl.submit)
		},
	)
}

func (ctrl *LandingController) page(data PageData) PageData {
	data.Site = ctrl.site
	data.Year = ctrl.now().Year()
	return data
}

func (ctrl *LandingController) index(c *router.RequestContext) *router.PageResult {
	return router.HTMLPage(http.StatusOK, Page(ctrl.page(PageData{})))
}

func (ctrl *LandingController) submit(c *router.RequestContext) *router.PageResult {
	feedback := waitlist.NewRequestFeedback()
	form := waitlist.NewFormController(ctrl.service, feedback, feedback, ctrl.logger)
	form.SetEmail(c.PostForm("email"))

	outcome := form.Submit(c.Request.Context())

	data := ctrl.page(PageData{
		Form:          form.State(),
		Notifications: feedback.Notifications(),
		Alert:         feedback.LastAlert(),
	})

	switch outcome.Status {
	case waitlist.OutcomeSucceeded:
		return router.HTMLPage(http.StatusCreated, Page(data))
	case waitlist.OutcomeBlocked:
		router.GetLogger(c).Debug("Waitlist form blocked", "error", outcome.Err)
		data.FieldError = apperrors.GetHumanReadableMessage(outcome.Err)
		return router.HTMLPage(http.StatusBadRequest, Page(data))
	default:
		return router.HTMLPage(apperrors.HTTPStatusCode(outcome.Err), Page(data))
	}
}
