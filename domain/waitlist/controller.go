package waitlist

import (
	"github.com/akeren/saascribe/config/router"
	"github.com/akeren/saascribe/internal/log"
	apperrors "github.com/akeren/saascribe/pkg/errors"
)

// NewWaitlistController exposes the form submit as JSON for the enhanced page.
func NewWaitlistController(service WaitlistService, logger *log.Logger) *router.RESTController {
	return router.NewVersionedRESTController(
		"WaitlistController",
		"v1",
		"/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			rs.AddPostHandler(c, "", joinWaitlistHandler(service, logger))
		},
	)
}

func joinWaitlistHandler(service WaitlistService, baseLogger *log.Logger) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req JoinWaitlistRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Warn("Rejected waitlist payload", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		feedback := NewRequestFeedback()
		form := NewFormController(service, feedback, feedback, baseLogger)
		form.SetEmail(req.Email)

		outcome := form.Submit(ctx.Request.Context())
		response := ToJoinWaitlistResponse(form.State(), outcome, feedback)

		switch outcome.Status {
		case OutcomeSucceeded:
			return router.CreatedResult(response, "Waitlist entry")
		case OutcomeBlocked:
			return router.BadRequestResult(apperrors.GetHumanReadableMessage(outcome.Err), response)
		default:
			return router.ErrorResult(
				apperrors.HTTPStatusCode(outcome.Err),
				apperrors.GetHumanReadableMessage(outcome.Err),
				response,
			)
		}
	}
}
