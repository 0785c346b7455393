package waitlist

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/akeren/saascribe/internal/log"
	apperrors "github.com/akeren/saascribe/pkg/errors"
	"github.com/go-playground/validator/v10"
)

const (
	PhaseIdle       = "idle"
	PhaseSubmitting = "submitting"

	transientFailureMessage = "Something went wrong. Please try again."
	invalidEmailMessage     = "Please enter a valid email address."
)

var (
	SuccessNotification = Notification{
		Title:       "Success!",
		Description: "You've been added to the waitlist.",
		Variant:     VariantDefault,
	}

	emailValidator = validator.New()
)

// SubmissionState is the form's transient state. IsSubmitting is presentational:
// it disables the button but does not serialise submits.
type SubmissionState struct {
	Email        string `json:"email"`
	IsSubmitting bool   `json:"is_submitting"`
}

func (s SubmissionState) Phase() string {
	if s.IsSubmitting {
		return PhaseSubmitting
	}
	return PhaseIdle
}

type OutcomeStatus int

const (
	// OutcomeBlocked means the email never reached the store.
	OutcomeBlocked OutcomeStatus = iota
	OutcomeSucceeded
	OutcomeFailed
)

type Outcome struct {
	Status    OutcomeStatus
	Err       error
	Retryable bool
}

// FormController owns the waitlist form for one visitor.
type FormController struct {
	service  WaitlistService
	notifier Notifier
	alerter  Alerter
	logger   *log.Logger

	mu    sync.Mutex
	state SubmissionState
}

func NewFormController(service WaitlistService, notifier Notifier, alerter Alerter, logger *log.Logger) *FormController {
	return &FormController{
		service:  service,
		notifier: notifier,
		alerter:  alerter,
		logger:   logger,
	}
}

// SetEmail stores the draft the way an <input type=email> sanitises its value.
func (fc *FormController) SetEmail(email string) {
	fc.mu.Lock()
	fc.state.Email = strings.TrimSpace(email)
	fc.mu.Unlock()
}

func (fc *FormController) State() SubmissionState {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.state
}

func ValidateEmail(email string) error {
	if err := emailValidator.Var(email, "required,email"); err != nil {
		return apperrors.NewInvalidRequestError(invalidEmailMessage, err)
	}
	return nil
}

// Submit sends the current draft to the store once. Success clears the draft;
// failure keeps it and raises an alert plus a destructive toast. IsSubmitting
// is always false again when Submit returns.
func (fc *FormController) Submit(ctx context.Context) Outcome {
	logger := log.GetLoggerInstanceFromContext(ctx, fc.logger)

	fc.mu.Lock()
	email := fc.state.Email
	if err := ValidateEmail(email); err != nil {
		fc.mu.Unlock()
		return Outcome{Status: OutcomeBlocked, Err: err}
	}
	fc.state.IsSubmitting = true
	fc.mu.Unlock()

	defer func() {
		fc.mu.Lock()
		fc.state.IsSubmitting = false
		fc.mu.Unlock()
	}()

	// A visitor leaving mid-request must not abort an insert that may already have landed.
	err := fc.service.AddEntry(context.WithoutCancel(ctx), email)
	if err == nil {
		fc.notifier.Notify(ctx, SuccessNotification)

		fc.mu.Lock()
		fc.state.Email = ""
		fc.mu.Unlock()

		return Outcome{Status: OutcomeSucceeded}
	}

	logger.Error("Error adding user to waitlist", "error", err)
	fc.alerter.Alert(ctx, alertMessage(err))
	fc.notifier.Notify(ctx, FailureNotification(err))

	return Outcome{Status: OutcomeFailed, Err: err, Retryable: apperrors.IsRetryable(err)}
}

// alertMessage is the store's own error text, unclassified.
func alertMessage(err error) string {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return err.Error()
	}
	if appErr.Err == nil {
		return appErr.Message
	}
	return alertMessage(appErr.Err)
}

// FailureNotification names the problem when retrying cannot help and stays
// generic otherwise.
func FailureNotification(err error) Notification {
	description := transientFailureMessage
	if !apperrors.IsRetryable(err) {
		description = apperrors.GetHumanReadableMessage(err)
	}

	return Notification{
		Title:       "Error",
		Description: description,
		Variant:     VariantDestructive,
	}
}
