package waitlist

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/akeren/saascribe/internal/log"
	"github.com/akeren/saascribe/internal/models"
	apperrors "github.com/akeren/saascribe/pkg/errors"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type formFixture struct {
	repo     *MockWaitlistRepository
	feedback *RequestFeedback
	form     *FormController
	logs     *bytes.Buffer
}

func newFormFixture(t *testing.T) *formFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	logs := &bytes.Buffer{}
	logger := log.NewLogger(logs, slog.LevelDebug)

	repo := NewMockWaitlistRepository(ctrl)
	feedback := NewRequestFeedback()
	service := NewWaitlistService(logger, repo, nil)

	return &formFixture{
		repo:     repo,
		feedback: feedback,
		form:     NewFormController(service, feedback, feedback, logger),
		logs:     logs,
	}
}

func emailIs(email string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		entry, ok := x.(*models.WaitlistEntry)
		return ok && entry.Email == email
	})
}

func TestSubmit_SuccessClearsFieldAndNotifies(t *testing.T) {
	f := newFormFixture(t)
	f.form.SetEmail("user@example.com")

	f.repo.EXPECT().InsertEntry(gomock.Any(), emailIs("user@example.com")).Return(nil).Times(1)

	outcome := f.form.Submit(context.Background())

	assert.Equal(t, OutcomeSucceeded, outcome.Status)
	assert.NoError(t, outcome.Err)
	assert.Equal(t, SubmissionState{Email: "", IsSubmitting: false}, f.form.State())
	assert.Equal(t, []Notification{SuccessNotification}, f.feedback.Notifications())
	assert.Empty(t, f.feedback.Alerts())
}

func TestSubmit_DuplicateKeepsFieldAndAlerts(t *testing.T) {
	f := newFormFixture(t)
	f.form.SetEmail("user@example.com")

	f.repo.EXPECT().
		InsertEntry(gomock.Any(), emailIs("user@example.com")).
		Return(apperrors.NewConflictError(duplicateEmailMessage, errors.New("UNIQUE constraint failed: users.email"))).
		Times(1)

	outcome := f.form.Submit(context.Background())

	assert.Equal(t, OutcomeFailed, outcome.Status)
	assert.False(t, outcome.Retryable)
	assert.Equal(t, SubmissionState{Email: "user@example.com", IsSubmitting: false}, f.form.State())
	assert.Equal(t, []string{"UNIQUE constraint failed: users.email"}, f.feedback.Alerts())

	notifications := f.feedback.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, "Error", notifications[0].Title)
	assert.Equal(t, VariantDestructive, notifications[0].Variant)
	assert.Equal(t, duplicateEmailMessage, notifications[0].Description)

	assert.Contains(t, f.logs.String(), "Error adding user to waitlist")
	assert.Contains(t, f.logs.String(), "UNIQUE constraint failed")
}

func TestSubmit_TransientFailureIsGeneric(t *testing.T) {
	f := newFormFixture(t)
	f.form.SetEmail("user@example.com")

	f.repo.EXPECT().
		InsertEntry(gomock.Any(), gomock.Any()).
		Return(apperrors.NewServiceUnavailableError("waitlist store is unavailable", errors.New("dial tcp: connection refused")))

	outcome := f.form.Submit(context.Background())

	assert.Equal(t, OutcomeFailed, outcome.Status)
	assert.True(t, outcome.Retryable)
	assert.Equal(t, "user@example.com", f.form.State().Email)
	assert.Equal(t, []string{"dial tcp: connection refused"}, f.feedback.Alerts())

	notifications := f.feedback.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, transientFailureMessage, notifications[0].Description)
}

func TestSubmit_AlertShowsRecordStoreMessage(t *testing.T) {
	server, received := newRecordStoreServer(t, http.StatusInternalServerError,
		`{"code":"XX000","message":"connection pool exhausted"}`)

	logger := log.NewLogger(&bytes.Buffer{}, slog.LevelDebug)
	service := NewWaitlistService(logger, NewRESTWaitlistRepository(resty.New().SetBaseURL(server.URL)), nil)
	feedback := NewRequestFeedback()
	form := NewFormController(service, feedback, feedback, logger)
	form.SetEmail("user@example.com")

	outcome := form.Submit(context.Background())

	require.Len(t, *received, 1)
	assert.Equal(t, OutcomeFailed, outcome.Status)
	assert.True(t, outcome.Retryable)
	assert.Equal(t, "user@example.com", form.State().Email)
	assert.Equal(t, []string{"connection pool exhausted"}, feedback.Alerts())

	notifications := feedback.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, transientFailureMessage, notifications[0].Description)
}

func TestSubmit_AlertFallsBackToMessageWithoutCause(t *testing.T) {
	f := newFormFixture(t)
	f.form.SetEmail("user@example.com")

	f.repo.EXPECT().
		InsertEntry(gomock.Any(), gomock.Any()).
		Return(apperrors.NewConflictError(duplicateEmailMessage, nil))

	f.form.Submit(context.Background())

	assert.Equal(t, []string{duplicateEmailMessage}, f.feedback.Alerts())
}

func TestSubmit_ButtonShowsJoiningWhileInFlight(t *testing.T) {
	f := newFormFixture(t)
	f.form.SetEmail("user@example.com")

	f.repo.EXPECT().
		InsertEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *models.WaitlistEntry) error {
			state := f.form.State()
			assert.True(t, state.IsSubmitting)
			assert.Equal(t, PhaseSubmitting, state.Phase())

			var buf bytes.Buffer
			require.NoError(t, SubmitButton(state.IsSubmitting).Render(&buf))
			assert.Contains(t, buf.String(), "Joining...")
			assert.Contains(t, buf.String(), " disabled")
			return nil
		})

	f.form.Submit(context.Background())

	assert.False(t, f.form.State().IsSubmitting)
	assert.Equal(t, "Join Waitlist", ButtonLabel(f.form.State().IsSubmitting))
}

func TestSubmit_BlockedInputNeverReachesStore(t *testing.T) {
	for _, email := range []string{"", "   ", "not-an-email", "user@"} {
		t.Run(email, func(t *testing.T) {
			f := newFormFixture(t)
			f.form.SetEmail(email)

			outcome := f.form.Submit(context.Background())

			assert.Equal(t, OutcomeBlocked, outcome.Status)
			assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(outcome.Err))
			assert.Empty(t, f.feedback.Notifications())
			assert.Empty(t, f.feedback.Alerts())
			assert.False(t, f.form.State().IsSubmitting)
		})
	}
}

func TestSubmit_InsertOutlivesCancelledRequest(t *testing.T) {
	f := newFormFixture(t)
	f.form.SetEmail("user@example.com")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.repo.EXPECT().
		InsertEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *models.WaitlistEntry) error {
			assert.NoError(t, ctx.Err())
			return nil
		})

	outcome := f.form.Submit(ctx)

	assert.Equal(t, OutcomeSucceeded, outcome.Status)
}

func TestSetEmail_TrimsLikeEmailInput(t *testing.T) {
	f := newFormFixture(t)
	f.form.SetEmail("  user@example.com\n")

	assert.Equal(t, "user@example.com", f.form.State().Email)
}

func TestFailureNotification(t *testing.T) {
	n := FailureNotification(apperrors.NewInvalidRequestError("The waitlist store rejected this email.", nil))
	assert.Equal(t, "The waitlist store rejected this email.", n.Description)

	n = FailureNotification(errors.New("boom"))
	assert.Equal(t, transientFailureMessage, n.Description)
	assert.True(t, strings.EqualFold(string(n.Variant), "destructive"))
}
