package waitlist

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akeren/saascribe/config/router"
	"github.com/akeren/saascribe/internal/log"
	apperrors "github.com/akeren/saascribe/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func setupWaitlistRouter(t *testing.T) (*router.RouterService, *MockWaitlistService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := NewMockWaitlistService(ctrl)
	logger := log.NewLoggerWithJSONOutput()

	rs := router.CreateRouterService(logger, &router.RouterConfig{RequestTimeout: 5 * time.Second})
	rs.MountController(NewWaitlistController(service, logger))

	return rs, service
}

func postJSON(t *testing.T, rs *router.RouterService, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, APIEndpoint, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestJoinWaitlist_Created(t *testing.T) {
	rs, service := setupWaitlistRouter(t)
	service.EXPECT().AddEntry(gomock.Any(), "user@example.com").Return(nil).Times(1)

	w, env := postJSON(t, rs, `{"email":"user@example.com"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp JoinWaitlistResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "", resp.Email)
	assert.Equal(t, PhaseIdle, resp.State)
	assert.Equal(t, []Notification{SuccessNotification}, resp.Notifications)
	assert.Empty(t, resp.Alert)
}

func TestJoinWaitlist_TrimsEmailBeforeValidation(t *testing.T) {
	rs, service := setupWaitlistRouter(t)
	service.EXPECT().AddEntry(gomock.Any(), "user@example.com").Return(nil).Times(1)

	w, env := postJSON(t, rs, `{"email":"  user@example.com \n"}`)

	require.Equal(t, http.StatusCreated, w.Code, env.Message)

	var resp JoinWaitlistResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, []Notification{SuccessNotification}, resp.Notifications)
}

func TestJoinWaitlist_WhitespaceOnlyIsRejected(t *testing.T) {
	rs, _ := setupWaitlistRouter(t)

	w, _ := postJSON(t, rs, `{"email":"   "}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJoinWaitlist_Duplicate(t *testing.T) {
	rs, service := setupWaitlistRouter(t)
	service.EXPECT().
		AddEntry(gomock.Any(), "user@example.com").
		Return(apperrors.NewConflictError(duplicateEmailMessage, nil))

	w, env := postJSON(t, rs, `{"email":"user@example.com"}`)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, duplicateEmailMessage, env.Message)

	var resp JoinWaitlistResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "user@example.com", resp.Email)
	assert.Equal(t, duplicateEmailMessage, resp.Alert)
	assert.False(t, resp.Retryable)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, VariantDestructive, resp.Notifications[0].Variant)
}

func TestJoinWaitlist_StoreUnavailable(t *testing.T) {
	rs, service := setupWaitlistRouter(t)
	service.EXPECT().
		AddEntry(gomock.Any(), gomock.Any()).
		Return(apperrors.NewServiceUnavailableError("waitlist store is unavailable", nil))

	w, env := postJSON(t, rs, `{"email":"user@example.com"}`)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp JoinWaitlistResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.True(t, resp.Retryable)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "Something went wrong. Please try again.", resp.Notifications[0].Description)
}

func TestJoinWaitlist_InvalidPayloadNeverInserts(t *testing.T) {
	rs, _ := setupWaitlistRouter(t)

	for _, body := range []string{`{}`, `{"email":""}`, `{"email":"nope"}`, `not json`} {
		t.Run(body, func(t *testing.T) {
			w, _ := postJSON(t, rs, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestJoinWaitlist_ValidationErrorsNameTheField(t *testing.T) {
	rs, _ := setupWaitlistRouter(t)

	_, env := postJSON(t, rs, `{"email":"nope"}`)

	var fields []apperrors.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	require.Len(t, fields, 1)
	assert.Equal(t, "email", fields[0].Field)
	assert.Equal(t, "Invalid email format", fields[0].Message)
}
