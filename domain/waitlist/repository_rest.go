package waitlist

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/akeren/saascribe/internal/models"
	"github.com/akeren/saascribe/pkg/constants"
	apperrors "github.com/akeren/saascribe/pkg/errors"
	"github.com/go-resty/resty/v2"
)

// recordStoreError is the error body of a PostgREST-compatible API.
type recordStoreError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`

	status int
}

// Error returns the store's message as sent.
func (e *recordStoreError) Error() string {
	if msg := strings.TrimSpace(e.Message); msg != "" {
		return msg
	}
	return fmt.Sprintf("record store responded %d", e.status)
}

type recordStoreInsert struct {
	Email string `json:"email"`
}

type restWaitlistRepository struct {
	client *resty.Client
}

// NewRESTWaitlistRepository writes to POST /rest/v1/users on the client's base URL.
func NewRESTWaitlistRepository(client *resty.Client) WaitlistRepository {
	return &restWaitlistRepository{client: client}
}

func (r *restWaitlistRepository) InsertEntry(ctx context.Context, entry *models.WaitlistEntry) error {
	if entry == nil {
		return apperrors.NewInvalidRequestError("entry cannot be nil", nil)
	}

	var apiErr recordStoreError
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=minimal").
		SetBody(recordStoreInsert{Email: entry.Email}).
		SetError(&apiErr).
		Post("/rest/v1/" + constants.WaitlistCollection)
	if err != nil {
		return apperrors.NewServiceUnavailableError("waitlist store is unreachable", err)
	}

	if !resp.IsError() {
		return nil
	}

	return classifyRecordStoreError(resp.StatusCode(), &apiErr)
}

// classifyRecordStoreError keeps the store's own message as the toast for
// rejections the visitor can act on. The body itself is always the cause.
func classifyRecordStoreError(status int, apiErr *recordStoreError) error {
	apiErr.status = status
	message := strings.TrimSpace(apiErr.Message)
	cause := apiErr

	switch {
	case status == http.StatusConflict || apiErr.Code == "23505":
		return apperrors.NewConflictError(orDefault(message, duplicateEmailMessage), cause)
	case status >= http.StatusInternalServerError:
		return apperrors.NewServiceUnavailableError("waitlist store is unavailable", cause)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return apperrors.NewInternalServerError("waitlist store refused our credentials", cause)
	case status == http.StatusRequestTimeout:
		return apperrors.NewRequestTimeoutError("waitlist store timed out", cause)
	default:
		return apperrors.NewInvalidRequestError(orDefault(message, "The waitlist store rejected this email."), cause)
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
