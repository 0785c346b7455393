package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"conflict", NewConflictError("dup", nil), StatusConflict},
		{"invalid", NewInvalidRequestError("bad", nil), StatusBadRequest},
		{"unavailable", NewServiceUnavailableError("down", nil), StatusServiceUnavailable},
		{"database", NewDatabaseError("db", nil), StatusInternalServerError},
		{"wrapped conflict", fmt.Errorf("insert: %w", NewConflictError("dup", nil)), StatusConflict},
		{"deadline", context.DeadlineExceeded, StatusRequestTimeout},
		{"plain", errors.New("boom"), StatusInternalServerError},
		{"nil", nil, StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatusCode(tc.err))
		})
	}
}

func TestIsRetryable_SeparatesTerminalFromTransient(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(NewConflictError("dup", nil)))
	assert.False(t, IsRetryable(NewInvalidRequestError("bad", nil)))

	assert.True(t, IsRetryable(NewServiceUnavailableError("down", nil)))
	assert.True(t, IsRetryable(NewDatabaseError("db", nil)))
	assert.True(t, IsRetryable(context.DeadlineExceeded))
	assert.True(t, IsRetryable(errors.New("connection reset by peer")))
}

func TestGetHumanReadableMessage_HidesRawErrors(t *testing.T) {
	assert.Equal(t, "dup", GetHumanReadableMessage(NewConflictError("dup", errors.New("pq: raw"))))
	assert.Equal(t, "An unexpected error occurred", GetHumanReadableMessage(errors.New("pq: raw")))
	assert.Equal(t, "An unexpected error occurred", GetHumanReadableMessage(nil))
}

func TestIsDuplicateKeyError(t *testing.T) {
	assert.True(t, IsDuplicateKeyError(errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`)))
	assert.True(t, IsDuplicateKeyError(errors.New("UNIQUE constraint failed: users.email")))
	assert.True(t, IsDuplicateKeyError(NewConflictError("dup", nil)))
	assert.False(t, IsDuplicateKeyError(errors.New("connection refused")))
	assert.False(t, IsDuplicateKeyError(nil))
}
