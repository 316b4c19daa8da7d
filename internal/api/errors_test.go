package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parkerross/totodo-api/internal/api/shared"
	"github.com/parkerross/totodo-api/internal/service/auth"
	"github.com/parkerross/totodo-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusBadRequest},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"duplicate uuid", store.ErrTaskUUIDExists, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"wrapped sentinel", fmt.Errorf("updating task: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"unknown error", errors.New("disk on fire"), http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"expired token", auth.ErrExpiredToken, "Token expired"},
		{"invalid credentials", auth.ErrInvalidCredentials, "Invalid email or password"},
		{"task not found", store.ErrTaskNotFound, "Task not found"},
		{"duplicate uuid", store.ErrTaskUUIDExists, "A task with that uuid already exists"},
		{"wrapped sentinel", fmt.Errorf("store: %w", store.ErrUserNotFound), "User not found"},
		{"unknown error", errors.New("pq: relation does not exist"), "An unexpected error occurred"},
		{"nil error", nil, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestGetSafeErrorMessageNeverEchoesInternals(t *testing.T) {
	t.Parallel()

	internal := errors.New(`dial tcp 10.0.0.5:5432: connect: connection refused (password=hunter2)`)
	msg := GetSafeErrorMessage(internal)
	assert.NotContains(t, msg, "10.0.0.5")
	assert.NotContains(t, msg, "hunter2")
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	t.Run("names the field and the rule", func(t *testing.T) {
		t.Parallel()

		err := shared.ValidateRequest(LoginRequest{Email: "not-an-email", Password: "pw"})
		assert.Equal(t, "Invalid Email: invalid email format", SanitizeValidationError(err))
	})

	t.Run("required field", func(t *testing.T) {
		t.Parallel()

		err := shared.ValidateRequest(CreateTaskRequest{Description: "only a description"})
		assert.Equal(t, "Invalid Task: required field", SanitizeValidationError(err))
	})

	t.Run("does not echo the submitted value", func(t *testing.T) {
		t.Parallel()

		err := shared.ValidateRequest(LoginRequest{Email: "secret-value-not-an-email", Password: "pw"})
		assert.NotContains(t, SanitizeValidationError(err), "secret-value")
	})

	t.Run("unrecognised error shape", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
	})
}
