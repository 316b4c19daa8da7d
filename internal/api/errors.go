package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/parkerross/totodo-api/internal/service/auth"
	"github.com/parkerross/totodo-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. Handlers
// route fallthrough errors through it and then tighten the result where the
// endpoint contract differs (registration collapsing duplicates into a
// generic failure, task writes reading as bad requests).
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for an
// internal error. Raw error strings never reach the client.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid email or password"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrTaskUUIDExists):
		return "A task with that uuid already exists"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid task data"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns a validator error into a short user-facing
// message naming the offending field without echoing the submitted value.
func SanitizeValidationError(err error) string {
	msg := err.Error()

	// validator messages look like:
	// "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
	if strings.Contains(msg, "Field validation") {
		parts := strings.Split(msg, "'")
		if len(parts) >= 6 {
			field := parts[3]
			tag := parts[5]
			return "Invalid " + field + ": " + validationTagMessage(tag)
		}
	}

	return "Validation error"
}

// validationTagMessage maps validation tags to user-friendly fragments.
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
