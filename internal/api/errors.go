package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/scry-study/internal/service/study"
)

// Request-level errors
var (
	// ErrInvalidRequestBody is returned when a body cannot be decoded.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrRequestValidation is returned when a decoded body fails validation.
	ErrRequestValidation = errors.New("request validation failed")
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequestBody),
		errors.Is(err, ErrRequestValidation):
		return http.StatusBadRequest

	case errors.Is(err, study.ErrEmptyGuess):
		return http.StatusUnprocessableEntity

	case errors.Is(err, study.ErrSessionComplete):
		return http.StatusConflict

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, ErrInvalidRequestBody):
		return "Invalid request format"

	case errors.Is(err, ErrRequestValidation):
		return "Invalid request data"

	case errors.Is(err, study.ErrEmptyGuess):
		return "Guess cannot be empty"

	case errors.Is(err, study.ErrSessionComplete):
		return "All cards mastered"

	default:
		return "An unexpected error occurred"
	}
}
