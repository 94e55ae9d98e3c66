package study

import (
	"context"
	"errors"
	"fmt"

	"github.com/phrazzld/scry-study/internal/session"
)

// StudyService exposes the session operations to delivery mechanisms.
// Every method returns the session state after the operation; navigation at
// a boundary is a no-op, not an error.
type StudyService interface {
	// Snapshot returns the current session state without changing it.
	Snapshot(ctx context.Context) session.Snapshot

	// Flip toggles between the question and answer faces.
	Flip(ctx context.Context) (session.Snapshot, error)

	// SetGuess replaces the pending guess text.
	SetGuess(ctx context.Context, text string) (session.Snapshot, error)

	// Submit judges the pending guess against the current card.
	//
	// Returns:
	//   - ErrEmptyGuess when the pending guess is blank; state is unchanged
	//   - ErrSessionComplete when every card has been mastered
	Submit(ctx context.Context) (session.Snapshot, error)

	// SubmitGuess stores text as the pending guess and judges it, as one
	// step. Rejections leave the session untouched, including the pending
	// guess.
	//
	// Returns:
	//   - ErrEmptyGuess when text is blank
	//   - ErrSessionComplete when every card has been mastered
	SubmitGuess(ctx context.Context, text string) (session.Snapshot, error)

	// Next moves forward one card; no-op at the last card.
	Next(ctx context.Context) (session.Snapshot, error)

	// Back moves back one card; no-op at the first card.
	Back(ctx context.Context) (session.Snapshot, error)

	// Shuffle randomizes the active cards and returns to the first one.
	Shuffle(ctx context.Context) (session.Snapshot, error)

	// MarkMastered retires the current card.
	// Returns ErrSessionComplete when no card is left to retire.
	MarkMastered(ctx context.Context) (session.Snapshot, error)

	// NextRandom jumps to a random card other than the current one;
	// no-op with fewer than two cards.
	NextRandom(ctx context.Context) (session.Snapshot, error)

	// Restart discards the session and starts a fresh one from the deck.
	// Streaks and mastered cards are reset.
	Restart(ctx context.Context) (session.Snapshot, error)
}

// Common error types for StudyService
var (
	// ErrEmptyGuess indicates a submission without any guess text.
	ErrEmptyGuess = errors.New("guess cannot be empty")

	// ErrSessionComplete indicates every card has been mastered.
	ErrSessionComplete = errors.New("all cards mastered")
)

// ServiceError wraps errors from the study service with additional context.
// This allows consumers to differentiate between different types of service errors
// using errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "submit", "mark_mastered")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError returns a new ServiceError for the given operation.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
