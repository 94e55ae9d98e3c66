package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/phrazzld/scry-study/internal/api/shared"
	"github.com/phrazzld/scry-study/internal/events"
	"github.com/phrazzld/scry-study/internal/platform/logger"
	"github.com/phrazzld/scry-study/internal/service/study"
	"github.com/phrazzld/scry-study/internal/session"
)

// StatsProvider reports accumulated session activity.
type StatsProvider interface {
	Stats() events.Stats
}

// SessionHandler handles study-session HTTP requests
type SessionHandler struct {
	studyService study.StudyService
	stats        StatsProvider
	logger       *slog.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(
	studyService study.StudyService,
	stats StatsProvider,
	logger *slog.Logger,
) *SessionHandler {
	if studyService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("studyService cannot be nil for SessionHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SessionHandler")
	}

	return &SessionHandler{
		studyService: studyService,
		stats:        stats,
		logger:       logger.With(slog.String("component", "session_handler")),
	}
}

// GetSession handles GET /session requests.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	snap := h.studyService.Snapshot(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, snapshotToResponse(snap))
}

// Flip handles POST /session/flip requests.
func (h *SessionHandler) Flip(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "flip", h.studyService.Flip)
}

// Next handles POST /session/next requests.
func (h *SessionHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "next", h.studyService.Next)
}

// Back handles POST /session/back requests.
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "back", h.studyService.Back)
}

// Shuffle handles POST /session/shuffle requests.
func (h *SessionHandler) Shuffle(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "shuffle", h.studyService.Shuffle)
}

// MarkMastered handles POST /session/mastered requests.
func (h *SessionHandler) MarkMastered(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "mark_mastered", h.studyService.MarkMastered)
}

// NextRandom handles POST /session/random requests.
func (h *SessionHandler) NextRandom(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "next_random", h.studyService.NextRandom)
}

// Restart handles POST /session/restart requests.
func (h *SessionHandler) Restart(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "restart", h.studyService.Restart)
}

// SetGuess handles PUT /session/guess requests.
func (h *SessionHandler) SetGuess(w http.ResponseWriter, r *http.Request) {
	var req GuessRequest
	if err := h.decode(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.apply(w, r, "set_guess", func(ctx context.Context) (session.Snapshot, error) {
		return h.studyService.SetGuess(ctx, req.Guess)
	})
}

// Submit handles POST /session/submit requests.
// The body is optional; when it carries a guess, that guess is stored and
// judged in one step, and a rejected guess is not stored.
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := h.decode(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.respondError(w, r, err)
		return
	}

	if req.Guess == nil {
		h.apply(w, r, "submit", h.studyService.Submit)
		return
	}
	h.apply(w, r, "submit", func(ctx context.Context) (session.Snapshot, error) {
		return h.studyService.SubmitGuess(ctx, *req.Guess)
	})
}

// GetStats handles GET /session/stats requests.
func (h *SessionHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	var stats events.Stats
	if h.stats != nil {
		stats = h.stats.Stats()
	}
	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}

// apply runs a session operation and writes the resulting state.
func (h *SessionHandler) apply(
	w http.ResponseWriter,
	r *http.Request,
	operation string,
	op func(ctx context.Context) (session.Snapshot, error),
) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	snap, err := op(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug("session operation applied",
		slog.String("operation", operation),
		slog.Uint64("version", snap.Version))
	shared.RespondWithJSON(w, r, http.StatusOK, snapshotToResponse(snap))
}

// decode reads and validates a JSON body. An empty body yields io.EOF
// unwrapped so callers with optional bodies can detect it.
func (h *SessionHandler) decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("%w: %v", ErrInvalidRequestBody, err)
	}
	if err := shared.ValidateRequest(v); err != nil {
		return fmt.Errorf("%w: %v", ErrRequestValidation, err)
	}
	return nil
}

func (h *SessionHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, io.EOF) {
		err = fmt.Errorf("%w: empty body", ErrInvalidRequestBody)
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
