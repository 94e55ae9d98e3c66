package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// LogHandler writes every event to a structured logger.
type LogHandler struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogHandler creates a LogHandler that logs events at the given level.
func NewLogHandler(logger *slog.Logger, level slog.Level) *LogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogHandler{
		logger: logger.With("component", "session_event_log"),
		level:  level,
	}
}

// HandleEvent implements EventHandler.
func (h *LogHandler) HandleEvent(ctx context.Context, event *SessionEvent) error {
	h.logger.LogAttrs(ctx, h.level, "session event",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.Uint64("version", event.Version),
		slog.String("payload", string(event.Payload)))
	return nil
}

// Stats is a tally of session activity since the process started.
type Stats struct {
	Submissions       int `json:"submissions"`
	CorrectAnswers    int `json:"correct_answers"`
	IncorrectAnswers  int `json:"incorrect_answers"`
	CardsMastered     int `json:"cards_mastered"`
	Shuffles          int `json:"shuffles"`
	DecksCompleted    int `json:"decks_completed"`
	Restarts          int `json:"restarts"`
	BestStreak        int `json:"best_streak"`
	NavigationActions int `json:"navigation_actions"`
}

// StatsHandler accumulates Stats from session events. Tallies survive
// session restarts.
type StatsHandler struct {
	mu    sync.Mutex
	stats Stats
}

// NewStatsHandler creates an empty StatsHandler.
func NewStatsHandler() *StatsHandler {
	return &StatsHandler{}
}

// HandleEvent implements EventHandler.
func (h *StatsHandler) HandleEvent(ctx context.Context, event *SessionEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch event.Type {
	case TypeAnswerSubmitted:
		var p AnswerPayload
		if err := event.UnmarshalPayload(&p); err != nil {
			return fmt.Errorf("decode %s payload: %w", event.Type, err)
		}
		h.stats.Submissions++
		if p.Correct {
			h.stats.CorrectAnswers++
		} else {
			h.stats.IncorrectAnswers++
		}
		h.stats.BestStreak = max(h.stats.BestStreak, p.LongestStreak)
	case TypeCardMastered:
		h.stats.CardsMastered++
	case TypeDeckShuffled:
		h.stats.Shuffles++
	case TypeDeckCompleted:
		h.stats.DecksCompleted++
	case TypeSessionRestarted:
		h.stats.Restarts++
	case TypeCardAdvanced, TypeCardRewound, TypeRandomCardSelected:
		h.stats.NavigationActions++
	}

	return nil
}

// Stats returns a copy of the current tallies.
func (h *StatsHandler) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stats
}
