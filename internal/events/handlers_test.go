package events

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEvent(t *testing.T, eventType string, payload interface{}) *SessionEvent {
	t.Helper()
	event, err := NewSessionEvent(eventType, 1, payload)
	require.NoError(t, err)
	return event
}

func TestStatsHandler(t *testing.T) {
	ctx := context.Background()
	h := NewStatsHandler()

	events := []*SessionEvent{
		mustEvent(t, TypeAnswerSubmitted, AnswerPayload{CardID: 1, Correct: true, CurrentStreak: 1, LongestStreak: 1}),
		mustEvent(t, TypeAnswerSubmitted, AnswerPayload{CardID: 2, Correct: true, CurrentStreak: 2, LongestStreak: 2}),
		mustEvent(t, TypeAnswerSubmitted, AnswerPayload{CardID: 3, Correct: false, CurrentStreak: 0, LongestStreak: 2}),
		mustEvent(t, TypeCardMastered, MasteredPayload{CardID: 1, Remaining: 0}),
		mustEvent(t, TypeDeckCompleted, nil),
		mustEvent(t, TypeDeckShuffled, nil),
		mustEvent(t, TypeCardAdvanced, PositionPayload{CardID: 2, Index: 1}),
		mustEvent(t, TypeCardRewound, PositionPayload{CardID: 1, Index: 0}),
		mustEvent(t, TypeRandomCardSelected, PositionPayload{CardID: 3, Index: 2}),
		mustEvent(t, TypeSessionRestarted, nil),
		mustEvent(t, TypeCardFlipped, nil),
	}
	for _, e := range events {
		require.NoError(t, h.HandleEvent(ctx, e))
	}

	assert.Equal(t, Stats{
		Submissions:       3,
		CorrectAnswers:    2,
		IncorrectAnswers:  1,
		CardsMastered:     1,
		Shuffles:          1,
		DecksCompleted:    1,
		Restarts:          1,
		BestStreak:        2,
		NavigationActions: 3,
	}, h.Stats())
}

func TestStatsHandlerRejectsBadPayload(t *testing.T) {
	h := NewStatsHandler()
	event := &SessionEvent{Type: TypeAnswerSubmitted, Payload: json.RawMessage(`{"correct": "yes"}`)}

	err := h.HandleEvent(context.Background(), event)
	assert.Error(t, err)
	assert.Equal(t, 0, h.Stats().Submissions)
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	h := NewLogHandler(logger, slog.LevelInfo)

	event := mustEvent(t, TypeCardMastered, MasteredPayload{CardID: 4, Remaining: 2})
	require.NoError(t, h.HandleEvent(context.Background(), event))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "session event", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, TypeCardMastered, entry["event_type"])
	assert.Equal(t, "session_event_log", entry["component"])
	assert.Equal(t, event.ID.String(), entry["event_id"])
	assert.Contains(t, entry["payload"], `"card_id":4`)
}
