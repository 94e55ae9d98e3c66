package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the study service.
const (
	TypeCardFlipped        = "card_flipped"
	TypeGuessUpdated       = "guess_updated"
	TypeAnswerSubmitted    = "answer_submitted"
	TypeCardAdvanced       = "card_advanced"
	TypeCardRewound        = "card_rewound"
	TypeDeckShuffled       = "deck_shuffled"
	TypeCardMastered       = "card_mastered"
	TypeRandomCardSelected = "random_card_selected"
	TypeDeckCompleted      = "deck_completed"
	TypeSessionRestarted   = "session_restarted"
)

// SessionEvent records a single state transition of a study session.
type SessionEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants
	Type string `json:"type"`

	// Version is the session version after the transition
	Version uint64 `json:"version"`

	// Payload contains the event-specific data serialized as JSON
	Payload json.RawMessage `json:"payload,omitempty"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// AnswerPayload is the payload of a TypeAnswerSubmitted event.
type AnswerPayload struct {
	CardID        int  `json:"card_id"`
	Correct       bool `json:"correct"`
	CurrentStreak int  `json:"current_streak"`
	LongestStreak int  `json:"longest_streak"`
}

// MasteredPayload is the payload of a TypeCardMastered event.
type MasteredPayload struct {
	CardID    int `json:"card_id"`
	Remaining int `json:"remaining"`
}

// PositionPayload is the payload of navigation events.
type PositionPayload struct {
	CardID int `json:"card_id"`
	Index  int `json:"index"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *SessionEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewSessionEvent creates a new SessionEvent with the specified type and
// payload. A nil payload produces an event without one.
func NewSessionEvent(eventType string, version uint64, payload interface{}) (*SessionEvent, error) {
	var payloadBytes json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		payloadBytes = b
	}

	return &SessionEvent{
		ID:        uuid.New(),
		Type:      eventType,
		Version:   version,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *SessionEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *SessionEvent) error
}
