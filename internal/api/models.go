package api

import (
	"github.com/phrazzld/scry-study/internal/domain"
	"github.com/phrazzld/scry-study/internal/session"
)

// CardResponse represents a card as shown to the view.
// Answer is omitted while the card shows its question face.
type CardResponse struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}

// SessionResponse is everything a view needs to render the study screen.
type SessionResponse struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	TotalCards    int             `json:"total_cards"`
	ActiveCount   int             `json:"active_count"`
	MasteredCount int             `json:"mastered_count"`
	CurrentIndex  int             `json:"current_index"`
	Card          *CardResponse   `json:"card"`
	Flipped       bool            `json:"flipped"`
	Guess         string          `json:"guess"`
	Feedback      domain.Feedback `json:"feedback"`
	CurrentStreak int             `json:"current_streak"`
	LongestStreak int             `json:"longest_streak"`
	Mastered      []CardResponse  `json:"mastered"`
	Done          bool            `json:"done"`
	Version       uint64          `json:"version"`
}

// GuessRequest represents the request body for updating the pending guess.
type GuessRequest struct {
	Guess string `json:"guess" validate:"max=2000"`
}

// SubmitRequest represents the optional request body for submitting a guess.
// When Guess is present it replaces the pending guess before judging.
type SubmitRequest struct {
	Guess *string `json:"guess" validate:"omitempty,max=2000"`
}

// snapshotToResponse converts a session snapshot to its API representation.
func snapshotToResponse(snap session.Snapshot) SessionResponse {
	resp := SessionResponse{
		Title:         snap.Title,
		Description:   snap.Description,
		TotalCards:    snap.TotalCards(),
		ActiveCount:   len(snap.ActiveCards),
		MasteredCount: len(snap.MasteredCards),
		CurrentIndex:  snap.Index,
		Flipped:       snap.Flipped,
		Guess:         snap.Guess,
		Feedback:      snap.Feedback,
		CurrentStreak: snap.CurrentStreak,
		LongestStreak: snap.LongestStreak,
		Mastered:      make([]CardResponse, 0, len(snap.MasteredCards)),
		Done:          snap.Done(),
		Version:       snap.Version,
	}

	if snap.Current != nil {
		card := CardResponse{ID: snap.Current.ID, Question: snap.Current.Question}
		if snap.Flipped {
			card.Answer = snap.Current.Answer
		}
		resp.Card = &card
	}

	for _, c := range snap.MasteredCards {
		resp.Mastered = append(resp.Mastered, CardResponse{ID: c.ID, Question: c.Question, Answer: c.Answer})
	}

	return resp
}
