package session

import (
	"slices"

	"github.com/phrazzld/scry-study/internal/domain"
)

// Snapshot is an immutable copy of a Session's observable state.
type Snapshot struct {
	Title         string
	Description   string
	Current       *domain.Card
	Index         int
	ActiveCards   []domain.Card
	MasteredCards []domain.Card
	Flipped       bool
	Guess         string
	Feedback      domain.Feedback
	CurrentStreak int
	LongestStreak int
	Version       uint64
}

// Snapshot copies the session's current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Title:         s.title,
		Description:   s.description,
		Index:         s.index,
		ActiveCards:   slices.Clone(s.active),
		MasteredCards: slices.Clone(s.mastered),
		Flipped:       s.flipped,
		Guess:         s.guess,
		Feedback:      s.feedback,
		CurrentStreak: s.currentStreak,
		LongestStreak: s.longestStreak,
		Version:       s.version,
	}
	if card, ok := s.Current(); ok {
		snap.Current = &card
	}
	return snap
}

// Done reports whether the snapshot was taken after the deck was completed.
func (s Snapshot) Done() bool {
	return len(s.ActiveCards) == 0
}

// TotalCards returns the number of cards the session started with.
func (s Snapshot) TotalCards() int {
	return len(s.ActiveCards) + len(s.MasteredCards)
}
