package session

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/phrazzld/scry-study/internal/domain"
	"github.com/phrazzld/scry-study/internal/domain/match"
)

// Session is the mutable state of one study session.
// It is not safe for concurrent use; callers that share a Session across
// goroutines must serialize access.
type Session struct {
	title       string
	description string

	active   []domain.Card
	mastered []domain.Card
	index    int

	flipped  bool
	guess    string
	feedback domain.Feedback

	currentStreak int
	longestStreak int

	version uint64

	rng     *rand.Rand
	matches match.Func
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithRand sets the random source used by Shuffle and NextRandom.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithSeed seeds the random source deterministically.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithMatcher replaces the answer matcher used by Submit.
func WithMatcher(fn match.Func) Option {
	return func(s *Session) {
		if fn != nil {
			s.matches = fn
		}
	}
}

// New creates a session over a copy of the deck's cards.
// A deck without cards yields a session that is already Done.
func New(deck domain.Deck, opts ...Option) *Session {
	s := &Session{
		title:       deck.Title,
		description: deck.Description,
		active:      slices.Clone(deck.Cards),
		mastered:    make([]domain.Card, 0, len(deck.Cards)),
		feedback:    domain.FeedbackNone,
		matches:     match.Matches,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return s
}

// Flip toggles whether the answer face is shown.
// Returns false when the session is Done.
func (s *Session) Flip() bool {
	if s.Done() {
		return false
	}
	s.flipped = !s.flipped
	s.touch()
	return true
}

// SetGuess replaces the pending guess text. No validation is applied.
func (s *Session) SetGuess(text string) {
	if s.guess == text {
		return
	}
	s.guess = text
	s.touch()
}

// Submit judges the pending guess against the current card's answer.
//
// A blank (whitespace-only) guess, or a Done session, leaves the state
// untouched and returns false. Otherwise feedback and streaks are updated and
// the answer face is revealed regardless of correctness.
func (s *Session) Submit() bool {
	card, ok := s.Current()
	if !ok || strings.TrimSpace(s.guess) == "" {
		return false
	}

	if s.matches(s.guess, card.Answer) {
		s.feedback = domain.FeedbackCorrect
		s.currentStreak++
		s.longestStreak = max(s.longestStreak, s.currentStreak)
	} else {
		s.feedback = domain.FeedbackIncorrect
		s.currentStreak = 0
	}

	s.flipped = true
	s.touch()
	return true
}

// GoNext moves to the following card. No-op at the last card.
func (s *Session) GoNext() bool {
	if s.index >= len(s.active)-1 {
		return false
	}
	s.index++
	s.resetCard()
	return true
}

// GoBack moves to the preceding card. No-op at the first card.
func (s *Session) GoBack() bool {
	if s.index <= 0 {
		return false
	}
	s.index--
	s.resetCard()
	return true
}

// Shuffle applies a uniform random permutation to the active cards and
// returns to the first card.
func (s *Session) Shuffle() bool {
	if s.Done() {
		return false
	}
	s.rng.Shuffle(len(s.active), func(i, j int) {
		s.active[i], s.active[j] = s.active[j], s.active[i]
	})
	s.index = 0
	s.resetCard()
	return true
}

// MarkMastered retires the current card and returns to the first remaining
// card. The position is always reset to 0, not kept near the removed card.
// Returns the retired card, or false when the session is Done.
func (s *Session) MarkMastered() (domain.Card, bool) {
	card, ok := s.Current()
	if !ok {
		return domain.Card{}, false
	}

	s.active = slices.Delete(s.active, s.index, s.index+1)
	s.mastered = append(s.mastered, card)
	s.index = 0
	s.resetCard()
	return card, true
}

// NextRandom jumps to a uniformly chosen card other than the current one.
// No-op when fewer than two cards remain.
func (s *Session) NextRandom() bool {
	next, ok := s.pickRandomOtherIndex()
	if !ok {
		return false
	}
	s.index = next
	s.resetCard()
	return true
}

// pickRandomOtherIndex draws from the n-1 indexes that are not current by
// drawing in [0, n-1) and skipping over the current index.
func (s *Session) pickRandomOtherIndex() (int, bool) {
	n := len(s.active)
	if n < 2 {
		return s.index, false
	}
	next := s.rng.IntN(n - 1)
	if next >= s.index {
		next++
	}
	return next, true
}

func (s *Session) resetCard() {
	s.flipped = false
	s.guess = ""
	s.feedback = domain.FeedbackNone
	s.touch()
}

func (s *Session) touch() {
	s.version++
}

// Current returns the card at the current position.
func (s *Session) Current() (domain.Card, bool) {
	if s.Done() {
		return domain.Card{}, false
	}
	return s.active[s.index], true
}

// Done reports whether every card has been mastered.
func (s *Session) Done() bool {
	return len(s.active) == 0
}

// Index returns the position of the current card among the active cards.
func (s *Session) Index() int { return s.index }

// Flipped reports whether the answer face is showing.
func (s *Session) Flipped() bool { return s.flipped }

// Guess returns the pending guess text.
func (s *Session) Guess() string { return s.guess }

// Feedback returns the result of the last submission on the current card.
func (s *Session) Feedback() domain.Feedback { return s.feedback }

// CurrentStreak returns the number of consecutive correct submissions.
func (s *Session) CurrentStreak() int { return s.currentStreak }

// LongestStreak returns the best streak reached in this session.
func (s *Session) LongestStreak() int { return s.longestStreak }

// Version returns a counter that increases on every state change.
func (s *Session) Version() uint64 { return s.version }

// ActiveCount returns the number of cards still in play.
func (s *Session) ActiveCount() int { return len(s.active) }

// MasteredCount returns the number of retired cards.
func (s *Session) MasteredCount() int { return len(s.mastered) }

// ActiveCards returns a copy of the cards still in play, in order.
func (s *Session) ActiveCards() []domain.Card {
	return slices.Clone(s.active)
}

// MasteredCards returns a copy of the retired cards in removal order.
func (s *Session) MasteredCards() []domain.Card {
	return slices.Clone(s.mastered)
}
