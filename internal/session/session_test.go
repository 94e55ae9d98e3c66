package session

import (
	"fmt"
	"testing"

	"github.com/phrazzld/scry-study/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const espressoAnswer = "A concentrated coffee brewed by forcing hot water through finely-ground coffee."

func testDeck(n int) domain.Deck {
	cards := make([]domain.Card, n)
	for i := range cards {
		cards[i] = domain.Card{
			ID:       i + 1,
			Question: fmt.Sprintf("Question %d?", i+1),
			Answer:   fmt.Sprintf("answer number %d", i+1),
		}
	}
	return domain.Deck{Title: "Test Deck", Description: "For tests.", Cards: cards}
}

func coffeeDeck() domain.Deck {
	return domain.Deck{
		Title: "Coffee Flashcards",
		Cards: []domain.Card{
			{ID: 1, Question: "What is espresso?", Answer: espressoAnswer},
			{ID: 2, Question: "Name a brewing method.", Answer: "Espresso"},
		},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	deck := testDeck(3)
	s := New(deck, WithSeed(1))

	card, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, 1, card.ID)
	assert.Equal(t, 0, s.Index())
	assert.False(t, s.Flipped())
	assert.Empty(t, s.Guess())
	assert.Equal(t, domain.FeedbackNone, s.Feedback())
	assert.Equal(t, 3, s.ActiveCount())
	assert.Equal(t, 0, s.MasteredCount())
	assert.False(t, s.Done())

	// The session must not alias the deck's backing array.
	s.Shuffle()
	s.MarkMastered()
	assert.Equal(t, testDeck(3).Cards, deck.Cards)
}

func TestNewEmptyDeckIsDone(t *testing.T) {
	t.Parallel()

	s := New(domain.Deck{Title: "empty"})
	assert.True(t, s.Done())
	_, ok := s.Current()
	assert.False(t, ok)

	before := s.Snapshot()
	assert.False(t, s.Flip())
	s.SetGuess("x")
	assert.False(t, s.Submit())
	assert.False(t, s.GoNext())
	assert.False(t, s.GoBack())
	assert.False(t, s.Shuffle())
	_, mastered := s.MarkMastered()
	assert.False(t, mastered)
	assert.False(t, s.NextRandom())
	assert.True(t, s.Done())
	assert.Equal(t, before.ActiveCards, s.Snapshot().ActiveCards)
}

func TestFlip(t *testing.T) {
	t.Parallel()

	s := New(testDeck(2))
	require.True(t, s.Flip())
	assert.True(t, s.Flipped())
	require.True(t, s.Flip())
	assert.False(t, s.Flipped())
}

func TestSubmitBlankGuessIsNoop(t *testing.T) {
	t.Parallel()

	for _, guess := range []string{"", "   ", "\t\n"} {
		s := New(testDeck(2))
		s.SetGuess(guess)
		before := s.Snapshot()

		assert.False(t, s.Submit(), "guess %q", guess)
		assert.Equal(t, before, s.Snapshot(), "guess %q", guess)
	}
}

func TestSubmitCorrectIncrementsStreak(t *testing.T) {
	t.Parallel()

	s := New(coffeeDeck())
	s.currentStreak = 2
	s.longestStreak = 2

	s.SetGuess("Concentrated coffee")
	require.True(t, s.Submit())

	assert.Equal(t, domain.FeedbackCorrect, s.Feedback())
	assert.Equal(t, 3, s.CurrentStreak())
	assert.Equal(t, 3, s.LongestStreak())
	assert.True(t, s.Flipped())
}

func TestSubmitCorrectKeepsHigherLongestStreak(t *testing.T) {
	t.Parallel()

	s := New(coffeeDeck())
	s.currentStreak = 2
	s.longestStreak = 7

	s.SetGuess("espresso")
	s.GoNext()
	s.SetGuess("espresso!")
	require.True(t, s.Submit())

	assert.Equal(t, 3, s.CurrentStreak())
	assert.Equal(t, 7, s.LongestStreak())
}

func TestSubmitIncorrectResetsStreak(t *testing.T) {
	t.Parallel()

	s := New(coffeeDeck())
	s.currentStreak = 5
	s.longestStreak = 5

	s.SetGuess("ESPRESSO.")
	require.True(t, s.Submit())

	assert.Equal(t, domain.FeedbackIncorrect, s.Feedback())
	assert.Equal(t, 0, s.CurrentStreak())
	assert.Equal(t, 5, s.LongestStreak())
	assert.True(t, s.Flipped(), "answer is revealed even when wrong")
}

func TestSubmitRevealsWhenAlreadyFlipped(t *testing.T) {
	t.Parallel()

	s := New(coffeeDeck())
	s.Flip()
	s.SetGuess("nope")
	require.True(t, s.Submit())
	assert.True(t, s.Flipped())
}

func TestSubmitUsesInjectedMatcher(t *testing.T) {
	t.Parallel()

	var gotGuess, gotAnswer string
	s := New(coffeeDeck(), WithMatcher(func(guess, answer string) bool {
		gotGuess, gotAnswer = guess, answer
		return true
	}))

	s.SetGuess("anything")
	require.True(t, s.Submit())
	assert.Equal(t, "anything", gotGuess)
	assert.Equal(t, espressoAnswer, gotAnswer)
	assert.Equal(t, domain.FeedbackCorrect, s.Feedback())
}

func TestNavigation(t *testing.T) {
	t.Parallel()

	s := New(testDeck(3))

	assert.False(t, s.GoBack(), "GoBack at first card is a no-op")
	assert.Equal(t, 0, s.Index())

	s.Flip()
	s.SetGuess("answer number 1")
	s.Submit()
	require.True(t, s.GoNext())
	assert.Equal(t, 1, s.Index())
	assert.False(t, s.Flipped())
	assert.Empty(t, s.Guess())
	assert.Equal(t, domain.FeedbackNone, s.Feedback())
	assert.Equal(t, 1, s.CurrentStreak(), "navigation keeps streaks")

	require.True(t, s.GoNext())
	assert.Equal(t, 2, s.Index())

	s.SetGuess("pending")
	before := s.Snapshot()
	assert.False(t, s.GoNext(), "GoNext at last card is a no-op")
	assert.Equal(t, before, s.Snapshot())

	require.True(t, s.GoBack())
	assert.Equal(t, 1, s.Index())
	assert.Empty(t, s.Guess())
}

func TestShufflePreservesCards(t *testing.T) {
	t.Parallel()

	deck := testDeck(10)
	s := New(deck, WithSeed(42))
	s.GoNext()
	s.GoNext()
	s.Flip()

	require.True(t, s.Shuffle())

	assert.Equal(t, 0, s.Index())
	assert.False(t, s.Flipped())
	assert.ElementsMatch(t, deck.Cards, s.ActiveCards())
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	a := New(testDeck(20), WithSeed(7))
	b := New(testDeck(20), WithSeed(7))
	a.Shuffle()
	b.Shuffle()
	assert.Equal(t, a.ActiveCards(), b.ActiveCards())
}

func TestShuffleIsRoughlyUniform(t *testing.T) {
	t.Parallel()

	const trials = 6000
	s := New(testDeck(3), WithSeed(99))
	firstCounts := map[int]int{}
	for range trials {
		s.Shuffle()
		card, _ := s.Current()
		firstCounts[card.ID]++
	}

	for id := 1; id <= 3; id++ {
		// Expected 2000 each; allow a generous band.
		assert.InDelta(t, trials/3, firstCounts[id], 300, "card %d", id)
	}
}

func TestMarkMastered(t *testing.T) {
	t.Parallel()

	s := New(testDeck(4))
	s.GoNext()
	s.GoNext()
	s.Flip()
	s.SetGuess("x")

	card, ok := s.MarkMastered()
	require.True(t, ok)
	assert.Equal(t, 3, card.ID)
	assert.Equal(t, 3, s.ActiveCount())
	assert.Equal(t, []domain.Card{card}, s.MasteredCards())
	// Position returns to the first remaining card rather than staying near
	// the removed one.
	assert.Equal(t, 0, s.Index())
	assert.False(t, s.Flipped())
	assert.Empty(t, s.Guess())
	assert.NotContains(t, s.ActiveCards(), card)
}

func TestMarkMasteredDrainsDeckInRemovalOrder(t *testing.T) {
	t.Parallel()

	s := New(testDeck(5), WithSeed(3))
	s.Shuffle()
	order := s.ActiveCards()

	for i := 0; i < 5; i++ {
		_, ok := s.MarkMastered()
		require.True(t, ok)
	}

	assert.True(t, s.Done())
	assert.Empty(t, s.ActiveCards())
	assert.Equal(t, order, s.MasteredCards())

	_, ok := s.MarkMastered()
	assert.False(t, ok, "Done is terminal")
	assert.Len(t, s.MasteredCards(), 5)
}

func TestNextRandom(t *testing.T) {
	t.Parallel()

	s := New(testDeck(4), WithSeed(11))
	for range 200 {
		prev := s.Index()
		s.Flip()
		require.True(t, s.NextRandom())
		assert.NotEqual(t, prev, s.Index())
		assert.GreaterOrEqual(t, s.Index(), 0)
		assert.Less(t, s.Index(), 4)
		assert.False(t, s.Flipped())
	}
}

func TestNextRandomSingleCardIsNoop(t *testing.T) {
	t.Parallel()

	s := New(testDeck(1))
	s.Flip()
	before := s.Snapshot()
	assert.False(t, s.NextRandom())
	assert.Equal(t, before, s.Snapshot())
}

func TestNextRandomReachesEveryOtherCard(t *testing.T) {
	t.Parallel()

	s := New(testDeck(4), WithSeed(5))
	s.GoNext()
	seen := map[int]bool{}
	for range 400 {
		idx, ok := s.pickRandomOtherIndex()
		require.True(t, ok)
		seen[idx] = true
	}
	assert.Equal(t, map[int]bool{0: true, 2: true, 3: true}, seen)
}

func TestVersionTracksChanges(t *testing.T) {
	t.Parallel()

	s := New(testDeck(2))
	v0 := s.Version()

	s.GoBack()
	assert.Equal(t, v0, s.Version(), "no-op must not bump version")

	s.SetGuess("a")
	v1 := s.Version()
	assert.Greater(t, v1, v0)

	s.SetGuess("a")
	assert.Equal(t, v1, s.Version(), "same guess is not a change")

	s.Flip()
	assert.Greater(t, s.Version(), v1)
}

func TestSnapshotIsIndependent(t *testing.T) {
	t.Parallel()

	s := New(testDeck(3))
	snap := s.Snapshot()
	require.NotNil(t, snap.Current)
	assert.Equal(t, "Test Deck", snap.Title)
	assert.Equal(t, 3, snap.TotalCards())

	s.MarkMastered()
	assert.Len(t, snap.ActiveCards, 3)
	assert.Empty(t, snap.MasteredCards)
	assert.Equal(t, 1, snap.Current.ID)

	after := s.Snapshot()
	assert.Equal(t, 3, after.TotalCards())
	assert.False(t, after.Done())
}

func TestEndToEndEspressoGuess(t *testing.T) {
	t.Parallel()

	s := New(coffeeDeck())
	s.SetGuess("concentrated coffee")
	s.Submit()
	require.Equal(t, 1, s.CurrentStreak())

	s.GoNext()
	s.GoBack()
	s.SetGuess("ESPRESSO.")
	s.Submit()

	assert.Equal(t, domain.FeedbackIncorrect, s.Feedback())
	assert.Equal(t, 0, s.CurrentStreak())
	assert.Equal(t, 1, s.LongestStreak())
}
