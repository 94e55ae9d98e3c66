package domain

import (
	"errors"
	"fmt"
)

// Deck-specific validation errors
var (
	// ErrDeckTitleEmpty is returned when a deck has no title.
	ErrDeckTitleEmpty = errors.New("deck title cannot be empty")

	// ErrDeckEmpty is returned when a deck has no cards.
	ErrDeckEmpty = errors.New("deck must contain at least one card")

	// ErrDuplicateCardID is returned when two cards in a deck share an ID.
	ErrDuplicateCardID = errors.New("duplicate card ID in deck")
)

// Deck is an ordered collection of cards fixed at load time, plus the
// metadata a view shows alongside them.
type Deck struct {
	Title       string `json:"title"       mapstructure:"title"       validate:"required"`
	Description string `json:"description" mapstructure:"description"`
	Cards       []Card `json:"cards"       mapstructure:"cards"       validate:"-"`
}

// Validate checks the deck metadata, every card, and card ID uniqueness.
func (d Deck) Validate() error {
	if err := validate.Struct(d); err != nil {
		return ErrDeckTitleEmpty
	}

	if len(d.Cards) == 0 {
		return ErrDeckEmpty
	}

	seen := make(map[int]struct{}, len(d.Cards))
	for i, card := range d.Cards {
		if err := card.Validate(); err != nil {
			return fmt.Errorf("card at position %d: %w", i, err)
		}
		if _, dup := seen[card.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateCardID, card.ID)
		}
		seen[card.ID] = struct{}{}
	}

	return nil
}

// Len returns the number of cards in the deck.
func (d Deck) Len() int {
	return len(d.Cards)
}
