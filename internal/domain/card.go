package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Card-specific validation errors
var (
	// ErrCardIDInvalid is returned when a card ID is zero or negative.
	ErrCardIDInvalid = errors.New("card ID must be positive")

	// ErrCardQuestionEmpty is returned when a card has no question.
	ErrCardQuestionEmpty = errors.New("card question cannot be empty")

	// ErrCardAnswerEmpty is returned when a card has no answer.
	ErrCardAnswerEmpty = errors.New("card answer cannot be empty")
)

var validate = validator.New()

// Card is a question/answer pair. Cards are immutable once a deck is loaded;
// the ID is unique within its deck.
type Card struct {
	ID       int    `json:"id"       mapstructure:"id"       validate:"gt=0"`
	Question string `json:"question" mapstructure:"question" validate:"required"`
	Answer   string `json:"answer"   mapstructure:"answer"   validate:"required"`
}

// Validate checks if the Card has valid data.
// Returns the sentinel error for the first failing field.
func (c Card) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		switch fieldErrs[0].Field() {
		case "ID":
			return ErrCardIDInvalid
		case "Question":
			return ErrCardQuestionEmpty
		case "Answer":
			return ErrCardAnswerEmpty
		}
	}

	return fmt.Errorf("%w: %v", ErrValidation, err)
}
