package domain

import "fmt"

// Feedback is the result of the most recent guess submission.
type Feedback int

const (
	// FeedbackNone means no guess has been judged for the current card.
	FeedbackNone Feedback = iota
	// FeedbackCorrect means the last guess matched the answer.
	FeedbackCorrect
	// FeedbackIncorrect means the last guess did not match the answer.
	FeedbackIncorrect
)

// String returns the lowercase name of the feedback value.
func (f Feedback) String() string {
	switch f {
	case FeedbackNone:
		return "none"
	case FeedbackCorrect:
		return "correct"
	case FeedbackIncorrect:
		return "incorrect"
	default:
		return fmt.Sprintf("Feedback(%d)", int(f))
	}
}

// ParseFeedback converts a feedback name back into a Feedback.
func ParseFeedback(s string) (Feedback, error) {
	switch s {
	case "none", "":
		return FeedbackNone, nil
	case "correct":
		return FeedbackCorrect, nil
	case "incorrect":
		return FeedbackIncorrect, nil
	default:
		return FeedbackNone, fmt.Errorf("%w: %q", ErrInvalidFeedback, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Feedback) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Feedback) UnmarshalText(text []byte) error {
	parsed, err := ParseFeedback(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
