package deck

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/phrazzld/scry-study/internal/domain"
	"github.com/spf13/viper"
)

// Loader errors
var (
	// ErrDeckRead is returned when a deck source cannot be read or parsed.
	ErrDeckRead = errors.New("failed to read deck")

	// ErrDeckInvalid is returned when a deck parses but fails validation.
	ErrDeckInvalid = errors.New("invalid deck")
)

//go:embed coffee.yaml
var coffeeDeck []byte

// Default returns the built-in coffee deck.
func Default() (domain.Deck, error) {
	return Parse(bytes.NewReader(coffeeDeck), "yaml")
}

// Load reads and validates the deck stored at path. The format is taken
// from the file extension.
func Load(path string) (domain.Deck, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return domain.Deck{}, fmt.Errorf("%w: %s: %v", ErrDeckRead, path, err)
	}
	return decode(v)
}

// Parse reads a deck of the given format ("yaml", "json", "toml", ...) from r.
func Parse(r io.Reader, format string) (domain.Deck, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return domain.Deck{}, fmt.Errorf("%w: %v", ErrDeckRead, err)
	}
	return decode(v)
}

// FromPath returns the deck at path, or the built-in deck when path is empty.
func FromPath(path string) (domain.Deck, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

func decode(v *viper.Viper) (domain.Deck, error) {
	var d domain.Deck
	if err := v.Unmarshal(&d); err != nil {
		return domain.Deck{}, fmt.Errorf("%w: %v", ErrDeckRead, err)
	}
	if err := d.Validate(); err != nil {
		return domain.Deck{}, fmt.Errorf("%w: %w", ErrDeckInvalid, err)
	}
	return d, nil
}
