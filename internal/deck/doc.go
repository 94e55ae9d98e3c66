// Package deck loads the card deck a study session is built from.
//
// Decks are read once at startup, either from a file in any format viper
// understands (YAML, JSON, TOML) or from the built-in coffee deck, and are
// validated before use. Nothing is ever written back.
package deck
