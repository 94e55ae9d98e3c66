package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Deck    DeckConfig    `mapstructure:"deck"`
	Session SessionConfig `mapstructure:"session"`
	CORS    CORSConfig    `mapstructure:"cors"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DeckConfig selects the deck a session is built from.
// An empty Path means the built-in deck.
type DeckConfig struct {
	Path string `mapstructure:"path" validate:"omitempty,file"`
}

// SessionConfig controls how a new session is prepared.
type SessionConfig struct {
	ShuffleOnStart bool `mapstructure:"shuffle_on_start"`
	// Seed fixes the shuffle order; 0 picks a random seed.
	Seed uint64 `mapstructure:"seed"`
}

// CORSConfig lists the origins a browser view may call the API from.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1,dive,required"`
}
