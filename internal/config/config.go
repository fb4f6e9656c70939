// Package config reads the game's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration.
type Config struct {
	// GeminiAPIKey enables the world generator. Without it the game starts
	// in the built-in or configured world.
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`

	// WorldFile is an optional YAML world to play instead of the default.
	WorldFile string `envconfig:"WORLD_FILE"`

	// RandomSeed seeds the non-player characters. 0 means derive it from the
	// clock.
	RandomSeed      uint64 `envconfig:"RANDOM_SEED" default:"0"`
	MaxTriggerDepth int    `envconfig:"MAX_TRIGGER_DEPTH" default:"16"`

	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`
	LogFile     string `envconfig:"LOG_FILE" default:"text-game.log"`
}

// GeneratorEnabled reports whether worlds can be generated.
func (c *Config) GeneratorEnabled() bool {
	return c.GeminiAPIKey != ""
}

// LoadConfig loads the configuration from environment variables, reading
// a .env file first if there is one in the working directory.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.MaxTriggerDepth <= 0 {
		return nil, fmt.Errorf("MAX_TRIGGER_DEPTH must be positive, got %d", cfg.MaxTriggerDepth)
	}
	return &cfg, nil
}
