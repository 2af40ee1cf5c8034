// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/trivium-games/trivium/internal/models"
)

type Config struct {
	// Port the gateway listens on.
	Port string `envconfig:"TRIVIUM_PORT" default:"8080"`

	// Debug enables debug-level transition logging.
	Debug bool `envconfig:"TRIVIUM_DEBUG" default:"false"`

	// CatalogPath is the bbolt question catalogue file.
	CatalogPath string `envconfig:"TRIVIUM_CATALOG_PATH" default:"trivium.db"`

	// CacheSize bounds the catalogue query cache.
	CacheSize int `envconfig:"TRIVIUM_CACHE_SIZE" default:"256"`

	// Default session settings; the client can patch them at runtime.
	QuestionsPerGame int      `envconfig:"TRIVIUM_QUESTIONS_PER_GAME" default:"10"`
	TimePerQuestion  int      `envconfig:"TRIVIUM_TIME_PER_QUESTION" default:"30"`
	Difficulty       string   `envconfig:"TRIVIUM_DIFFICULTY" default:"mixed"`
	Categories       []string `envconfig:"TRIVIUM_CATEGORIES" default:"general,science,history,geography,entertainment,sports"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}
	return &cfg, nil
}

// DefaultSettings returns the configured starting GameSettings.
func (c *Config) DefaultSettings() models.GameSettings {
	return models.GameSettings{
		QuestionsPerGame: c.QuestionsPerGame,
		TimePerQuestion:  c.TimePerQuestion,
		Difficulty:       models.Difficulty(c.Difficulty),
		Categories:       c.Categories,
	}
}
