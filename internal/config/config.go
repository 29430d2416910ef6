// Package config loads bot configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/rollkeeper/roll-api/internal/errors"
)

// Config holds everything the bot needs to start
type Config struct {
	// DiscordToken authenticates the serve command against Discord
	DiscordToken string `env:"DISCORD_TOKEN"`

	// RedisAddress is the endpoint for game state storage
	RedisAddress string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`

	// DefaultGame, when set, is loaded on startup so players can roll
	// without issuing !load first
	DefaultGame string `env:"DEFAULT_GAME"`
}

// Load parses configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return &cfg, nil
}
