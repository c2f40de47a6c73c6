// Package config loads server configuration from the environment
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/SoerenD/equipment-calculator-web/internal/errors"
)

// Config holds the server configuration. Every field comes from an
// environment variable with a sensible local-development default.
type Config struct {
	HTTPAddress string `env:"HTTP_ADDRESS" envDefault:":8080"`

	RedisAddress  string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	CatalogURL          string        `env:"CATALOG_URL"`
	CatalogFallbackFile string        `env:"CATALOG_FALLBACK_FILE" envDefault:"data/catalogs.json"`
	ResultCacheTTL      time.Duration `env:"RESULT_CACHE_TTL" envDefault:"1h"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("HTTP_ADDRESS", c.HTTPAddress, vb)
	errors.ValidateRequired("REDIS_ADDRESS", c.RedisAddress, vb)
	if c.ResultCacheTTL < 0 {
		vb.InvalidField("RESULT_CACHE_TTL", "cannot be negative")
	}

	return vb.Build()
}
