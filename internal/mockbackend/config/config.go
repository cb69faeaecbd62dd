// Package config loads the mock backend's settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains mock backend parameters.
type Config struct {
	Addr     string `env:"ADDR" envDefault:"localhost:3000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	JWT      JWT    `envPrefix:"JWT_"`
	// BcryptCost is lowered in tests to keep them fast.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
}

// JWT contains credential signing parameters.
type JWT struct {
	Secret string        `env:"SECRET" envDefault:"devsecret"`
	TTL    time.Duration `env:"TTL" envDefault:"24h"`
}

// NewConfig loads configuration from MOCK_* environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "MOCK_"}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
