package service

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the service settings, loaded from environment variables.
type Config struct {
	Port            int           `env:"PORT" envDefault:"8080"`
	DBPath          string        `env:"DB_PATH" envDefault:"data/blog.db"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"public"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
