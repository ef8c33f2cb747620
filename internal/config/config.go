package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr                string        `env:"HTTP_ADDR" env-default:":8080" env-description:"listen address"`
	DBConnString            string        `env:"DB_DSN" env-description:"Postgres DSN for the lead store; empty disables it"`
	ShutdownTimeout         time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	LogLevel                string        `env:"LOG_LEVEL" env-default:"info"`
	LogDevelopment          bool          `env:"LOG_DEVELOPMENT" env-default:"false"`
	CORSAllowedOrigins      []string      `env:"CORS_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
	ContactStrictValidation bool          `env:"CONTACT_STRICT_VALIDATION" env-default:"false"`
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}

// StoreEnabled reports whether accepted submissions should be persisted.
func (c Config) StoreEnabled() bool {
	return c.DBConnString != ""
}

// Usage describes the recognised environment variables.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
