package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config defines all configurable parameters for the service, sourced
// from environment variables (loaded from .env for local runs).
type Config struct {
	Port         string   `envconfig:"PORT" default:"8080"`
	DatabaseURL  string   `envconfig:"BACKEND_DB_URL" default:"sqlite://pricesense.db"`
	AllowOrigins []string `envconfig:"ALLOW_ORIGINS" default:"*"`
	Environment  string   `envconfig:"APP_ENV" default:"development"`
}

// Load reads .env if present and processes the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load() // not fatal if missing

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// IsProduction reports whether the config targets production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
