package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/livinggrainco/site/internal/wizard"
)

// Session backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

type Config struct {
	HTTPAddr       string             `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel       slog.Level         `env:"LOG_LEVEL" envDefault:"INFO"`
	SessionBackend string             `env:"SESSION_BACKEND" envDefault:"memory"`
	SessionTTL     time.Duration      `env:"SESSION_TTL" envDefault:"2h"`
	DBPath         string             `env:"DB_PATH" envDefault:"data/sessions.db"`
	RedisURL       string             `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	CookieSecure   bool               `env:"COOKIE_SECURE" envDefault:"false"`
	AssetsDir      string             `env:"ASSETS_DIR" envDefault:"web/assets"`
	CORSOrigins    []string           `env:"CORS_ORIGINS" envSeparator:","`
	StaleFields    wizard.StalePolicy `env:"WIZARD_STALE_FIELDS" envDefault:"keep"`
	ContactEmail   string             `env:"CONTACT_EMAIL"`
	ContactPhone   string             `env:"CONTACT_PHONE"`
	BookingURL     string             `env:"BOOKING_URL"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.SessionBackend {
	case BackendMemory, BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("SESSION_BACKEND must be memory, sqlite or redis, got %q", c.SessionBackend)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}
