package app

import (
	"time"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/joefazee/prognos/app/database"
	"github.com/joefazee/prognos/app/markets"
	"github.com/joefazee/prognos/app/payout"
	"github.com/joefazee/prognos/app/wizard"
	"github.com/joefazee/prognos/internal/cache"
	"github.com/joefazee/prognos/internal/nexus"
	"github.com/joefazee/prognos/models"
)

// SecurityConfig holds the key used to seal wizard session tokens.
type SecurityConfig struct {
	SessionTokenKey string        `env:"SESSION_TOKEN_KEY"`
	SessionTokenTTL time.Duration `env:"SESSION_TOKEN_TTL" env-default:"1h"`
}

func (c *SecurityConfig) Validate() error {
	if len(c.SessionTokenKey) != chacha20poly1305.KeySize {
		return models.ErrInvalidTokenKey
	}
	return nil
}

type Config struct {
	DB       database.Config
	Cache    cache.Config
	Security SecurityConfig
	Payout   payout.Config
	Markets  markets.Config
	Wizard   wizard.Config

	AppHost  string `env:"APP_HOST" env-default:"localhost"`
	AppPort  string `env:"APP_PORT" env-default:"8080"`
	Env      string `env:"APP_ENV" env-default:"development" validate:"oneof=development staging production test"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

// Validate runs every module's own checks in turn.
func (c *Config) Validate() error {
	checks := []interface{ Validate() error }{
		&c.DB,
		&c.Security,
		&c.Payout,
		&c.Markets,
		&c.Wizard,
	}
	for _, check := range checks {
		if err := check.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig() (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader().Load(c)
	return c, err
}
