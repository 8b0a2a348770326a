package markets

import (
	"github.com/joefazee/prognos/models"
)

// Config represents the configuration for the markets module
type Config struct {
	DefaultPageSize int     `env:"MARKETS_DEFAULT_PAGE_SIZE" env-default:"20"`
	MaxPageSize     int     `env:"MARKETS_MAX_PAGE_SIZE" env-default:"100"`
	InitialOdds     float64 `env:"MARKETS_INITIAL_ODDS" env-default:"50"`
}

// Validate validates the market configuration
func (c *Config) Validate() error {
	if c.DefaultPageSize <= 0 || c.MaxPageSize < c.DefaultPageSize {
		return models.ErrInvalidPageSize
	}

	if c.InitialOdds <= 0 || c.InitialOdds >= 100 {
		return models.ErrInvalidInitialOdds
	}

	return nil
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		DefaultPageSize: 20,
		MaxPageSize:     100,
		InitialOdds:     50, // even money on both sides
	}
}
