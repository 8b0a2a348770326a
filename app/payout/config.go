package payout

import (
	"math"
	"time"

	"github.com/joefazee/prognos/models"
)

// Config represents the configuration for the payout module
type Config struct {
	FeeRate        float64       `env:"PAYOUT_FEE_RATE" env-default:"0.02"`
	QuickAmounts   []float64     `env:"PAYOUT_QUICK_AMOUNTS" env-default:"5,10,25,100" env-separator:","`
	OddsCacheTTL   time.Duration `env:"PAYOUT_ODDS_CACHE_TTL" env-default:"3s"`
	StreamInterval time.Duration `env:"PAYOUT_STREAM_INTERVAL" env-default:"3s"`
}

func (c *Config) Validate() error {
	type validation struct {
		ok  bool
		err error
	}

	checks := []validation{
		{c.FeeRate >= 0 && !math.IsInf(c.FeeRate, 0) && !math.IsNaN(c.FeeRate), models.ErrInvalidFeeRate},
		{len(c.QuickAmounts) > 0, models.ErrInvalidQuickAmounts},
		{c.OddsCacheTTL >= 0, models.ErrInvalidCacheTTL},
		{c.StreamInterval >= 100*time.Millisecond, models.ErrInvalidStreamInterval},
	}

	for _, v := range checks {
		if !v.ok {
			return v.err
		}
	}

	for _, amount := range c.QuickAmounts {
		if amount <= 0 {
			return models.ErrInvalidQuickAmounts
		}
	}
	return nil
}

// GetDefaultConfig returns the default payout configuration
func GetDefaultConfig() *Config {
	return &Config{
		FeeRate:        0.02,
		QuickAmounts:   []float64{5, 10, 25, 100},
		OddsCacheTTL:   3 * time.Second,
		StreamInterval: 3 * time.Second,
	}
}
