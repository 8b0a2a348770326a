package payout

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joefazee/prognos/models"
)

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, GetDefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"negative fee", func(c *Config) { c.FeeRate = -0.1 }, models.ErrInvalidFeeRate},
		{"NaN fee", func(c *Config) { c.FeeRate = math.NaN() }, models.ErrInvalidFeeRate},
		{"no quick amounts", func(c *Config) { c.QuickAmounts = nil }, models.ErrInvalidQuickAmounts},
		{"zero quick amount", func(c *Config) { c.QuickAmounts = []float64{5, 0} }, models.ErrInvalidQuickAmounts},
		{"negative ttl", func(c *Config) { c.OddsCacheTTL = -time.Second }, models.ErrInvalidCacheTTL},
		{"fast stream", func(c *Config) { c.StreamInterval = time.Millisecond }, models.ErrInvalidStreamInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := GetDefaultConfig()
			tt.mutate(c)
			assert.ErrorIs(t, c.Validate(), tt.want)
		})
	}
}
