package wizard

import (
	"time"

	"github.com/joefazee/prognos/models"
)

// Config represents the configuration for the market creation wizard
type Config struct {
	SubmitTimeout          time.Duration `env:"WIZARD_SUBMIT_TIMEOUT" env-default:"30s"`
	DraftTTL               time.Duration `env:"WIZARD_DRAFT_TTL" env-default:"168h"`
	SessionTTL             time.Duration `env:"WIZARD_SESSION_TTL" env-default:"1h"`
	ValidateAllOnSubmit    bool          `env:"WIZARD_VALIDATE_ALL_ON_SUBMIT" env-default:"true"`
	RequireFutureCloseDate bool          `env:"WIZARD_REQUIRE_FUTURE_CLOSE_DATE" env-default:"false"`
}

func (c *Config) Validate() error {
	switch {
	case c.SubmitTimeout <= 0:
		return models.ErrInvalidSubmitTimeout
	case c.DraftTTL < 0:
		return models.ErrInvalidDraftTTL
	case c.SessionTTL <= 0:
		return models.ErrInvalidSessionTTL
	}
	return nil
}

// Rules derives the validation rules from the configuration
func (c *Config) Rules() Rules {
	return Rules{RequireFutureCloseDate: c.RequireFutureCloseDate}
}

// GetDefaultConfig returns the default wizard configuration
func GetDefaultConfig() *Config {
	return &Config{
		SubmitTimeout:       30 * time.Second,
		DraftTTL:            7 * 24 * time.Hour,
		SessionTTL:          time.Hour,
		ValidateAllOnSubmit: true,
	}
}
