package markets

import (
	"context"
	"fmt"

	"github.com/joefazee/prognos/internal/logger"
	"github.com/joefazee/prognos/internal/sanitizer"
	"github.com/joefazee/prognos/models"
)

// Submitter turns a completed wizard draft into a persisted, open market.
type Submitter struct {
	repo      Repository
	sanitizer sanitizer.HTMLStripperer
	config    *Config
	log       logger.Logger
}

func NewSubmitter(repo Repository, stripper sanitizer.HTMLStripperer, config *Config, log logger.Logger) *Submitter {
	return &Submitter{
		repo:      repo,
		sanitizer: stripper,
		config:    config,
		log:       log,
	}
}

// Submit strips markup from the free text fields, prices both sides at the
// configured initial odds and stores the market.
func (s *Submitter) Submit(ctx context.Context, draft models.MarketDraft) (*models.Market, error) {
	d := s.clean(draft)

	market, err := models.NewMarketFromDraft(d, s.config.InitialOdds)
	if err != nil {
		return nil, fmt.Errorf("failed to build market: %w", err)
	}

	if err := s.repo.Create(ctx, market); err != nil {
		return nil, fmt.Errorf("failed to create market: %w", err)
	}

	s.log.Info("market created", map[string]interface{}{
		"market_id":   market.ID.String(),
		"market_type": string(market.MarketType),
		"category":    market.Category,
	})

	return market, nil
}

func (s *Submitter) clean(draft models.MarketDraft) models.MarketDraft {
	d := draft.Clone()
	d.Title = s.sanitizer.StripAndTrim(d.Title)
	d.Description = s.sanitizer.StripAndTrim(d.Description)
	d.ScalarUnit = s.sanitizer.StripAndTrim(d.ScalarUnit)
	d.ResolverAddress = s.sanitizer.StripAndTrim(d.ResolverAddress)
	for i, opt := range d.Options {
		d.Options[i] = s.sanitizer.StripAndTrim(opt)
	}
	return d
}
