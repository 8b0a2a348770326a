package payout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/joefazee/prognos/internal/cache"
	"github.com/joefazee/prognos/internal/logger"
	"github.com/joefazee/prognos/models"
)

// OddsProvider serves market odds from a short lived cache and falls back to
// the source. Concurrent misses for one market share a single source call.
type OddsProvider struct {
	source OddsSource
	cache  cache.Cache[models.MarketOdds]
	ttl    time.Duration
	group  singleflight.Group
	log    logger.Logger
}

// NewOddsProvider creates a provider. A zero ttl disables caching.
func NewOddsProvider(source OddsSource, c cache.Cache[models.MarketOdds], ttl time.Duration, log logger.Logger) *OddsProvider {
	return &OddsProvider{
		source: source,
		cache:  c,
		ttl:    ttl,
		log:    log,
	}
}

func (p *OddsProvider) GetOdds(ctx context.Context, marketID uuid.UUID) (models.MarketOdds, error) {
	key := marketID.String()

	if p.ttl > 0 {
		odds, err := p.cache.Get(ctx, key)
		if err == nil {
			return odds, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			p.log.Error(err, map[string]interface{}{"market_id": key, "op": "odds cache get"})
		}
	}

	v, err, _ := p.group.Do(key, func() (interface{}, error) {
		odds, err := p.source.GetOdds(ctx, marketID)
		if err != nil {
			return models.MarketOdds{}, err
		}
		if p.ttl > 0 {
			if err := p.cache.Set(ctx, key, odds, p.ttl); err != nil {
				p.log.Error(err, map[string]interface{}{"market_id": key, "op": "odds cache set"})
			}
		}
		return odds, nil
	})
	if err != nil {
		return models.MarketOdds{}, fmt.Errorf("failed to load odds: %w", err)
	}

	return v.(models.MarketOdds), nil
}

// Invalidate drops the cached snapshot for a market.
func (p *OddsProvider) Invalidate(ctx context.Context, marketID uuid.UUID) error {
	return p.cache.Delete(ctx, marketID.String())
}

var _ OddsSource = (*OddsProvider)(nil)
