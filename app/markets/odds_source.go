package markets

import (
	"context"

	"github.com/google/uuid"

	"github.com/joefazee/prognos/models"
)

// OddsSource reads live yes/no odds straight from the markets table.
type OddsSource struct {
	repo Repository
}

func NewOddsSource(repo Repository) *OddsSource {
	return &OddsSource{repo: repo}
}

// GetOdds returns models.ErrMarketNotBinary for markets without a yes/no
// price pair.
func (o *OddsSource) GetOdds(ctx context.Context, marketID uuid.UUID) (models.MarketOdds, error) {
	market, err := o.repo.GetOdds(ctx, marketID)
	if err != nil {
		return models.MarketOdds{}, err
	}

	if market.MarketType != models.MarketTypeYesNo {
		return models.MarketOdds{}, models.ErrMarketNotBinary
	}

	return market.Odds(), nil
}
