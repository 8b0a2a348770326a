package payout

import (
	"context"

	"github.com/google/uuid"

	"github.com/joefazee/prognos/models"
)

// Engine defines the payout calculations
type Engine interface {
	Calculate(req models.StakeRequest) (models.PayoutResult, error)
	Quote(stake float64, side models.Side, yesOdds, noOdds float64) (models.PayoutResult, error)
	ImpliedProbability(odds float64) float64
	DecimalOdds(odds float64) float64
	FeeRate() float64
}

// OddsSource supplies live odds for a market.
type OddsSource interface {
	GetOdds(ctx context.Context, marketID uuid.UUID) (models.MarketOdds, error)
}

// Service defines the interface for payout quoting
type Service interface {
	Quote(req *QuoteRequest) (*QuoteResponse, error)
	QuoteMarket(ctx context.Context, marketID uuid.UUID, req *MarketQuoteRequest) (*QuoteResponse, error)
	QuickQuotes(ctx context.Context, marketID uuid.UUID, side models.Side) (*QuickQuotesResponse, error)
}
