package payout

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/joefazee/prognos/internal/logger"
	"github.com/joefazee/prognos/models"
)

// service implements the Service interface
type service struct {
	engine Engine
	odds   OddsSource
	config *Config
	log    logger.Logger
}

// NewService creates a new payout service
func NewService(engine Engine, odds OddsSource, config *Config, log logger.Logger) Service {
	return &service{
		engine: engine,
		odds:   odds,
		config: config,
		log:    log,
	}
}

// Quote prices a stake at the odds given in the request.
func (s *service) Quote(req *QuoteRequest) (*QuoteResponse, error) {
	side, err := models.ParseSide(req.Side)
	if err != nil {
		return nil, &models.CalculationError{Field: "side", Err: err}
	}

	feeRate := s.engine.FeeRate()
	if req.FeeRate != nil {
		feeRate = *req.FeeRate
	}

	var stake float64
	if req.StakeAmount != nil {
		stake = *req.StakeAmount
	}

	sr := models.StakeRequest{
		StakeAmount: stake,
		Side:        side,
		YesOdds:     req.YesOdds,
		NoOdds:      req.NoOdds,
		FeeRate:     feeRate,
	}

	result, err := s.engine.Calculate(sr)
	if err != nil {
		return nil, err
	}
	return newQuoteResponse(sr, result), nil
}

// QuoteMarket prices a stake at the market's current odds.
func (s *service) QuoteMarket(ctx context.Context, marketID uuid.UUID, req *MarketQuoteRequest) (*QuoteResponse, error) {
	side, err := models.ParseSide(req.Side)
	if err != nil {
		return nil, &models.CalculationError{Field: "side", Err: err}
	}

	odds, err := s.liveOdds(ctx, marketID)
	if err != nil {
		return nil, err
	}

	var stake float64
	if req.StakeAmount != nil {
		stake = *req.StakeAmount
	}

	return s.quoteAt(odds, stake, side)
}

// QuickQuotes prices every configured quick amount at the market's odds.
func (s *service) QuickQuotes(ctx context.Context, marketID uuid.UUID, side models.Side) (*QuickQuotesResponse, error) {
	if !side.Valid() {
		return nil, &models.CalculationError{Field: "side", Err: models.ErrInvalidSide}
	}

	odds, err := s.liveOdds(ctx, marketID)
	if err != nil {
		return nil, err
	}

	resp := &QuickQuotesResponse{
		MarketID: marketID,
		Side:     side,
		YesOdds:  odds.YesOdds,
		NoOdds:   odds.NoOdds,
		Quotes:   make([]QuoteResponse, 0, len(s.config.QuickAmounts)),
	}

	for _, amount := range s.config.QuickAmounts {
		q, err := s.quoteAt(odds, amount, side)
		if err != nil {
			return nil, err
		}
		resp.Quotes = append(resp.Quotes, *q)
	}

	return resp, nil
}

func (s *service) liveOdds(ctx context.Context, marketID uuid.UUID) (models.MarketOdds, error) {
	odds, err := s.odds.GetOdds(ctx, marketID)
	if err != nil {
		return models.MarketOdds{}, err
	}
	if !odds.Open {
		return models.MarketOdds{}, models.ErrMarketNotOpen
	}
	return odds, nil
}

func (s *service) quoteAt(odds models.MarketOdds, stake float64, side models.Side) (*QuoteResponse, error) {
	result, err := s.engine.Quote(stake, side, odds.YesOdds, odds.NoOdds)
	if err != nil {
		// a bad feed is reported with the offending market
		s.log.Error(err, map[string]interface{}{"market_id": odds.MarketID.String()})
		return nil, fmt.Errorf("market %s: %w", odds.MarketID, err)
	}

	marketID := odds.MarketID
	resp := newQuoteResponse(models.StakeRequest{
		StakeAmount: stake,
		Side:        side,
		YesOdds:     odds.YesOdds,
		NoOdds:      odds.NoOdds,
		FeeRate:     s.engine.FeeRate(),
	}, result)
	resp.MarketID = &marketID
	return resp, nil
}
