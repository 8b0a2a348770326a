package payout

import (
	"github.com/google/uuid"

	"github.com/joefazee/prognos/internal/formatter"
	"github.com/joefazee/prognos/models"
)

// QuoteRequest represents a quote with caller supplied odds
// @Description Stake, side and odds for a payout quote
type QuoteRequest struct {
	StakeAmount *float64 `json:"stake_amount" validate:"required,gte=0,lte=1000000000" example:"10"`
	Side        string   `json:"side" validate:"required,oneof=YES NO yes no" example:"YES"`
	YesOdds     float64  `json:"yes_odds" validate:"gt=0,lte=100" example:"65"`
	NoOdds      float64  `json:"no_odds" validate:"gt=0,lte=100" example:"35"`
	FeeRate     *float64 `json:"fee_rate,omitempty" validate:"omitempty,gte=0,lte=100" example:"0.02"` // defaults to the configured rate
}

// MarketQuoteRequest represents a quote against a market's live odds
// @Description Stake and side, priced at the market's current odds
type MarketQuoteRequest struct {
	StakeAmount *float64 `json:"stake_amount" form:"stake" validate:"required,gte=0,lte=1000000000" example:"25"`
	Side        string   `json:"side" form:"side" validate:"required,oneof=YES NO yes no" example:"NO"`
}

// DisplayAmounts is the payout rounded for presentation
type DisplayAmounts struct {
	EstimatedPayout string `json:"estimated_payout" example:"15.38"`
	Fee             string `json:"fee" example:"0.20"`
	NetPayout       string `json:"net_payout" example:"15.18"`
	Profit          string `json:"profit" example:"5.18"`
	ProfitPercent   string `json:"profit_percent" example:"51.8"`
}

// QuoteResponse represents a payout quote in API responses
// @Description Raw and display-rounded payout breakdown
type QuoteResponse struct {
	MarketID    *uuid.UUID          `json:"market_id,omitempty"`
	StakeAmount float64             `json:"stake_amount"`
	Side        models.Side         `json:"side"`
	YesOdds     float64             `json:"yes_odds"`
	NoOdds      float64             `json:"no_odds"`
	FeeRate     float64             `json:"fee_rate"`
	Result      models.PayoutResult `json:"result"`
	Display     DisplayAmounts      `json:"display"`
}

// QuickQuotesResponse prices each preset stake
type QuickQuotesResponse struct {
	MarketID uuid.UUID       `json:"market_id"`
	Side     models.Side     `json:"side"`
	YesOdds  float64         `json:"yes_odds"`
	NoOdds   float64         `json:"no_odds"`
	Quotes   []QuoteResponse `json:"quotes"`
}

// ToDisplay rounds a result to cents, and profit percent to one decimal
func ToDisplay(r models.PayoutResult) DisplayAmounts {
	return DisplayAmounts{
		EstimatedPayout: formatter.AmountString(r.EstimatedPayout),
		Fee:             formatter.AmountString(r.Fee),
		NetPayout:       formatter.AmountString(r.NetPayout),
		Profit:          formatter.AmountString(r.Profit),
		ProfitPercent:   formatter.PercentString(r.ProfitPercent),
	}
}

func newQuoteResponse(req models.StakeRequest, result models.PayoutResult) *QuoteResponse {
	return &QuoteResponse{
		StakeAmount: req.StakeAmount,
		Side:        req.Side,
		YesOdds:     req.YesOdds,
		NoOdds:      req.NoOdds,
		FeeRate:     req.FeeRate,
		Result:      result,
		Display:     ToDisplay(result),
	}
}
