package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Side is the outcome a stake is placed on.
type Side string

const (
	SideYes Side = "YES"
	SideNo  Side = "NO"
)

// ParseSide accepts yes/no in any case.
func ParseSide(s string) (Side, error) {
	switch Side(strings.ToUpper(strings.TrimSpace(s))) {
	case SideYes:
		return SideYes, nil
	case SideNo:
		return SideNo, nil
	}
	return "", ErrInvalidSide
}

func (s Side) Valid() bool {
	return s == SideYes || s == SideNo
}

// StakeRequest holds the inputs of a payout calculation. Odds are implied
// probabilities in percent and need not sum to 100.
type StakeRequest struct {
	StakeAmount float64 `json:"stake_amount"`
	Side        Side    `json:"side"`
	YesOdds     float64 `json:"yes_odds"`
	NoOdds      float64 `json:"no_odds"`
	FeeRate     float64 `json:"fee_rate"`
}

// CurrentOdds returns the odds of the chosen side.
func (r StakeRequest) CurrentOdds() float64 {
	if r.Side == SideNo {
		return r.NoOdds
	}
	return r.YesOdds
}

// PayoutResult is the unrounded payout breakdown.
type PayoutResult struct {
	EstimatedPayout float64 `json:"estimated_payout"`
	Fee             float64 `json:"fee"`
	NetPayout       float64 `json:"net_payout"`
	Profit          float64 `json:"profit"`
	ProfitPercent   float64 `json:"profit_percent"`
}

// CalculationError reports a stake request outside the calculator's domain.
type CalculationError struct {
	Field string
	Value float64
	Err   error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("cannot calculate payout: %s=%v: %v", e.Field, e.Value, e.Err)
}

func (e *CalculationError) Unwrap() error {
	return e.Err
}

// MarketOdds is a snapshot of a market's current yes/no odds.
type MarketOdds struct {
	MarketID uuid.UUID `json:"market_id"`
	YesOdds  float64   `json:"yes_odds"`
	NoOdds   float64   `json:"no_odds"`
	Open     bool      `json:"open"`
}
