package payout

import (
	"math"

	"github.com/joefazee/prognos/models"
)

const maxOdds = 100.0

// Calculate computes the payout breakdown for req. It is pure and applies no
// rounding; format at the display boundary.
func Calculate(req models.StakeRequest) (models.PayoutResult, error) {
	if err := checkRequest(req); err != nil {
		return models.PayoutResult{}, err
	}

	stake := req.StakeAmount
	if stake == 0 {
		return models.PayoutResult{}, nil
	}

	estimated := stake
	if odds := req.CurrentOdds(); odds != maxOdds {
		estimated = stake / odds * maxOdds
	}
	fee := stake * req.FeeRate
	net := estimated - fee
	profit := net - stake
	pct := profit / stake * 100

	if !finite(estimated) {
		return models.PayoutResult{}, &models.CalculationError{Field: "stake_amount", Value: req.StakeAmount, Err: models.ErrInvalidStakeAmount}
	}
	if !finite(fee) || !finite(net) || !finite(profit) || !finite(pct) {
		return models.PayoutResult{}, &models.CalculationError{Field: "fee_rate", Value: req.FeeRate, Err: models.ErrInvalidFeeRate}
	}

	return models.PayoutResult{
		EstimatedPayout: estimated,
		Fee:             fee,
		NetPayout:       net,
		Profit:          profit,
		ProfitPercent:   pct,
	}, nil
}

func checkRequest(req models.StakeRequest) error {
	switch {
	case !finite(req.StakeAmount) || req.StakeAmount < 0:
		return &models.CalculationError{Field: "stake_amount", Value: req.StakeAmount, Err: models.ErrInvalidStakeAmount}
	case !req.Side.Valid():
		return &models.CalculationError{Field: "side", Err: models.ErrInvalidSide}
	case !validOdds(req.YesOdds):
		return &models.CalculationError{Field: "yes_odds", Value: req.YesOdds, Err: models.ErrInvalidOdds}
	case !validOdds(req.NoOdds):
		return &models.CalculationError{Field: "no_odds", Value: req.NoOdds, Err: models.ErrInvalidOdds}
	case !finite(req.FeeRate) || req.FeeRate < 0:
		return &models.CalculationError{Field: "fee_rate", Value: req.FeeRate, Err: models.ErrInvalidFeeRate}
	}
	return nil
}

func validOdds(v float64) bool {
	return finite(v) && v > 0 && v <= maxOdds
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// engine implements the Engine interface
type engine struct {
	config *Config
}

// NewEngine creates a new payout engine
func NewEngine(config *Config) Engine {
	return &engine{config: config}
}

func (e *engine) Calculate(req models.StakeRequest) (models.PayoutResult, error) {
	return Calculate(req)
}

// Quote prices a stake with the configured fee rate.
func (e *engine) Quote(stake float64, side models.Side, yesOdds, noOdds float64) (models.PayoutResult, error) {
	return Calculate(models.StakeRequest{
		StakeAmount: stake,
		Side:        side,
		YesOdds:     yesOdds,
		NoOdds:      noOdds,
		FeeRate:     e.config.FeeRate,
	})
}

// ImpliedProbability converts percentage odds to a probability in (0, 1].
func (e *engine) ImpliedProbability(odds float64) float64 {
	if !validOdds(odds) {
		return 0
	}
	return odds / maxOdds
}

// DecimalOdds is the gross return per unit staked, before fees.
func (e *engine) DecimalOdds(odds float64) float64 {
	if !validOdds(odds) {
		return 0
	}
	return maxOdds / odds
}

func (e *engine) FeeRate() float64 {
	return e.config.FeeRate
}
