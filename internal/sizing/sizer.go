// Package sizing converts confidence and account risk parameters into a
// recommended trade size and stop distance.
package sizing

import (
	"github.com/shopspring/decimal"
	"github.com/tradeforge/signalcore/internal/types"
	"github.com/tradeforge/signalcore/pkg/errors"
)

const (
	// ConfluenceBoost scales the base size up when the volume-confluence
	// bonus was applied to the signal's confidence.
	ConfluenceBoost = 1.15

	// quantityPrecision is the decimal precision quantities are floored to.
	quantityPrecision = 8
)

// Input carries one sizing request.
type Input struct {
	// Equity is the current account equity
	Equity float64
	// RiskPerTrade is the fraction of equity risked on one trade
	RiskPerTrade float64
	// EntryPrice is the close of the signal bar
	EntryPrice float64
	// ATR is the ATR value at the signal bar
	ATR float64
	// ATRMultiplier converts ATR into the stop distance
	ATRMultiplier float64
	// Side determines which side of the entry the stop sits on
	Side types.Side
	// VolumeConfluence applies the boost factor when true
	VolumeConfluence bool
	// OpenPositions is the caller-supplied count of currently open positions
	OpenPositions int
	// MaxOpenPositions caps concurrent positions; zero disables the check
	MaxOpenPositions int
	// MaxPositionValue caps quantity*entry exposure; zero disables the cap
	MaxPositionValue float64
}

// Recommendation is a sized trade.
type Recommendation struct {
	// Quantity is the recommended trade size, floored to 8 decimals
	Quantity float64
	// StopPrice is the suggested stop on the risk side of the entry
	StopPrice float64
	// StopDistance is the ATR-derived distance between entry and stop
	StopDistance float64
}

// Recommend sizes one trade. A non-positive computed size is reported as a
// sizing failure, never as a zero-size recommendation.
func Recommend(input Input) (Recommendation, error) {
	if input.MaxOpenPositions > 0 && input.OpenPositions >= input.MaxOpenPositions {
		return Recommendation{}, errors.Newf(errors.ErrCodeSizingFailure,
			"open position limit reached: %d of %d", input.OpenPositions, input.MaxOpenPositions)
	}

	stopDistance := input.ATR * input.ATRMultiplier
	if stopDistance <= 0 {
		return Recommendation{}, errors.Newf(errors.ErrCodeSizingFailure,
			"non-positive stop distance %.8f (atr=%.8f, multiplier=%.4f)", stopDistance, input.ATR, input.ATRMultiplier)
	}

	if input.EntryPrice <= 0 {
		return Recommendation{}, errors.Newf(errors.ErrCodeSizingFailure, "non-positive entry price %.8f", input.EntryPrice)
	}

	quantity := input.Equity * input.RiskPerTrade / stopDistance
	if input.VolumeConfluence {
		quantity *= ConfluenceBoost
	}

	// Exposure cap supplied externally; zero means uncapped.
	if input.MaxPositionValue > 0 && quantity*input.EntryPrice > input.MaxPositionValue {
		quantity = input.MaxPositionValue / input.EntryPrice
	}

	// Floor with decimal arithmetic so the recommendation never rounds up
	// past the risk budget.
	quantity = decimal.NewFromFloat(quantity).RoundFloor(quantityPrecision).InexactFloat64()
	if quantity <= 0 {
		return Recommendation{}, errors.Newf(errors.ErrCodeSizingFailure, "computed quantity %.8f is not positive", quantity)
	}

	stopPrice := input.EntryPrice - stopDistance
	if input.Side == types.SideShort {
		stopPrice = input.EntryPrice + stopDistance
	}

	return Recommendation{
		Quantity:     quantity,
		StopPrice:    stopPrice,
		StopDistance: stopDistance,
	}, nil
}
