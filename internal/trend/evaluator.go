// Package trend turns the raw SuperTrend state into a tradeable trend
// reading: direction, strength and a discretized quality tier.
package trend

import (
	"math"

	"github.com/tradeforge/signalcore/internal/indicator"
	"github.com/tradeforge/signalcore/internal/types"
	"github.com/tradeforge/signalcore/pkg/errors"
)

// Quality tier thresholds in percent of the band value. Tunable constants.
const (
	StrongThresholdPct   = 2.0
	ModerateThresholdPct = 1.0
)

// Evaluation is the trend reading at one bar.
type Evaluation struct {
	// Direction is the SuperTrend recurrence state
	Direction types.TrendDirection
	// Confirmed is true only when the close sits on the expected side of
	// the active band. Unconfirmed readings must not trigger signals.
	Confirmed bool
	// StrengthPct is the close's distance from the active band, in percent
	StrengthPct float64
	// Quality is the discretized strength tier
	Quality types.TrendQuality
	// BandValue is the active band the reading was taken against
	BandValue float64
}

// Evaluate reads the trend at one bar from its SuperTrend point and close.
func Evaluate(point indicator.SuperTrendPoint, closePrice float64) (Evaluation, error) {
	if point.Value <= 0 {
		return Evaluation{}, errors.Newf(errors.ErrCodeComputationError, "supertrend band value must be positive, got %f", point.Value)
	}

	strength := math.Abs(closePrice-point.Value) / point.Value * 100

	confirmed := false

	switch point.Direction {
	case types.TrendBullish:
		confirmed = closePrice > point.Value
	case types.TrendBearish:
		confirmed = closePrice < point.Value
	}

	return Evaluation{
		Direction:   point.Direction,
		Confirmed:   confirmed,
		StrengthPct: strength,
		Quality:     qualityTier(strength),
		BandValue:   point.Value,
	}, nil
}

// qualityTier discretizes strength: Strong above 2%, Moderate from 1% to
// 2%, Weak below 1%.
func qualityTier(strengthPct float64) types.TrendQuality {
	switch {
	case strengthPct > StrongThresholdPct:
		return types.TrendQualityStrong
	case strengthPct >= ModerateThresholdPct:
		return types.TrendQualityModerate
	default:
		return types.TrendQualityWeak
	}
}
