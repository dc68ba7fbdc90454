package indicator

import (
	"math"

	"github.com/moznion/go-optional"
	"github.com/tradeforge/signalcore/internal/types"
	"github.com/tradeforge/signalcore/pkg/errors"
)

// ATR represents the Average True Range indicator.
//
// Smoothing is fixed to Wilder's method: the first value is the simple mean
// of the first `period` true ranges, every later value is
// (prev*(period-1)+tr)/period. The choice is deliberate and must not change
// silently, since it sets the SuperTrend band width.
type ATR struct {
	period int
}

// NewATR creates a new ATR indicator with default configuration.
func NewATR() Indicator {
	return &ATR{
		period: 14, // Default period
	}
}

// Name returns the name of the indicator.
func (a *ATR) Name() types.IndicatorType {
	return types.IndicatorTypeATR
}

// Config configures the ATR indicator. Expected parameters: period (int).
func (a *ATR) Config(params ...any) error {
	if len(params) != 1 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 1 parameter: period (int)")
	}

	period, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for period parameter, expected int")
	}

	if period <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	a.period = period

	return nil
}

// Compute returns the ATR column for the series. Cells before index
// period-1 are None.
func (a *ATR) Compute(series types.Series) (Column, error) {
	column := emptyColumn(series.Len())
	if series.Len() < a.period {
		return column, nil
	}

	ranges := trueRanges(series.Bars)

	// Seed with the simple mean of the first `period` true ranges.
	var seed float64
	for i := 0; i < a.period; i++ {
		seed += ranges[i]
	}

	atr := seed / float64(a.period)
	column[a.period-1] = optional.Some(atr)

	// Wilder smoothing for the remainder of the series.
	for i := a.period; i < len(ranges); i++ {
		atr = (atr*float64(a.period-1) + ranges[i]) / float64(a.period)
		column[i] = optional.Some(atr)
	}

	return column, nil
}

// trueRanges returns the per-bar true range. The first bar has no previous
// close, so its true range is the plain high-low span.
func trueRanges(bars []types.Bar) []float64 {
	ranges := make([]float64, len(bars))
	if len(bars) == 0 {
		return ranges
	}

	ranges[0] = bars[0].High - bars[0].Low

	for i := 1; i < len(bars); i++ {
		prevClose := bars[i-1].Close
		ranges[i] = math.Max(
			math.Max(
				bars[i].High-bars[i].Low,
				math.Abs(bars[i].High-prevClose),
			),
			math.Abs(bars[i].Low-prevClose),
		)
	}

	return ranges
}
