package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/tradeforge/signalcore/internal/types"
	"github.com/tradeforge/signalcore/pkg/errors"
)

// SuperTrendPoint is one bar of SuperTrend output. Value is the active band:
// the lower band while bullish, the upper band while bearish.
type SuperTrendPoint struct {
	Value     float64
	UpperBand float64
	LowerBand float64
	Direction types.TrendDirection
}

// SuperTrend represents the SuperTrend band indicator.
//
// The recurrence is stateful: each bar's final bands depend on the previous
// bar's final bands and direction, so the whole series is computed in a
// single forward scan. Rerunning it independently per bar would lose the
// direction memory and ratchet state.
type SuperTrend struct {
	atrPeriod  int
	multiplier float64
}

// NewSuperTrend creates a new SuperTrend indicator with default configuration.
func NewSuperTrend() Indicator {
	return &SuperTrend{
		atrPeriod:  10,  // Default ATR period
		multiplier: 3.0, // Default band multiplier
	}
}

// Name returns the name of the indicator.
func (st *SuperTrend) Name() types.IndicatorType {
	return types.IndicatorTypeSuperTrend
}

// Config configures the SuperTrend indicator. Expected parameters: atrPeriod (int), multiplier (float64).
func (st *SuperTrend) Config(params ...any) error {
	if len(params) != 2 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 2 parameters: atrPeriod (int), multiplier (float64)")
	}

	atrPeriod, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for atrPeriod parameter, expected int")
	}

	if atrPeriod <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "atrPeriod must be a positive integer, got %d", atrPeriod)
	}

	multiplier, ok := params[1].(float64)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for multiplier parameter, expected float64")
	}

	if multiplier <= 0 {
		return errors.Newf(errors.ErrCodeInvalidMultiplier, "multiplier must be a positive number, got %f", multiplier)
	}

	st.atrPeriod = atrPeriod
	st.multiplier = multiplier

	return nil
}

// Compute returns the active band value column. Cells without a defined ATR
// stay None.
func (st *SuperTrend) Compute(series types.Series) (Column, error) {
	points, err := st.Points(series)
	if err != nil {
		return nil, err
	}

	column := emptyColumn(series.Len())

	for i, cell := range points {
		if cell.IsNone() {
			continue
		}

		point, err := cell.Take()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeIndicatorCalculation, "failed to read supertrend point", err)
		}

		column[i] = optional.Some(point.Value)
	}

	return column, nil
}

// Points computes the full SuperTrend recurrence for the series.
func (st *SuperTrend) Points(series types.Series) ([]optional.Option[SuperTrendPoint], error) {
	if st.atrPeriod <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "atrPeriod must be a positive integer, got %d", st.atrPeriod)
	}

	points := make([]optional.Option[SuperTrendPoint], series.Len())
	for i := range points {
		points[i] = optional.None[SuperTrendPoint]()
	}

	atrIndicator := &ATR{period: st.atrPeriod}

	atrColumn, err := atrIndicator.Compute(series)
	if err != nil {
		return nil, err
	}

	var (
		initialized bool
		prevUpper   float64
		prevLower   float64
		prevDir     types.TrendDirection
	)

	for i, bar := range series.Bars {
		if atrColumn[i].IsNone() {
			continue
		}

		atr, err := atrColumn[i].Take()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeIndicatorCalculation, "failed to read atr cell", err)
		}

		midpoint := (bar.High + bar.Low) / 2
		basicUpper := midpoint + st.multiplier*atr
		basicLower := midpoint - st.multiplier*atr

		if !initialized {
			// The recurrence starts bullish at the first bar with a defined ATR.
			prevUpper = basicUpper
			prevLower = basicLower
			prevDir = types.TrendBullish
			initialized = true

			points[i] = optional.Some(SuperTrendPoint{
				Value:     prevLower,
				UpperBand: prevUpper,
				LowerBand: prevLower,
				Direction: prevDir,
			})

			continue
		}

		prevClose := series.Bars[i-1].Close

		// Final bands ratchet: while bullish the lower band only moves up,
		// while bearish the upper band only moves down. A prior-bar close
		// beyond the old band releases the ratchet.
		finalUpper := prevUpper
		if basicUpper < prevUpper || prevClose > prevUpper {
			finalUpper = basicUpper
		}

		finalLower := prevLower
		if basicLower > prevLower || prevClose < prevLower {
			finalLower = basicLower
		}

		direction := prevDir
		if prevDir == types.TrendBullish && bar.Close < finalLower {
			direction = types.TrendBearish
		} else if prevDir == types.TrendBearish && bar.Close > finalUpper {
			direction = types.TrendBullish
		}

		value := finalLower
		if direction == types.TrendBearish {
			value = finalUpper
		}

		points[i] = optional.Some(SuperTrendPoint{
			Value:     value,
			UpperBand: finalUpper,
			LowerBand: finalLower,
			Direction: direction,
		})

		prevUpper = finalUpper
		prevLower = finalLower
		prevDir = direction
	}

	return points, nil
}
