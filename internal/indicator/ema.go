package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/tradeforge/signalcore/internal/types"
	"github.com/tradeforge/signalcore/pkg/errors"
)

// EMA indicator implements Exponential Moving Average calculation over
// closes, seeded with the SMA of the first period closes.
type EMA struct {
	period int
}

// NewEMA creates a new EMA indicator with default configuration.
func NewEMA() Indicator {
	return &EMA{
		period: 20, // Default period
	}
}

// Name returns the name of the indicator.
func (e *EMA) Name() types.IndicatorType {
	return types.IndicatorTypeEMA
}

// Config configures the EMA indicator. Expected parameters: period (int).
func (e *EMA) Config(params ...any) error {
	if len(params) != 1 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 1 parameter: period (int)")
	}

	period, ok := params[0].(int)
	if !ok {
		// Try to convert from float first
		periodFloat, ok := params[0].(float64)
		if !ok {
			return errors.New(errors.ErrCodeInvalidType, "invalid type for period parameter, expected int or float")
		}

		period = int(periodFloat)
	}

	if period <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	e.period = period

	return nil
}

// Compute returns the close-price EMA column with smoothing factor
// 2/(period+1). Cells before index period-1 are None.
func (e *EMA) Compute(series types.Series) (Column, error) {
	column := emptyColumn(series.Len())
	if series.Len() < e.period {
		return column, nil
	}

	var seedSum float64
	for i := 0; i < e.period; i++ {
		seedSum += series.Bars[i].Close
	}

	alpha := 2.0 / float64(e.period+1)

	ema := seedSum / float64(e.period)
	column[e.period-1] = optional.Some(ema)

	for i := e.period; i < series.Len(); i++ {
		ema = alpha*series.Bars[i].Close + (1-alpha)*ema
		column[i] = optional.Some(ema)
	}

	return column, nil
}
