package indicator

import (
	"github.com/tradeforge/signalcore/internal/types"
	"github.com/tradeforge/signalcore/pkg/errors"
)

// MA indicator implements Simple Moving Average calculation over closes.
type MA struct {
	period int
}

// NewMA creates a new MA indicator with default configuration.
func NewMA() Indicator {
	return &MA{
		period: 20, // Default period
	}
}

// Name returns the name of the indicator.
func (m *MA) Name() types.IndicatorType {
	return types.IndicatorTypeMA
}

// Config configures the MA indicator. Expected parameters: period (int).
func (m *MA) Config(params ...any) error {
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

	m.period = period

	return nil
}

// Compute returns the close-price SMA column. Cells before index period-1
// are None.
func (m *MA) Compute(series types.Series) (Column, error) {
	closes := make([]float64, series.Len())
	for i, bar := range series.Bars {
		closes[i] = bar.Close
	}

	return rollingMean(closes, m.period), nil
}
