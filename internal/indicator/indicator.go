package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/tradeforge/signalcore/internal/types"
)

// Column is a per-bar derived series, index-aligned with the source series.
// Cells without enough history are None, never zero, so downstream
// comparisons are not biased by fabricated values.
type Column = []optional.Option[float64]

// Indicator interface defines methods that any technical indicator must implement.
// Compute is pure: it never mutates the source series and carries no state
// between calls.
type Indicator interface {
	// Name returns the name of the indicator
	Name() types.IndicatorType
	// Config configures the indicator parameters
	Config(params ...any) error
	// Compute returns a derived column with the same length as the series
	Compute(series types.Series) (Column, error)
}

// emptyColumn returns an all-None column of the given length.
func emptyColumn(length int) Column {
	column := make(Column, length)
	for i := range column {
		column[i] = optional.None[float64]()
	}

	return column
}

// rollingMean fills a column with the simple mean of the trailing `period`
// values at each index, using only prior and current values. Cells before
// index period-1 stay None.
func rollingMean(values []float64, period int) Column {
	column := emptyColumn(len(values))
	if period <= 0 || len(values) < period {
		return column
	}

	var sum float64
	for i, v := range values {
		sum += v

		if i >= period {
			sum -= values[i-period]
		}

		if i >= period-1 {
			column[i] = optional.Some(sum / float64(period))
		}
	}

	return column
}
