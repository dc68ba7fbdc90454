package types

import (
	"time"

	"github.com/tradeforge/signalcore/pkg/errors"
)

// Bar is a single OHLCV sample. Immutable once recorded.
type Bar struct {
	Time   time.Time `csv:"time"`
	Open   float64   `csv:"open"`
	High   float64   `csv:"high"`
	Low    float64   `csv:"low"`
	Close  float64   `csv:"close"`
	Volume float64   `csv:"volume"`
}

// Series is an ordered, time-ascending sequence of bars for one symbol.
// Gaps between timestamps are tolerated; bars are never reordered.
type Series struct {
	Symbol string
	Bars   []Bar
}

// Len returns the number of bars in the series.
func (s Series) Len() int {
	return len(s.Bars)
}

// Last returns the most recent bar. The boolean is false for an empty series.
func (s Series) Last() (Bar, bool) {
	if len(s.Bars) == 0 {
		return Bar{}, false
	}

	return s.Bars[len(s.Bars)-1], true
}

// Validate checks the series contract: a non-empty symbol and strictly
// ascending, duplicate-free timestamps with well-formed OHLC ranges.
func (s Series) Validate() error {
	if s.Symbol == "" {
		return errors.New(errors.ErrCodeInvalidSeries, "series symbol is empty")
	}

	for i, bar := range s.Bars {
		if bar.Time.IsZero() {
			return errors.Newf(errors.ErrCodeInvalidSeries, "bar %d for %s has a zero timestamp", i, s.Symbol)
		}

		if bar.High < bar.Low {
			return errors.Newf(errors.ErrCodeInvalidSeries, "bar %d for %s has high %.8f below low %.8f", i, s.Symbol, bar.High, bar.Low)
		}

		if bar.Volume < 0 {
			return errors.Newf(errors.ErrCodeInvalidSeries, "bar %d for %s has negative volume %.8f", i, s.Symbol, bar.Volume)
		}

		if i == 0 {
			continue
		}

		prev := s.Bars[i-1].Time
		if !bar.Time.After(prev) {
			return errors.Newf(errors.ErrCodeInvalidSeries,
				"bar %d for %s at %s is not after previous bar at %s", i, s.Symbol, bar.Time.Format(time.RFC3339), prev.Format(time.RFC3339))
		}
	}

	return nil
}
