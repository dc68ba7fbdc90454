// Package anomaly flags bars whose volume exceeds a rolling baseline by a
// configurable multiple. The detector is a pure predicate plus the numeric
// ratio; trade direction is decided elsewhere.
package anomaly

import (
	"github.com/moznion/go-optional"
	"github.com/tradeforge/signalcore/pkg/errors"
)

// Result is the outcome of evaluating one bar's volume.
type Result struct {
	// Ratio is current volume over the rolling baseline
	Ratio float64
	// Flagged is true when Ratio meets or exceeds the configured multiplier
	Flagged bool
}

// Detector evaluates volume against its baseline.
type Detector struct {
	multiplier float64
}

// NewDetector creates a detector with the given anomaly multiplier.
func NewDetector(multiplier float64) (*Detector, error) {
	if multiplier <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidMultiplier, "multiplier must be a positive number, got %f", multiplier)
	}

	return &Detector{multiplier: multiplier}, nil
}

// Evaluate returns the volume ratio for one bar. An undefined or
// non-positive baseline yields None rather than a division error; callers
// treat None as "no anomaly".
func (d *Detector) Evaluate(volume float64, baseline optional.Option[float64]) optional.Option[Result] {
	if baseline.IsNone() || volume < 0 {
		return optional.None[Result]()
	}

	base := baseline.Unwrap()
	if base <= 0 {
		return optional.None[Result]()
	}

	ratio := volume / base

	return optional.Some(Result{
		Ratio:   ratio,
		Flagged: ratio >= d.multiplier,
	})
}
