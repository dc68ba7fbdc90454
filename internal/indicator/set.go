package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/tradeforge/signalcore/internal/types"
	"github.com/tradeforge/signalcore/pkg/errors"
)

// SetParams configures one IndicatorSet computation.
type SetParams struct {
	ATRPeriod      int
	ATRMultiplier  float64
	VolumeLookback int
	MAPeriod       int
}

// Set holds the derived, per-bar columns for one series. Every column has
// the same length as the source series; cells without enough history are
// None. The set never mutates the series it was computed from.
type Set struct {
	ATR            Column
	SuperTrend     []optional.Option[SuperTrendPoint]
	VolumeBaseline Column
	MA             Column
}

// Len returns the shared column length.
func (s Set) Len() int {
	return len(s.ATR)
}

// ComputeSet derives all indicator columns the engine needs for one series.
// Computation is lazy per request: nothing is cached here, callers own any
// memoization.
func ComputeSet(registry IndicatorRegistry, series types.Series, params SetParams) (Set, error) {
	atrColumn, err := computeColumn(registry, series, types.IndicatorTypeATR, params.ATRPeriod)
	if err != nil {
		return Set{}, err
	}

	baselineColumn, err := computeColumn(registry, series, types.IndicatorTypeVolumeBaseline, params.VolumeLookback)
	if err != nil {
		return Set{}, err
	}

	// A zero MAPeriod disables the moving-average column; every cell
	// stays None.
	maColumn := emptyColumn(series.Len())
	if params.MAPeriod > 0 {
		maColumn, err = computeColumn(registry, series, types.IndicatorTypeMA, params.MAPeriod)
		if err != nil {
			return Set{}, err
		}
	}

	superTrendIndicator, err := registry.NewIndicator(types.IndicatorTypeSuperTrend)
	if err != nil {
		return Set{}, err
	}

	if err := superTrendIndicator.Config(params.ATRPeriod, params.ATRMultiplier); err != nil {
		return Set{}, err
	}

	superTrend, ok := superTrendIndicator.(*SuperTrend)
	if !ok {
		return Set{}, errors.New(errors.ErrCodeInvalidType, "registered supertrend indicator has an unexpected type")
	}

	points, err := superTrend.Points(series)
	if err != nil {
		return Set{}, err
	}

	return Set{
		ATR:            atrColumn,
		SuperTrend:     points,
		VolumeBaseline: baselineColumn,
		MA:             maColumn,
	}, nil
}

func computeColumn(registry IndicatorRegistry, series types.Series, name types.IndicatorType, period int) (Column, error) {
	ind, err := registry.NewIndicator(name)
	if err != nil {
		return nil, err
	}

	if err := ind.Config(period); err != nil {
		return nil, err
	}

	return ind.Compute(series)
}
