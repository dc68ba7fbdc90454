package indicator

import (
	"github.com/tradeforge/signalcore/internal/types"
	"github.com/tradeforge/signalcore/pkg/errors"
)

// VolumeBaseline is the rolling mean of volume over a configured lookback,
// evaluated at each bar with only prior and current bars. It is the
// denominator of the volume-anomaly ratio.
type VolumeBaseline struct {
	lookback int
}

// NewVolumeBaseline creates a new VolumeBaseline indicator with default configuration.
func NewVolumeBaseline() Indicator {
	return &VolumeBaseline{
		lookback: 20, // Default lookback
	}
}

// Name returns the name of the indicator.
func (v *VolumeBaseline) Name() types.IndicatorType {
	return types.IndicatorTypeVolumeBaseline
}

// Config configures the VolumeBaseline indicator. Expected parameters: lookback (int).
func (v *VolumeBaseline) Config(params ...any) error {
	if len(params) != 1 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 1 parameter: lookback (int)")
	}

	lookback, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for lookback parameter, expected int")
	}

	if lookback <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "lookback must be a positive integer, got %d", lookback)
	}

	v.lookback = lookback

	return nil
}

// Compute returns the rolling volume mean column. Cells before index
// lookback-1 are None.
func (v *VolumeBaseline) Compute(series types.Series) (Column, error) {
	volumes := make([]float64, series.Len())
	for i, bar := range series.Bars {
		volumes[i] = bar.Volume
	}

	return rollingMean(volumes, v.lookback), nil
}
