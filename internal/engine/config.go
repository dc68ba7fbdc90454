package engine

import (
	"github.com/go-playground/validator/v10"
	"github.com/tradeforge/signalcore/pkg/errors"
	"github.com/tradeforge/signalcore/pkg/utils"
)

// RiskParameters is the read-only configuration snapshot for one analysis
// pass. The engine never holds a long-lived mutable copy; callers supply a
// fresh snapshot per invocation.
type RiskParameters struct {
	// Equity is the account equity used for position sizing
	Equity float64 `yaml:"equity" json:"equity" jsonschema:"title=Equity,description=Account equity used for sizing" validate:"required,gt=0"`
	// RiskPerTrade is the fraction of equity risked per trade
	RiskPerTrade float64 `yaml:"risk_per_trade" json:"risk_per_trade" jsonschema:"title=Risk Per Trade,description=Fraction of equity risked per trade" validate:"required,gt=0,lte=1"`
	// MaxOpenPositions caps concurrent positions; zero disables the check
	MaxOpenPositions int `yaml:"max_open_positions" json:"max_open_positions" jsonschema:"title=Max Open Positions" validate:"gte=0"`
	// OpenPositions is the caller-reported count of currently open positions
	OpenPositions int `yaml:"open_positions" json:"open_positions" jsonschema:"title=Open Positions" validate:"gte=0"`
	// MaxPositionValue caps per-symbol exposure; zero disables the cap
	MaxPositionValue float64 `yaml:"max_position_value" json:"max_position_value" jsonschema:"title=Max Position Value" validate:"gte=0"`
	// MinSignalConfidence is the signal gate in [0, 100]
	MinSignalConfidence float64 `yaml:"min_signal_confidence" json:"min_signal_confidence" jsonschema:"title=Min Signal Confidence" validate:"gte=0,lte=100"`
	// ATRPeriod is the ATR lookback in bars
	ATRPeriod int `yaml:"atr_period" json:"atr_period" jsonschema:"title=ATR Period" validate:"required,gt=0"`
	// ATRMultiplier sets the SuperTrend band width and the stop distance
	ATRMultiplier float64 `yaml:"atr_multiplier" json:"atr_multiplier" jsonschema:"title=ATR Multiplier" validate:"required,gt=0"`
	// VolumeLookback is the volume baseline lookback in bars
	VolumeLookback int `yaml:"volume_lookback" json:"volume_lookback" jsonschema:"title=Volume Lookback" validate:"required,gt=0"`
	// VolumeMultiplier is the anomaly threshold on volume ratio
	VolumeMultiplier float64 `yaml:"volume_multiplier" json:"volume_multiplier" jsonschema:"title=Volume Multiplier" validate:"required,gt=0"`
	// MAPeriod is the secondary-confirmation moving average lookback;
	// zero disables the confirmation
	MAPeriod int `yaml:"ma_period" json:"ma_period" jsonschema:"title=MA Period" validate:"gte=0"`
}

// DefaultRiskParameters returns a conservative baseline configuration.
func DefaultRiskParameters() RiskParameters {
	return RiskParameters{
		Equity:              10_000,
		RiskPerTrade:        0.01,
		MaxOpenPositions:    5,
		OpenPositions:       0,
		MaxPositionValue:    0,
		MinSignalConfidence: 40,
		ATRPeriod:           10,
		ATRMultiplier:       3.0,
		VolumeLookback:      20,
		VolumeMultiplier:    2.8,
		MAPeriod:            20,
	}
}

// Validate validates the RiskParameters struct. A validation failure here
// is fatal to a whole pass, since the snapshot affects every symbol
// identically.
func (p *RiskParameters) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRiskParameters, "invalid risk parameters", err)
	}

	return nil
}

// MinBars is the minimum series length the engine accepts before running
// indicators: the largest configured lookback, plus one bar so the
// SuperTrend recurrence has at least one step beyond its seed.
func (p RiskParameters) MinBars() int {
	minBars := p.ATRPeriod + 1
	if p.VolumeLookback > minBars {
		minBars = p.VolumeLookback
	}

	if p.MAPeriod > minBars {
		minBars = p.MAPeriod
	}

	return minBars
}

// GenerateSchemaJSON returns the JSON schema for RiskParameters, for
// config tooling and editor completion.
func (p *RiskParameters) GenerateSchemaJSON() (string, error) {
	return utils.GetSchemaFromConfig(p)
}
