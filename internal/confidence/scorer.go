// Package confidence combines trend, volume-anomaly and secondary
// confirmations into a single bounded confluence score.
package confidence

import (
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/tradeforge/signalcore/internal/anomaly"
	"github.com/tradeforge/signalcore/internal/trend"
	"github.com/tradeforge/signalcore/internal/types"
	"github.com/tradeforge/signalcore/pkg/errors"
)

// ScoringConfig holds every tunable constant of the confidence formula, so
// the scorer itself stays pure and testable in isolation.
type ScoringConfig struct {
	BaseScore             float64 `yaml:"base_score" validate:"gte=0,lte=100"`
	WeakQualityBonus      float64 `yaml:"weak_quality_bonus" validate:"gte=0"`
	ModerateQualityBonus  float64 `yaml:"moderate_quality_bonus" validate:"gte=0"`
	StrongQualityBonus    float64 `yaml:"strong_quality_bonus" validate:"gte=0"`
	StrengthBonusPerPct   float64 `yaml:"strength_bonus_per_pct" validate:"gte=0"`
	StrengthBonusCap      float64 `yaml:"strength_bonus_cap" validate:"gte=0"`
	VolumeConfluenceBonus float64 `yaml:"volume_confluence_bonus" validate:"gte=0"`
	MAAlignmentBonus      float64 `yaml:"ma_alignment_bonus" validate:"gte=0"`
}

// DefaultScoringConfig returns the tuned production constants.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		BaseScore:             40,
		WeakQualityBonus:      5,
		ModerateQualityBonus:  10,
		StrongQualityBonus:    15,
		StrengthBonusPerPct:   5,
		StrengthBonusCap:      15,
		VolumeConfluenceBonus: 20,
		MAAlignmentBonus:      5,
	}
}

// Validate validates the ScoringConfig struct.
func (c *ScoringConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidParameter, "invalid scoring config", err)
	}

	return nil
}

// Input is everything the scorer reads for one (symbol, bar) pair.
type Input struct {
	// Trend is the evaluated trend reading at the bar
	Trend trend.Evaluation
	// Volume is the anomaly detector's output, None when the baseline was undefined
	Volume optional.Option[anomaly.Result]
	// ClosePrice is the bar's close
	ClosePrice float64
	// MA is the moving-average value at the bar for the secondary
	// confirmation, None when undefined
	MA optional.Option[float64]
	// MinConfidence is the configured signal gate
	MinConfidence float64
}

// Outcome is a scored signal candidate.
type Outcome struct {
	// Side follows the confirmed trend direction
	Side types.Side
	// Confidence is the clamped total score in [0, 100]
	Confidence float64
	// VolumeRatio is carried through for the signal record; zero when the
	// anomaly detector had no defined baseline
	VolumeRatio float64
	// VolumeConfluence records whether the volume bonus was applied; the
	// sizer boosts size on it
	VolumeConfluence bool
	// MAAligned records whether the secondary confirmation applied
	MAAligned bool
}

// Score computes the bounded confidence score for one bar. It returns None
// for an unconfirmed trend or a total below the configured minimum: the
// threshold comparison here is the engine's single quality gate.
//
// Evaluation order is fixed: the strength bonus is capped first, all terms
// are summed as float64, the total is clamped to [0, 100], and only then is
// the minimum-confidence gate applied.
func Score(config ScoringConfig, input Input) optional.Option[Outcome] {
	if !input.Trend.Confirmed {
		return optional.None[Outcome]()
	}

	score := config.BaseScore

	switch input.Trend.Quality {
	case types.TrendQualityWeak:
		score += config.WeakQualityBonus
	case types.TrendQualityModerate:
		score += config.ModerateQualityBonus
	case types.TrendQualityStrong:
		score += config.StrongQualityBonus
	}

	score += math.Min(input.Trend.StrengthPct*config.StrengthBonusPerPct, config.StrengthBonusCap)

	outcome := Outcome{
		Side:             types.SideLong,
		Confidence:       0,
		VolumeRatio:      0,
		VolumeConfluence: false,
		MAAligned:        false,
	}

	if input.Trend.Direction == types.TrendBearish {
		outcome.Side = types.SideShort
	}

	if input.Volume.IsSome() {
		result := input.Volume.Unwrap()
		outcome.VolumeRatio = result.Ratio

		if result.Flagged {
			score += config.VolumeConfluenceBonus
			outcome.VolumeConfluence = true
		}
	}

	if maAligned(input) {
		score += config.MAAlignmentBonus
		outcome.MAAligned = true
	}

	outcome.Confidence = clamp(score, 0, 100)

	if outcome.Confidence < input.MinConfidence {
		return optional.None[Outcome]()
	}

	return optional.Some(outcome)
}

// maAligned reports whether the close sits on the trend side of the moving
// average.
func maAligned(input Input) bool {
	if input.MA.IsNone() {
		return false
	}

	ma := input.MA.Unwrap()

	if input.Trend.Direction == types.TrendBullish {
		return input.ClosePrice > ma
	}

	return input.ClosePrice < ma
}

func clamp(value, low, high float64) float64 {
	return math.Max(low, math.Min(high, value))
}
