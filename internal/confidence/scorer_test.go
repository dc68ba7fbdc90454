package confidence

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"
	"github.com/tradeforge/signalcore/internal/anomaly"
	"github.com/tradeforge/signalcore/internal/trend"
	"github.com/tradeforge/signalcore/internal/types"
)

type ScorerTestSuite struct {
	suite.Suite

	config ScoringConfig
}

func TestScorerSuite(t *testing.T) {
	suite.Run(t, new(ScorerTestSuite))
}

func (suite *ScorerTestSuite) SetupTest() {
	suite.config = DefaultScoringConfig()
}

func (suite *ScorerTestSuite) confirmedBullish(strengthPct float64, quality types.TrendQuality) trend.Evaluation {
	return trend.Evaluation{
		Direction:   types.TrendBullish,
		Confirmed:   true,
		StrengthPct: strengthPct,
		Quality:     quality,
		BandValue:   100,
	}
}

func (suite *ScorerTestSuite) TestDefaultConfigValid() {
	config := DefaultScoringConfig()
	suite.NoError(config.Validate())
}

func (suite *ScorerTestSuite) TestConfigValidationRejectsNegativeBonus() {
	config := DefaultScoringConfig()
	config.VolumeConfluenceBonus = -1

	suite.Error(config.Validate())
}

func (suite *ScorerTestSuite) TestConfigValidationRejectsBaseOutOfRange() {
	config := DefaultScoringConfig()
	config.BaseScore = 101

	suite.Error(config.Validate())
}

func (suite *ScorerTestSuite) TestUnconfirmedTrendYieldsNoSignal() {
	input := Input{
		Trend: trend.Evaluation{
			Direction:   types.TrendBullish,
			Confirmed:   false,
			StrengthPct: 5,
			Quality:     types.TrendQualityStrong,
			BandValue:   100,
		},
		Volume:        optional.Some(anomaly.Result{Ratio: 3, Flagged: true}),
		ClosePrice:    105,
		MA:            optional.None[float64](),
		MinConfidence: 0,
	}

	suite.True(Score(suite.config, input).IsNone())
}

func (suite *ScorerTestSuite) TestStrongConfluenceExample() {
	// 2.5% strength, confirmed bullish, 3x volume spike: the canonical
	// full-confluence setup.
	input := Input{
		Trend:         suite.confirmedBullish(2.5, types.TrendQualityStrong),
		Volume:        optional.Some(anomaly.Result{Ratio: 3.0, Flagged: true}),
		ClosePrice:    102.5,
		MA:            optional.None[float64](),
		MinConfidence: 40,
	}

	outcome := Score(suite.config, input)
	suite.True(outcome.IsSome())

	result := outcome.Unwrap()
	suite.Equal(types.SideLong, result.Side)
	// 40 base + 15 strong + 12.5 strength + 20 volume = 87.5
	suite.InDelta(87.5, result.Confidence, 1e-9)
	suite.True(result.VolumeConfluence)
	suite.InDelta(3.0, result.VolumeRatio, 1e-9)
}

func (suite *ScorerTestSuite) TestVolumeBonusIsExactDifference() {
	base := Input{
		Trend:         suite.confirmedBullish(2.5, types.TrendQualityStrong),
		Volume:        optional.Some(anomaly.Result{Ratio: 3.0, Flagged: true}),
		ClosePrice:    102.5,
		MA:            optional.None[float64](),
		MinConfidence: 0,
	}

	withSpike := Score(suite.config, base).Unwrap()

	base.Volume = optional.Some(anomaly.Result{Ratio: 1.2, Flagged: false})
	withoutSpike := Score(suite.config, base).Unwrap()

	suite.InDelta(suite.config.VolumeConfluenceBonus, withSpike.Confidence-withoutSpike.Confidence, 1e-9)
	suite.False(withoutSpike.VolumeConfluence)
	suite.InDelta(1.2, withoutSpike.VolumeRatio, 1e-9)
}

func (suite *ScorerTestSuite) TestMinConfidenceGate() {
	input := Input{
		Trend:         suite.confirmedBullish(0.5, types.TrendQualityWeak),
		Volume:        optional.None[anomaly.Result](),
		ClosePrice:    100.5,
		MA:            optional.None[float64](),
		MinConfidence: 60,
	}

	// 40 base + 5 weak + 2.5 strength = 47.5, below the 60 gate.
	suite.True(Score(suite.config, input).IsNone())

	input.MinConfidence = 47.5
	suite.True(Score(suite.config, input).IsSome())
}

func (suite *ScorerTestSuite) TestStrengthBonusCapped() {
	input := Input{
		Trend:         suite.confirmedBullish(10, types.TrendQualityStrong),
		Volume:        optional.None[anomaly.Result](),
		ClosePrice:    110,
		MA:            optional.None[float64](),
		MinConfidence: 0,
	}

	outcome := Score(suite.config, input).Unwrap()
	// 40 base + 15 strong + 15 capped strength = 70
	suite.InDelta(70.0, outcome.Confidence, 1e-9)
}

func (suite *ScorerTestSuite) TestConfidenceClampedTo100() {
	config := suite.config
	config.BaseScore = 90

	input := Input{
		Trend:         suite.confirmedBullish(10, types.TrendQualityStrong),
		Volume:        optional.Some(anomaly.Result{Ratio: 5, Flagged: true}),
		ClosePrice:    110,
		MA:            optional.Some(100.0),
		MinConfidence: 0,
	}

	outcome := Score(config, input).Unwrap()
	suite.InDelta(100.0, outcome.Confidence, 1e-9)
}

func (suite *ScorerTestSuite) TestBearishSide() {
	input := Input{
		Trend: trend.Evaluation{
			Direction:   types.TrendBearish,
			Confirmed:   true,
			StrengthPct: 1.5,
			Quality:     types.TrendQualityModerate,
			BandValue:   100,
		},
		Volume:        optional.None[anomaly.Result](),
		ClosePrice:    98.5,
		MA:            optional.None[float64](),
		MinConfidence: 0,
	}

	outcome := Score(suite.config, input).Unwrap()
	suite.Equal(types.SideShort, outcome.Side)
}

func (suite *ScorerTestSuite) TestMAAlignmentBonus() {
	input := Input{
		Trend:         suite.confirmedBullish(1.5, types.TrendQualityModerate),
		Volume:        optional.None[anomaly.Result](),
		ClosePrice:    101.5,
		MA:            optional.Some(99.0),
		MinConfidence: 0,
	}

	aligned := Score(suite.config, input).Unwrap()
	suite.True(aligned.MAAligned)

	input.MA = optional.Some(105.0)
	misaligned := Score(suite.config, input).Unwrap()
	suite.False(misaligned.MAAligned)

	suite.InDelta(suite.config.MAAlignmentBonus, aligned.Confidence-misaligned.Confidence, 1e-9)
}

func (suite *ScorerTestSuite) TestBearishMAAlignment() {
	input := Input{
		Trend: trend.Evaluation{
			Direction:   types.TrendBearish,
			Confirmed:   true,
			StrengthPct: 1.5,
			Quality:     types.TrendQualityModerate,
			BandValue:   100,
		},
		Volume:        optional.None[anomaly.Result](),
		ClosePrice:    98.5,
		MA:            optional.Some(102.0),
		MinConfidence: 0,
	}

	outcome := Score(suite.config, input).Unwrap()
	suite.True(outcome.MAAligned)
}

func (suite *ScorerTestSuite) TestDeterministic() {
	input := Input{
		Trend:         suite.confirmedBullish(1.8, types.TrendQualityModerate),
		Volume:        optional.Some(anomaly.Result{Ratio: 2.9, Flagged: true}),
		ClosePrice:    101.8,
		MA:            optional.Some(100.0),
		MinConfidence: 40,
	}

	first := Score(suite.config, input)
	second := Score(suite.config, input)

	suite.Equal(first.Unwrap(), second.Unwrap())
}
