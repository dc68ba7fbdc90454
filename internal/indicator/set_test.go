package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type SetTestSuite struct {
	suite.Suite

	registry IndicatorRegistry
}

func TestSetSuite(t *testing.T) {
	suite.Run(t, new(SetTestSuite))
}

func (suite *SetTestSuite) SetupTest() {
	suite.registry = NewIndicatorRegistry()
}

func (suite *SetTestSuite) params() SetParams {
	return SetParams{
		ATRPeriod:      3,
		ATRMultiplier:  1.5,
		VolumeLookback: 4,
		MAPeriod:       4,
	}
}

func (suite *SetTestSuite) TestComputeSetLengths() {
	series := seriesFromBars(trendingUpBars(12))

	set, err := ComputeSet(suite.registry, series, suite.params())
	suite.NoError(err)

	suite.Equal(series.Len(), set.Len())
	suite.Len(set.ATR, series.Len())
	suite.Len(set.SuperTrend, series.Len())
	suite.Len(set.VolumeBaseline, series.Len())
	suite.Len(set.MA, series.Len())
}

func (suite *SetTestSuite) TestComputeSetUndefinedPrefixes() {
	series := seriesFromBars(trendingUpBars(12))

	set, err := ComputeSet(suite.registry, series, suite.params())
	suite.NoError(err)

	// ATR and SuperTrend need ATRPeriod bars, volume and MA need their own
	// lookbacks. No column may substitute zero for missing history.
	suite.True(set.ATR[1].IsNone())
	suite.True(set.ATR[2].IsSome())
	suite.True(set.SuperTrend[1].IsNone())
	suite.True(set.SuperTrend[2].IsSome())
	suite.True(set.VolumeBaseline[2].IsNone())
	suite.True(set.VolumeBaseline[3].IsSome())
	suite.True(set.MA[2].IsNone())
	suite.True(set.MA[3].IsSome())
}

func (suite *SetTestSuite) TestComputeSetVolumeBaseline() {
	bars := trendingUpBars(8)
	bars[7].Volume = 3000 // 3x the flat 1000 baseline contribution of earlier bars

	series := seriesFromBars(bars)

	set, err := ComputeSet(suite.registry, series, suite.params())
	suite.NoError(err)

	// Baseline at the last bar is (1000+1000+1000+3000)/4 = 1500.
	suite.InDelta(1500.0, set.VolumeBaseline[7].Unwrap(), 1e-9)
}

func (suite *SetTestSuite) TestComputeSetZeroVolumeBaselineDefined() {
	bars := trendingUpBars(6)
	for i := range bars {
		bars[i].Volume = 0
	}

	series := seriesFromBars(bars)

	set, err := ComputeSet(suite.registry, series, suite.params())
	suite.NoError(err)

	// A defined zero baseline is the detector's problem, not the column's;
	// the cell must still be Some.
	suite.True(set.VolumeBaseline[5].IsSome())
	suite.InDelta(0.0, set.VolumeBaseline[5].Unwrap(), 1e-9)
}

func (suite *SetTestSuite) TestComputeSetInvalidParams() {
	series := seriesFromBars(trendingUpBars(12))

	params := suite.params()
	params.ATRPeriod = 0

	_, err := ComputeSet(suite.registry, series, params)
	suite.Error(err)
}

func (suite *SetTestSuite) TestComputeSetDeterministic() {
	series := seriesFromBars(trendingUpBars(15))

	first, err := ComputeSet(suite.registry, series, suite.params())
	suite.NoError(err)

	second, err := ComputeSet(suite.registry, series, suite.params())
	suite.NoError(err)

	suite.Equal(first, second)
}
