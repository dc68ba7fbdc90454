package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/tradeforge/signalcore/pkg/errors"
)

type MarketTestSuite struct {
	suite.Suite
}

func TestMarketSuite(t *testing.T) {
	suite.Run(t, new(MarketTestSuite))
}

func (suite *MarketTestSuite) buildSeries(count int) Series {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]Bar, count)

	for i := range bars {
		bars[i] = Bar{
			Time:   start.Add(time.Duration(i) * time.Minute),
			Open:   100,
			High:   101,
			Low:    99,
			Close:  100.5,
			Volume: 1000,
		}
	}

	return Series{Symbol: "BTCUSDT", Bars: bars}
}

func (suite *MarketTestSuite) TestLen() {
	series := suite.buildSeries(5)
	suite.Equal(5, series.Len())
	suite.Equal(0, Series{Symbol: "BTCUSDT"}.Len())
}

func (suite *MarketTestSuite) TestLast() {
	series := suite.buildSeries(3)

	last, ok := series.Last()
	suite.True(ok)
	suite.Equal(series.Bars[2].Time, last.Time)

	_, ok = Series{Symbol: "BTCUSDT"}.Last()
	suite.False(ok)
}

func (suite *MarketTestSuite) TestValidateValid() {
	series := suite.buildSeries(10)
	suite.NoError(series.Validate())
}

func (suite *MarketTestSuite) TestValidateEmptySeries() {
	// An empty series is structurally valid; insufficient history is a
	// separate concern handled by the engine.
	suite.NoError(Series{Symbol: "BTCUSDT"}.Validate())
}

func (suite *MarketTestSuite) TestValidateEmptySymbol() {
	series := suite.buildSeries(3)
	series.Symbol = ""

	err := series.Validate()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidSeries))
}

func (suite *MarketTestSuite) TestValidateDuplicateTimestamp() {
	series := suite.buildSeries(5)
	series.Bars[3].Time = series.Bars[2].Time

	err := series.Validate()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidSeries))
}

func (suite *MarketTestSuite) TestValidateOutOfOrder() {
	series := suite.buildSeries(5)
	series.Bars[1], series.Bars[4] = series.Bars[4], series.Bars[1]

	err := series.Validate()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidSeries))
}

func (suite *MarketTestSuite) TestValidateZeroTimestamp() {
	series := suite.buildSeries(5)
	series.Bars[0].Time = time.Time{}

	err := series.Validate()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidSeries))
}

func (suite *MarketTestSuite) TestValidateHighBelowLow() {
	series := suite.buildSeries(5)
	series.Bars[2].High = 98
	series.Bars[2].Low = 99

	err := series.Validate()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidSeries))
}

func (suite *MarketTestSuite) TestValidateNegativeVolume() {
	series := suite.buildSeries(5)
	series.Bars[4].Volume = -1

	err := series.Validate()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidSeries))
}

func (suite *MarketTestSuite) TestValidateGapsTolerated() {
	series := suite.buildSeries(5)
	// Introduce a gap; only ordering matters, not spacing.
	series.Bars[4].Time = series.Bars[3].Time.Add(7 * 24 * time.Hour)

	suite.NoError(series.Validate())
}
