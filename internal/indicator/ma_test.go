package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/tradeforge/signalcore/internal/types"
)

type MATestSuite struct {
	suite.Suite
}

func TestMASuite(t *testing.T) {
	suite.Run(t, new(MATestSuite))
}

func (suite *MATestSuite) TestNewMA() {
	ma := NewMA()
	suite.NotNil(ma)

	maImpl := ma.(*MA)
	suite.Equal(20, maImpl.period)
}

func (suite *MATestSuite) TestName() {
	ma := NewMA()
	suite.Equal(types.IndicatorTypeMA, ma.Name())
}

func (suite *MATestSuite) TestConfigValid() {
	ma := NewMA()
	maImpl := ma.(*MA)

	err := ma.Config(10)
	suite.NoError(err)
	suite.Equal(10, maImpl.period)
}

func (suite *MATestSuite) TestConfigFloatPeriod() {
	ma := NewMA()
	maImpl := ma.(*MA)

	err := ma.Config(15.0)
	suite.NoError(err)
	suite.Equal(15, maImpl.period)
}

func (suite *MATestSuite) TestConfigInvalid() {
	ma := NewMA()

	suite.Error(ma.Config())
	suite.Error(ma.Config("ten"))
	suite.Error(ma.Config(0))
	suite.Error(ma.Config(-2))
}

func (suite *MATestSuite) TestComputeRollingMean() {
	ma := NewMA()
	suite.NoError(ma.Config(3))

	series := seriesFromBars([]types.Bar{
		{High: 11, Low: 9, Close: 10, Volume: 1000},
		{High: 21, Low: 19, Close: 20, Volume: 1000},
		{High: 31, Low: 29, Close: 30, Volume: 1000},
		{High: 41, Low: 39, Close: 40, Volume: 1000},
		{High: 51, Low: 49, Close: 50, Volume: 1000},
	})

	column, err := ma.Compute(series)
	suite.NoError(err)
	suite.Len(column, 5)

	suite.True(column[0].IsNone())
	suite.True(column[1].IsNone())
	suite.InDelta(20.0, column[2].Unwrap(), 1e-9)
	suite.InDelta(30.0, column[3].Unwrap(), 1e-9)
	suite.InDelta(40.0, column[4].Unwrap(), 1e-9)
}

func (suite *MATestSuite) TestComputeNoLookahead() {
	ma := NewMA()
	suite.NoError(ma.Config(2))

	series := seriesFromBars([]types.Bar{
		{High: 11, Low: 9, Close: 10, Volume: 1000},
		{High: 21, Low: 19, Close: 20, Volume: 1000},
		{High: 31, Low: 29, Close: 30, Volume: 1000},
	})

	column, err := ma.Compute(series)
	suite.NoError(err)

	// Value at index 1 uses bars 0-1 only; changing bar 2 must not affect it.
	first := column[1].Unwrap()

	series.Bars[2].Close = 10_000

	column, err = ma.Compute(series)
	suite.NoError(err)
	suite.InDelta(first, column[1].Unwrap(), 1e-9)
}

func (suite *MATestSuite) TestComputeShorterThanPeriod() {
	ma := NewMA()
	suite.NoError(ma.Config(10))

	series := seriesFromBars([]types.Bar{
		{High: 11, Low: 9, Close: 10, Volume: 1000},
		{High: 21, Low: 19, Close: 20, Volume: 1000},
	})

	column, err := ma.Compute(series)
	suite.NoError(err)
	suite.Len(column, 2)

	for _, cell := range column {
		suite.True(cell.IsNone())
	}
}
