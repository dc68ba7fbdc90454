package activity

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/tradeforge/signalcore/pkg/errors"
)

type ActivityTestSuite struct {
	suite.Suite

	recorder *MemoryRecorder
}

func TestActivitySuite(t *testing.T) {
	suite.Run(t, new(ActivityTestSuite))
}

func (suite *ActivityTestSuite) SetupTest() {
	suite.recorder = NewMemoryRecorder()
}

func (suite *ActivityTestSuite) TestRecordKeepsOrder() {
	suite.recorder.Record(Entry{Symbol: "BTCUSDT", Level: LevelInfo, Message: "first"})
	suite.recorder.Record(Entry{Symbol: "ETHUSDT", Level: LevelWarn, Message: "second"})

	entries := suite.recorder.Entries()
	suite.Require().Len(entries, 2)
	suite.Equal("first", entries[0].Message)
	suite.Equal("second", entries[1].Message)
}

func (suite *ActivityTestSuite) TestEntriesReturnsCopy() {
	suite.recorder.Record(Entry{Symbol: "BTCUSDT", Level: LevelInfo, Message: "original"})

	entries := suite.recorder.Entries()
	entries[0].Message = "mutated"

	suite.Equal("original", suite.recorder.Entries()[0].Message)
}

func (suite *ActivityTestSuite) TestOnSymbolFailure() {
	cause := errors.New(errors.ErrCodeSeriesFetchFailed, "no data")

	before := time.Now()
	suite.recorder.OnSymbolFailure("SOLUSDT", cause)

	failures := suite.recorder.Failures()
	suite.Require().Len(failures, 1)
	suite.Equal("SOLUSDT", failures[0].Symbol)
	suite.Equal(LevelError, failures[0].Level)
	suite.True(errors.HasCode(failures[0].Err, errors.ErrCodeSeriesFetchFailed))
	suite.False(failures[0].Timestamp.Before(before))
}

func (suite *ActivityTestSuite) TestFailuresFiltersLevels() {
	suite.recorder.Record(Entry{Symbol: "BTCUSDT", Level: LevelInfo, Message: "fine"})
	suite.recorder.OnSymbolFailure("ETHUSDT", errors.New(errors.ErrCodeInsufficientData, "short"))

	suite.Len(suite.recorder.Entries(), 2)
	suite.Len(suite.recorder.Failures(), 1)
}

func (suite *ActivityTestSuite) TestConcurrentRecording() {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			suite.recorder.OnSymbolFailure("BTCUSDT", errors.New(errors.ErrCodeUnknown, "boom"))
		}()
	}
	wg.Wait()

	suite.Len(suite.recorder.Entries(), 20)
}
