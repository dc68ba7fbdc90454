package types

import "time"

type Side string

const (
	// SideLong is a signal to open or add to a long position
	SideLong Side = "long"
	// SideShort is a signal to open or add to a short position
	SideShort Side = "short"
)

type TrendDirection string

const (
	// TrendBullish means the SuperTrend recurrence is in its bullish state
	TrendBullish TrendDirection = "bullish"
	// TrendBearish means the SuperTrend recurrence is in its bearish state
	TrendBearish TrendDirection = "bearish"
)

type TrendQuality string

const (
	// TrendQualityWeak is a trend strength below 1% of the band value
	TrendQualityWeak TrendQuality = "weak"
	// TrendQualityModerate is a trend strength between 1% and 2%
	TrendQualityModerate TrendQuality = "moderate"
	// TrendQualityStrong is a trend strength above 2%
	TrendQualityStrong TrendQuality = "strong"
)

// Signal is one directional trading recommendation for a (symbol, bar) pair.
// Signals are immutable; the engine never retains them after a pass returns.
type Signal struct {
	// Symbol is the trading symbol the signal applies to
	Symbol string
	// Side is the recommended direction
	Side Side
	// Confidence is the combined confluence score, always in [0, 100]
	Confidence float64
	// VolumeRatio is current volume over its rolling baseline
	VolumeRatio float64
	// TrendDirection is the confirmed SuperTrend direction
	TrendDirection TrendDirection
	// TrendStrengthPct is the close's distance from the active band, in percent
	TrendStrengthPct float64
	// TrendQuality is the discretized strength tier
	TrendQuality TrendQuality
	// EntryPrice is the close of the signal bar
	EntryPrice float64
	// StopPrice is the ATR-derived suggested stop
	StopPrice float64
	// Quantity is the recommended trade size
	Quantity float64
	// Time is the timestamp of the signal bar
	Time time.Time
}
