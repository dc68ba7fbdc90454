package types

type IndicatorType string

const (
	IndicatorTypeATR            IndicatorType = "atr"
	IndicatorTypeSuperTrend     IndicatorType = "supertrend"
	IndicatorTypeMA             IndicatorType = "ma"
	IndicatorTypeEMA            IndicatorType = "ema"
	IndicatorTypeVolumeBaseline IndicatorType = "volume_baseline"
)
