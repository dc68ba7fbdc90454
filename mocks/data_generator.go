package mocks

import (
	"math"
	"math/rand"
	"time"

	"github.com/tradeforge/signalcore/internal/types"
)

// DataGenerator generates realistic bar series for testing and benchmarking.
type DataGenerator struct {
	rng *rand.Rand
}

// NewDataGenerator creates a new DataGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GeneratorConfig configures how a bar series is generated.
type GeneratorConfig struct {
	// Symbol is the trading symbol (e.g., "BTCUSDT")
	Symbol string
	// StartTime is the beginning of the series
	StartTime time.Time
	// Interval is the duration between each bar
	Interval time.Duration
	// Count is the number of bars to generate
	Count int
	// InitialPrice is the starting price
	InitialPrice float64
	// Volatility controls price movement (0.01 = 1% typical per-bar move)
	Volatility float64
	// Trend is the total drift across the series (-0.01 to 0.01 for
	// bearish to bullish)
	Trend float64
	// VolumeBase is the average volume per bar
	VolumeBase float64
	// VolumeVariance is the variance in volume (0.0 to 1.0)
	VolumeVariance float64
	// SpikeIndex injects a volume spike at this bar when SpikeFactor > 1;
	// negative values target the last bar
	SpikeIndex int
	// SpikeFactor multiplies the base volume at SpikeIndex
	SpikeFactor float64
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Symbol:         "TEST",
		StartTime:      time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
		Interval:       time.Minute,
		Count:          500,
		InitialPrice:   100.0,
		Volatility:     0.002,
		Trend:          0.0,
		VolumeBase:     10000,
		VolumeVariance: 0.3,
		SpikeIndex:     -1,
		SpikeFactor:    0,
	}
}

// Generate creates a Series based on the configuration. Prices follow a
// geometric Brownian motion model; a volume spike is injected when the
// config asks for one.
func (g *DataGenerator) Generate(config GeneratorConfig) types.Series {
	bars := make([]types.Bar, config.Count)
	currentPrice := config.InitialPrice
	currentTime := config.StartTime

	spikeIndex := config.SpikeIndex
	if spikeIndex < 0 {
		spikeIndex = config.Count - 1
	}

	for i := 0; i < config.Count; i++ {
		open := currentPrice

		// Box-Muller transform for a normally distributed step.
		u1 := g.rng.Float64()
		u2 := g.rng.Float64()
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

		priceChange := config.Volatility * z
		drift := config.Trend / float64(config.Count)

		close := open * (1 + priceChange + drift)
		if close <= 0 {
			close = open * 0.99 // Prevent negative prices
		}

		highExtension := math.Abs(g.rng.Float64() * config.Volatility * open * 0.5)
		lowExtension := math.Abs(g.rng.Float64() * config.Volatility * open * 0.5)

		high := math.Max(open, close) + highExtension
		low := math.Min(open, close) - lowExtension
		if low <= 0 {
			low = math.Min(open, close) * 0.99
		}

		volumeVariation := 1.0 + (g.rng.Float64()*2-1)*config.VolumeVariance
		volume := config.VolumeBase * volumeVariation
		if volume < 0 {
			volume = config.VolumeBase * 0.1
		}

		if i == spikeIndex && config.SpikeFactor > 1 {
			volume = config.VolumeBase * config.SpikeFactor
		}

		bars[i] = types.Bar{
			Time:   currentTime,
			Open:   roundToDecimals(open, 4),
			High:   roundToDecimals(high, 4),
			Low:    roundToDecimals(low, 4),
			Close:  roundToDecimals(close, 4),
			Volume: roundToDecimals(volume, 2),
		}

		currentPrice = close
		currentTime = currentTime.Add(config.Interval)
	}

	return types.Series{
		Symbol: config.Symbol,
		Bars:   bars,
	}
}

// GenerateUniverse generates one series per symbol, varying initial price
// and volatility slightly per symbol.
func (g *DataGenerator) GenerateUniverse(symbols []string, baseConfig GeneratorConfig) []types.Series {
	universe := make([]types.Series, 0, len(symbols))

	for _, symbol := range symbols {
		config := baseConfig
		config.Symbol = symbol
		config.InitialPrice = baseConfig.InitialPrice * (0.8 + g.rng.Float64()*0.4)
		config.Volatility = baseConfig.Volatility * (0.8 + g.rng.Float64()*0.4)

		universe = append(universe, g.Generate(config))
	}

	return universe
}

// GenerateTrending is a convenience function for a strongly trending series
// with a volume spike on the last bar, the shape most likely to produce a
// signal.
func GenerateTrending(symbol string, count int, bullish bool) types.Series {
	gen := NewDataGenerator(42) // Fixed seed for reproducibility

	config := DefaultConfig()
	config.Symbol = symbol
	config.Count = count
	config.Trend = 0.5
	if !bullish {
		config.Trend = -0.5
	}
	config.SpikeFactor = 4

	return gen.Generate(config)
}

// roundToDecimals rounds a float64 to the specified number of decimal places.
func roundToDecimals(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}
