package engine

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/tradeforge/signalcore/internal/anomaly"
	"github.com/tradeforge/signalcore/internal/confidence"
	"github.com/tradeforge/signalcore/internal/indicator"
	"github.com/tradeforge/signalcore/internal/logger"
	"github.com/tradeforge/signalcore/internal/sizing"
	"github.com/tradeforge/signalcore/internal/trend"
	"github.com/tradeforge/signalcore/internal/types"
	"github.com/tradeforge/signalcore/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SeriesProvider hands the engine the latest bars for a symbol. minBars is
// the smallest series length the engine can analyze with the current
// parameters; providers may return more history than that.
type SeriesProvider interface {
	GetSeries(ctx context.Context, symbol string, minBars int) (types.Series, error)
}

// ActivitySink receives per-symbol analysis failures during a universe
// pass. Failures are reported, never propagated: one bad symbol must not
// abort the pass.
type ActivitySink interface {
	OnSymbolFailure(symbol string, err error)
}

// Analyzer runs the full detection pipeline for one symbol or a universe
// of symbols. It is safe for concurrent use; all per-pass state lives on
// the stack or inside the keyed indicator cache.
type Analyzer struct {
	log      *logger.Logger
	registry indicator.IndicatorRegistry
	scoring  confidence.ScoringConfig
	cache    *indicatorCache
}

// NewAnalyzer builds an Analyzer with the default scoring weights and the
// built-in indicator registry.
func NewAnalyzer(log *logger.Logger) *Analyzer {
	return NewAnalyzerWithScoring(log, confidence.DefaultScoringConfig())
}

// NewAnalyzerWithScoring builds an Analyzer with custom scoring weights.
func NewAnalyzerWithScoring(log *logger.Logger, scoring confidence.ScoringConfig) *Analyzer {
	return &Analyzer{
		log:      log,
		registry: indicator.NewIndicatorRegistry(),
		scoring:  scoring,
		cache:    newIndicatorCache(),
	}
}

// AnalyzeSymbol runs detection, evaluation, scoring and sizing for one
// symbol on closed bars only. It returns None when the symbol simply has
// no signal at the last bar; errors are reserved for invalid input,
// insufficient history, and sizing failures.
func (a *Analyzer) AnalyzeSymbol(series types.Series, params RiskParameters) (optional.Option[types.Signal], error) {
	none := optional.None[types.Signal]()

	if err := params.Validate(); err != nil {
		return none, err
	}

	if err := series.Validate(); err != nil {
		return none, err
	}

	minBars := params.MinBars()
	if series.Len() < minBars {
		return none, errors.Wrap(errors.ErrCodeInsufficientData, "series too short",
			errors.NewInsufficientDataErrorf(minBars, series.Len(), series.Symbol,
				"need %d bars, have %d", minBars, series.Len()))
	}

	lastBar, _ := series.Last()

	setParams := indicator.SetParams{
		ATRPeriod:      params.ATRPeriod,
		ATRMultiplier:  params.ATRMultiplier,
		VolumeLookback: params.VolumeLookback,
		MAPeriod:       params.MAPeriod,
	}

	set, err := a.cache.get(series.Symbol, lastBar.Time, setParams, func() (indicator.Set, error) {
		return indicator.ComputeSet(a.registry, series, setParams)
	})
	if err != nil {
		return none, err
	}

	last := set.Len() - 1

	atrCell := set.ATR[last]
	pointCell := set.SuperTrend[last]
	if atrCell.IsNone() || pointCell.IsNone() {
		// Cannot happen once the minimum-length check passed, unless an
		// indicator regressed.
		return none, errors.Newf(errors.ErrCodeComputationError,
			"indicator columns undefined at last bar for %s", series.Symbol)
	}

	evaluation, err := trend.Evaluate(pointCell.Unwrap(), lastBar.Close)
	if err != nil {
		return none, err
	}

	if !evaluation.Confirmed {
		return none, nil
	}

	detector, err := anomaly.NewDetector(params.VolumeMultiplier)
	if err != nil {
		return none, err
	}

	outcome := confidence.Score(a.scoring, confidence.Input{
		Trend:         evaluation,
		Volume:        detector.Evaluate(lastBar.Volume, set.VolumeBaseline[last]),
		ClosePrice:    lastBar.Close,
		MA:            set.MA[last],
		MinConfidence: params.MinSignalConfidence,
	})
	if outcome.IsNone() {
		return none, nil
	}

	scored := outcome.Unwrap()

	recommendation, err := sizing.Recommend(sizing.Input{
		Equity:           params.Equity,
		RiskPerTrade:     params.RiskPerTrade,
		EntryPrice:       lastBar.Close,
		ATR:              atrCell.Unwrap(),
		ATRMultiplier:    params.ATRMultiplier,
		Side:             scored.Side,
		VolumeConfluence: scored.VolumeConfluence,
		OpenPositions:    params.OpenPositions,
		MaxOpenPositions: params.MaxOpenPositions,
		MaxPositionValue: params.MaxPositionValue,
	})
	if err != nil {
		return none, err
	}

	return optional.Some(types.Signal{
		Symbol:           series.Symbol,
		Side:             scored.Side,
		Confidence:       scored.Confidence,
		VolumeRatio:      scored.VolumeRatio,
		TrendDirection:   evaluation.Direction,
		TrendStrengthPct: evaluation.StrengthPct,
		TrendQuality:     evaluation.Quality,
		EntryPrice:       lastBar.Close,
		StopPrice:        recommendation.StopPrice,
		Quantity:         recommendation.Quantity,
		Time:             lastBar.Time,
	}), nil
}

// AnalyzeUniverse runs AnalyzeSymbol across symbols with at most
// concurrencyLimit symbols in flight. Per-symbol failures are logged and
// reported to sink (when non-nil) and never abort the pass; the returned
// slice holds only the symbols that produced a signal, ordered by symbol.
// An invalid parameter snapshot is the one fatal condition.
func (a *Analyzer) AnalyzeUniverse(ctx context.Context, symbols []string, provider SeriesProvider, params RiskParameters, concurrencyLimit int, sink ActivitySink) ([]types.Signal, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if concurrencyLimit <= 0 {
		concurrencyLimit = 1
	}

	passID := uuid.NewString()
	a.log.Info("starting analysis pass",
		zap.String("pass_id", passID),
		zap.Int("symbols", len(symbols)),
		zap.Int("concurrency", concurrencyLimit))

	var (
		mu      sync.Mutex
		signals []types.Signal
	)

	group := errgroup.Group{}
	group.SetLimit(concurrencyLimit)

	minBars := params.MinBars()

	for _, symbol := range symbols {
		if ctx.Err() != nil {
			break
		}

		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			series, err := provider.GetSeries(ctx, symbol, minBars)
			if err != nil {
				a.reportFailure(passID, symbol, errors.Wrapf(errors.ErrCodeSeriesFetchFailed, err,
					"fetching series for %s", symbol), sink)
				return nil
			}

			signal, err := a.AnalyzeSymbol(series, params)
			if err != nil {
				a.reportFailure(passID, symbol, err, sink)
				return nil
			}

			if signal.IsNone() {
				return nil
			}

			mu.Lock()
			signals = append(signals, signal.Unwrap())
			mu.Unlock()

			return nil
		})
	}

	// Workers never return errors; Wait only fences completion.
	_ = group.Wait()

	sort.Slice(signals, func(i, j int) bool {
		return signals[i].Symbol < signals[j].Symbol
	})

	a.log.Info("analysis pass finished",
		zap.String("pass_id", passID),
		zap.Int("signals", len(signals)))

	return signals, nil
}

func (a *Analyzer) reportFailure(passID, symbol string, err error, sink ActivitySink) {
	a.log.Warn("symbol analysis failed",
		zap.String("pass_id", passID),
		zap.String("symbol", symbol),
		zap.Error(err))

	if sink != nil {
		sink.OnSymbolFailure(symbol, err)
	}
}
