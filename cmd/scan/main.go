package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/tradeforge/signalcore/internal/activity"
	"github.com/tradeforge/signalcore/internal/engine"
	"github.com/tradeforge/signalcore/internal/logger"
	"github.com/tradeforge/signalcore/internal/types"
	"github.com/tradeforge/signalcore/internal/version"
	csvprovider "github.com/tradeforge/signalcore/pkg/provider/csv"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// parameterFile is the on-disk shape of a risk parameter file. The
// optional version field pins the file to the binary's config format.
type parameterFile struct {
	Version              string `yaml:"version"`
	engine.RiskParameters `yaml:",inline"`
}

// loadParameters reads the risk parameter file when given, layered over the
// defaults so a partial file is enough.
func loadParameters(configPath string) (engine.RiskParameters, error) {
	file := parameterFile{RiskParameters: engine.DefaultRiskParameters()}

	if configPath == "" {
		return file.RiskParameters, nil
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return file.RiskParameters, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(content, &file); err != nil {
		return file.RiskParameters, fmt.Errorf("failed to parse config file: %w", err)
	}

	if file.Version != "" {
		if err := version.CheckVersionCompatibility(version.GetVersion(), file.Version); err != nil {
			return file.RiskParameters, err
		}
	}

	return file.RiskParameters, nil
}

// progressProvider ticks the progress bar once per fetched symbol.
type progressProvider struct {
	inner *csvprovider.Provider
	bar   *progressbar.ProgressBar
}

func (p *progressProvider) GetSeries(ctx context.Context, symbol string, minBars int) (types.Series, error) {
	defer func() {
		_ = p.bar.Add(1)
	}()

	return p.inner.GetSeries(ctx, symbol, minBars)
}

func scanAction(ctx context.Context, cmd *cli.Command) error {
	dataDir := cmd.String("data")
	configPath := cmd.String("config")
	concurrency := cmd.Int("concurrency")
	symbolsFlag := cmd.String("symbols")

	params, err := loadParameters(configPath)
	if err != nil {
		return err
	}

	if err := params.Validate(); err != nil {
		return err
	}

	provider := csvprovider.NewProvider(dataDir)

	var symbols []string
	if symbolsFlag != "" {
		for _, symbol := range strings.Split(symbolsFlag, ",") {
			symbols = append(symbols, strings.TrimSpace(symbol))
		}
	} else {
		symbols, err = provider.Symbols()
		if err != nil {
			return err
		}
	}

	if len(symbols) == 0 {
		return fmt.Errorf("no symbols to scan in %s", dataDir)
	}

	zapLogger, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	bar := progressbar.Default(int64(len(symbols)))
	bar.Describe(fmt.Sprintf("Scanning %d symbols", len(symbols)))

	analyzer := engine.NewAnalyzer(zapLogger)
	recorder := activity.NewMemoryRecorder()

	signals, err := analyzer.AnalyzeUniverse(ctx, symbols,
		&progressProvider{inner: provider, bar: bar}, params, int(concurrency), recorder)
	if err != nil {
		return err
	}

	_ = bar.Finish()

	for _, failure := range recorder.Failures() {
		log.Printf("skipped %s: %v", failure.Symbol, failure.Err)
	}

	if len(signals) == 0 {
		log.Printf("no signals across %d symbols", len(symbols))
		return nil
	}

	for _, signal := range signals {
		fmt.Printf("%s  %-10s %-5s conf=%5.1f  trend=%s/%s (%.2f%%)  vol=%.2fx  entry=%.4f stop=%.4f qty=%.8f\n",
			signal.Time.Format("2006-01-02 15:04"),
			signal.Symbol,
			signal.Side,
			signal.Confidence,
			signal.TrendDirection,
			signal.TrendQuality,
			signal.TrendStrengthPct,
			signal.VolumeRatio,
			signal.EntryPrice,
			signal.StopPrice,
			signal.Quantity)
	}

	log.Printf("found %d signals across %d symbols", len(signals), len(symbols))

	return nil
}

func schemaAction(_ context.Context, _ *cli.Command) error {
	params := engine.DefaultRiskParameters()

	schema, err := params.GenerateSchemaJSON()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	fmt.Println(schema)

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:    "scan",
		Usage:   "Scan a symbol universe for volume-confirmed trend signals",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "data",
				Aliases:  []string{"d"},
				Usage:    "Directory holding one <SYMBOL>.csv per symbol",
				Value:    "data",
				Required: false,
			},
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "Path to a YAML risk parameter file; defaults apply when omitted",
				Required: false,
			},
			&cli.StringFlag{
				Name:     "symbols",
				Aliases:  []string{"s"},
				Usage:    "Comma-separated symbol list; defaults to every CSV in the data directory",
				Required: false,
			},
			&cli.IntFlag{
				Name:     "concurrency",
				Aliases:  []string{"n"},
				Usage:    "Maximum symbols analyzed in parallel",
				Value:    8,
				Required: false,
			},
		},
		Action: scanAction,
		Commands: []*cli.Command{
			{
				Name:   "schema",
				Usage:  "Print the JSON schema for the risk parameter file",
				Action: schemaAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
