// Package csv loads bar series from per-symbol CSV files. A data directory
// holds one <SYMBOL>.csv per symbol with time,open,high,low,close,volume
// columns; timestamps are RFC3339.
package csv

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/tradeforge/signalcore/internal/types"
	"github.com/tradeforge/signalcore/pkg/errors"
)

// Provider reads series from a directory of per-symbol CSV files.
type Provider struct {
	dataDir string
}

// NewProvider builds a Provider rooted at dataDir.
func NewProvider(dataDir string) *Provider {
	return &Provider{
		dataDir: dataDir,
	}
}

// GetSeries loads the full series for symbol from <dataDir>/<symbol>.csv.
// minBars is only a hint; the file's bars are returned as stored, and short
// files are left for the analyzer's own history check to reject.
func (p *Provider) GetSeries(ctx context.Context, symbol string, minBars int) (types.Series, error) {
	if err := ctx.Err(); err != nil {
		return types.Series{}, err
	}

	filePath := filepath.Join(p.dataDir, symbol+".csv")

	csvFile, err := os.Open(filePath)
	if err != nil {
		return types.Series{}, errors.Wrapf(errors.ErrCodeSeriesFetchFailed, err,
			"opening series file for %s", symbol)
	}
	defer csvFile.Close()

	var bars []types.Bar
	if err := gocsv.UnmarshalFile(csvFile, &bars); err != nil {
		return types.Series{}, errors.Wrapf(errors.ErrCodeSeriesFetchFailed, err,
			"decoding series file for %s", symbol)
	}

	return types.Series{
		Symbol: symbol,
		Bars:   bars,
	}, nil
}

// Symbols lists the symbols available in the data directory, one per
// *.csv file.
func (p *Provider) Symbols() ([]string, error) {
	entries, err := os.ReadDir(p.dataDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSeriesFetchFailed, "reading data directory", err)
	}

	var symbols []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if filepath.Ext(name) != ".csv" {
			continue
		}

		symbols = append(symbols, name[:len(name)-len(".csv")])
	}

	return symbols, nil
}
