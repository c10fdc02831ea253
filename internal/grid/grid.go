// Package grid arranges per-ticker charts into a fixed-column layout.
package grid

import (
	"fmt"

	"CandleGrid/internal/chart"
	"CandleGrid/internal/dataset"
	"CandleGrid/internal/model"
)

// Build places one cell per selected ticker, in selection order, filling
// the grid row-major across the given column count: cell i lands at
// (row i/columns, column i%columns). Tickers without data in the joined
// dataset get a warning cell; nothing is reordered or skipped.
func Build(ds *dataset.Dataset, tickers []string, columns int, opts chart.Options) []model.GridCell {
	if columns < 1 {
		columns = 1
	}
	cells := make([]model.GridCell, 0, len(tickers))
	for i, ticker := range tickers {
		cell := model.GridCell{
			Ticker: ticker,
			Row:    i / columns,
			Column: i % columns,
		}
		if !ds.Has(ticker) {
			cell.Warning = fmt.Sprintf("OHLC data not available for %s in this range", ticker)
		} else {
			spec, warning := chart.Compose(ds.Slice(ticker), ticker, opts)
			cell.Chart = spec
			cell.Warning = warning
		}
		cells = append(cells, cell)
	}
	return cells
}
