// Package dataset joins per-ticker bar series into a single aligned
// multi-ticker dataset.
package dataset

import (
	"time"

	"CandleGrid/internal/model"
)

// Dataset holds aligned daily bars for a set of tickers. After Join, every
// ticker present in the dataset has bars on exactly the same dates.
type Dataset struct {
	dates  []time.Time
	series map[string][]model.Bar
}

// Join builds a Dataset from independently fetched per-ticker series,
// keeping only dates on which every supplied ticker has a complete bar.
// This strict row-wise completeness filter mirrors a frame-level dropna:
// a single ticker's gap removes that trading day for all tickers. Known
// simplification, kept deliberately; see DESIGN.md before changing it.
func Join(series map[string][]model.Bar) *Dataset {
	ds := &Dataset{series: make(map[string][]model.Bar, len(series))}
	if len(series) == 0 {
		return ds
	}

	// Index each ticker's bars by calendar day.
	byDay := make(map[string]map[string]model.Bar, len(series))
	for ticker, bars := range series {
		idx := make(map[string]model.Bar, len(bars))
		for _, b := range bars {
			idx[dayKey(b.Date)] = b
		}
		byDay[ticker] = idx
	}

	// Walk the first ticker's dates in order and keep the intersection.
	var first string
	for ticker := range series {
		if first == "" || ticker < first {
			first = ticker
		}
	}
	for _, b := range series[first] {
		key := dayKey(b.Date)
		complete := true
		for _, idx := range byDay {
			if _, ok := idx[key]; !ok {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		ds.dates = append(ds.dates, b.Date)
		for ticker, idx := range byDay {
			ds.series[ticker] = append(ds.series[ticker], idx[key])
		}
	}
	if len(ds.dates) == 0 {
		ds.series = make(map[string][]model.Bar)
	}
	return ds
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Has reports whether the dataset contains OHLC bars for the ticker.
func (d *Dataset) Has(ticker string) bool {
	return len(d.series[ticker]) > 0
}

// Slice returns the ticker's aligned bar series, or nil if absent.
func (d *Dataset) Slice(ticker string) []model.Bar {
	return d.series[ticker]
}

// Rows returns the number of aligned trading days.
func (d *Dataset) Rows() int {
	return len(d.dates)
}

// Empty reports whether the join produced zero rows.
func (d *Dataset) Empty() bool {
	return len(d.dates) == 0
}

// Tickers returns the tickers that survived the join.
func (d *Dataset) Tickers() []string {
	out := make([]string, 0, len(d.series))
	for t := range d.series {
		out = append(out, t)
	}
	return out
}
