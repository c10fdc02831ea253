package dataset

import (
	"testing"
	"time"

	"CandleGrid/internal/model"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func bar(d int, close float64) model.Bar {
	return model.Bar{Date: day(d), Open: close - 1, High: close + 1, Low: close - 2, Close: close, Volume: 1000}
}

func TestJoin_StrictCompleteness(t *testing.T) {
	// MSFT is missing day 4, so day 4 must disappear for AAPL too.
	series := map[string][]model.Bar{
		"AAPL": {bar(3, 10), bar(4, 11), bar(5, 12)},
		"MSFT": {bar(3, 20), bar(5, 22)},
	}
	ds := Join(series)

	if ds.Rows() != 2 {
		t.Fatalf("Rows() = %d, want 2", ds.Rows())
	}
	aapl := ds.Slice("AAPL")
	if len(aapl) != 2 || !aapl[0].Date.Equal(day(3)) || !aapl[1].Date.Equal(day(5)) {
		t.Errorf("AAPL slice = %v, want days 3 and 5", aapl)
	}
	msft := ds.Slice("MSFT")
	if len(msft) != 2 || msft[1].Close != 22 {
		t.Errorf("MSFT slice = %v, want aligned days 3 and 5", msft)
	}
}

func TestJoin_DisjointDatesYieldEmpty(t *testing.T) {
	series := map[string][]model.Bar{
		"AAPL": {bar(3, 10)},
		"MSFT": {bar(4, 20)},
	}
	ds := Join(series)
	if !ds.Empty() {
		t.Errorf("expected empty dataset, got %d rows", ds.Rows())
	}
	if ds.Has("AAPL") || ds.Has("MSFT") {
		t.Error("no ticker should report data after an empty join")
	}
}

func TestJoin_Empty(t *testing.T) {
	ds := Join(nil)
	if !ds.Empty() {
		t.Error("expected empty dataset for nil input")
	}
	if ds.Has("AAPL") {
		t.Error("Has() must be false on an empty dataset")
	}
}

func TestHas(t *testing.T) {
	ds := Join(map[string][]model.Bar{
		"SPY": {bar(3, 500), bar(4, 501)},
	})
	if !ds.Has("SPY") {
		t.Error("Has(SPY) = false, want true")
	}
	if ds.Has("QQQ") {
		t.Error("Has(QQQ) = true, want false")
	}
}
