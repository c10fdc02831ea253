package grid

import (
	"strings"
	"testing"
	"time"

	"CandleGrid/internal/chart"
	"CandleGrid/internal/dataset"
	"CandleGrid/internal/model"
)

func testDataset(tickers ...string) *dataset.Dataset {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make(map[string][]model.Bar)
	for _, ticker := range tickers {
		bars := make([]model.Bar, 5)
		for i := range bars {
			p := 100 + float64(i)
			bars[i] = model.Bar{Date: start.AddDate(0, 0, i), Open: p, High: p + 1, Low: p - 1, Close: p, Volume: 1}
		}
		series[ticker] = bars
	}
	return dataset.Join(series)
}

func TestBuild_RowMajorPlacement(t *testing.T) {
	ds := testDataset("AAPL", "MSFT", "GOOGL", "AMZN", "TSLA")
	cells := Build(ds, []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA"}, 3, chart.Options{Height: 300})

	want := []struct{ row, col int }{
		{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1},
	}
	if len(cells) != len(want) {
		t.Fatalf("got %d cells, want %d", len(cells), len(want))
	}
	for i, w := range want {
		if cells[i].Row != w.row || cells[i].Column != w.col {
			t.Errorf("cell %d at (%d,%d), want (%d,%d)", i, cells[i].Row, cells[i].Column, w.row, w.col)
		}
	}
}

func TestBuild_SingleRowInSelectionOrder(t *testing.T) {
	ds := testDataset("SPY", "QQQ", "V")
	order := []string{"QQQ", "V", "SPY"}
	cells := Build(ds, order, 3, chart.Options{Height: 300})

	for i, ticker := range order {
		if cells[i].Ticker != ticker {
			t.Errorf("cell %d is %s, want %s (selection order preserved)", i, cells[i].Ticker, ticker)
		}
		if cells[i].Row != 0 || cells[i].Column != i {
			t.Errorf("cell %d at (%d,%d), want (0,%d)", i, cells[i].Row, cells[i].Column, i)
		}
	}
}

func TestBuild_MissingTickerGetsWarningCell(t *testing.T) {
	ds := testDataset("AAPL")
	cells := Build(ds, []string{"AAPL", "GONE"}, 3, chart.Options{Height: 300})

	if len(cells) != 2 {
		t.Fatalf("got %d cells, want 2 (no skipping)", len(cells))
	}
	if cells[0].Chart == nil || cells[0].Warning != "" {
		t.Errorf("AAPL cell should hold a chart: %+v", cells[0])
	}
	if cells[1].Chart != nil {
		t.Error("GONE cell should not hold a chart")
	}
	if !strings.Contains(cells[1].Warning, "GONE") {
		t.Errorf("warning = %q, want it to name the ticker", cells[1].Warning)
	}
	if cells[1].Row != 0 || cells[1].Column != 1 {
		t.Errorf("warning cell misplaced at (%d,%d)", cells[1].Row, cells[1].Column)
	}
}
