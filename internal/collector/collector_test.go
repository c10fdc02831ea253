package collector

import (
	"errors"
	"testing"
	"time"

	"CandleGrid/internal/model"
)

var (
	testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
)

func testBars(n int, base float64) []model.Bar {
	bars := make([]model.Bar, n)
	for i := range bars {
		p := base + float64(i)
		bars[i] = model.Bar{
			Date: testStart.AddDate(0, 0, i),
			Open: p, High: p + 1, Low: p - 1, Close: p, Volume: 1,
		}
	}
	return bars
}

func TestCollect_CacheHitReturnsSameDataset(t *testing.T) {
	mock := &MockFetcher{Data: map[string][]model.Bar{
		"AAPL": testBars(10, 100),
		"MSFT": testBars(10, 300),
	}}
	c := NewCollector(mock, nil, time.Hour)

	first, err := c.Collect([]string{"AAPL", "MSFT"}, testStart, testEnd)
	if err != nil {
		t.Fatalf("first collect: %v", err)
	}
	second, err := c.Collect([]string{"MSFT", "AAPL"}, testStart, testEnd)
	if err != nil {
		t.Fatalf("second collect: %v", err)
	}

	if first != second {
		t.Error("expected the cached dataset instance on the second call")
	}
	if mock.Calls != 2 {
		t.Errorf("fetcher called %d times, want 2 (one per ticker, once)", mock.Calls)
	}
}

func TestCollect_TTLExpiryRefetches(t *testing.T) {
	mock := &MockFetcher{Data: map[string][]model.Bar{"AAPL": testBars(5, 100)}}
	c := NewCollector(mock, nil, time.Hour)

	clock := testStart
	c.now = func() time.Time { return clock }

	if _, err := c.Collect([]string{"AAPL"}, testStart, testEnd); err != nil {
		t.Fatalf("collect: %v", err)
	}
	clock = clock.Add(2 * time.Hour)
	if _, err := c.Collect([]string{"AAPL"}, testStart, testEnd); err != nil {
		t.Fatalf("collect after expiry: %v", err)
	}

	if mock.Calls != 2 {
		t.Errorf("fetcher called %d times, want 2 (expiry forces refetch)", mock.Calls)
	}
}

func TestCollect_EmptySelectionSkipsProvider(t *testing.T) {
	mock := &MockFetcher{}
	c := NewCollector(mock, nil, time.Hour)

	ds, err := c.Collect(nil, testStart, testEnd)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if !ds.Empty() {
		t.Error("expected an empty dataset for an empty selection")
	}
	if mock.Calls != 0 {
		t.Errorf("fetcher called %d times, want 0", mock.Calls)
	}
}

func TestCollect_ProviderErrorAbortsBatch(t *testing.T) {
	mock := &MockFetcher{Err: errors.New("connection refused")}
	c := NewCollector(mock, nil, time.Hour)

	_, err := c.Collect([]string{"AAPL", "MSFT"}, testStart, testEnd)
	var ferr *FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if mock.Calls != 1 {
		t.Errorf("fetcher called %d times, want 1 (single attempt, no retry)", mock.Calls)
	}
}

func TestCollect_SymbolWithoutBarsIsAbsent(t *testing.T) {
	mock := &MockFetcher{Data: map[string][]model.Bar{
		"AAPL": testBars(10, 100),
		"GONE": nil,
	}}
	c := NewCollector(mock, nil, time.Hour)

	ds, err := c.Collect([]string{"AAPL", "GONE"}, testStart, testEnd)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if !ds.Has("AAPL") {
		t.Error("AAPL should survive the join")
	}
	if ds.Has("GONE") {
		t.Error("a symbol without bars must be absent from the dataset")
	}
}
