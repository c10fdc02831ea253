package collector

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"CandleGrid/internal/dataset"
	"CandleGrid/internal/model"
	"CandleGrid/internal/recorder"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Data  map[string][]model.Bar // per-symbol override; generated when absent
	Err   error
	Calls int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(symbol string, start, end time.Time) ([]model.Bar, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Data != nil {
		return m.Data[symbol], nil
	}
	days := int(end.Sub(start).Hours() / 24)
	return GenerateMockBars(m.Price, start, days), nil
}

// GenerateMockBars produces a deterministic drifting series for dev mode.
func GenerateMockBars(basePrice float64, start time.Time, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Date:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

type cacheEntry struct {
	ds        *dataset.Dataset
	fetchedAt time.Time
}

// Collector fetches a ticker set's daily bars, joins them into an aligned
// dataset and memoizes the result by (sorted tickers, start, end) for the
// configured TTL. Expiry is wall-clock-based and evaluated lazily on the
// next call; there is no background sweep.
type Collector struct {
	Fetcher  Fetcher
	Recorder recorder.Recorder
	TTL      time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
	now   func() time.Time
}

// NewCollector creates a Collector with the given memoization TTL.
func NewCollector(fetcher Fetcher, rec recorder.Recorder, ttl time.Duration) *Collector {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Collector{
		Fetcher:  fetcher,
		Recorder: rec,
		TTL:      ttl,
		cache:    make(map[string]cacheEntry),
		now:      time.Now,
	}
}

func cacheKey(tickers []string, start, end time.Time) string {
	sorted := make([]string, len(tickers))
	copy(sorted, tickers)
	sort.Strings(sorted)
	return strings.Join(sorted, ",") + "|" + start.Format("2006-01-02") + "|" + end.Format("2006-01-02")
}

// Collect returns the joined multi-ticker dataset for the selection.
// Identical selections within the TTL window return the cached dataset
// unchanged. An empty ticker set yields an empty dataset without touching
// the provider. A symbol for which the provider has no bars is simply
// absent from the join; a provider failure aborts the whole collect with
// a *FetchError.
func (c *Collector) Collect(tickers []string, start, end time.Time) (*dataset.Dataset, error) {
	if len(tickers) == 0 {
		return dataset.Join(nil), nil
	}

	key := cacheKey(tickers, start, end)

	c.mu.Lock()
	entry, ok := c.cache[key]
	if ok && c.now().Sub(entry.fetchedAt) < c.TTL {
		c.mu.Unlock()
		c.record(tickers, start, end, entry.ds.Rows(), true, 0, nil)
		return entry.ds, nil
	}
	c.mu.Unlock()

	began := c.now()
	series := make(map[string][]model.Bar, len(tickers))
	for _, ticker := range tickers {
		bars, err := c.Fetcher.FetchDailyBars(ticker, start, end)
		if err != nil {
			ferr, isFetch := err.(*FetchError)
			if !isFetch {
				ferr = &FetchError{Provider: c.Fetcher.Name(), Message: fmt.Sprintf("fetch %s", ticker), Err: err}
			}
			c.record(tickers, start, end, 0, false, c.now().Sub(began), ferr)
			return nil, ferr
		}
		if len(bars) == 0 {
			slog.Warn("no bars for symbol", "symbol", ticker, "provider", c.Fetcher.Name())
			continue
		}
		series[ticker] = bars
	}

	ds := dataset.Join(series)
	c.mu.Lock()
	c.cache[key] = cacheEntry{ds: ds, fetchedAt: c.now()}
	c.mu.Unlock()

	c.record(tickers, start, end, ds.Rows(), false, c.now().Sub(began), nil)
	return ds, nil
}

func (c *Collector) record(tickers []string, start, end time.Time, rows int, hit bool, dur time.Duration, ferr error) {
	rec := &recorder.FetchRecord{
		Tickers:  tickers,
		Start:    start,
		End:      end,
		Provider: c.Fetcher.Name(),
		Rows:     rows,
		CacheHit: hit,
		Duration: dur,
	}
	if ferr != nil {
		rec.Error = ferr.Error()
	}
	if err := c.Recorder.RecordFetch(rec); err != nil {
		slog.Warn("fetch record failed", "error", err)
	}
}
