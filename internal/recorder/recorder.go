package recorder

import "time"

// FetchRecord describes one dataset-fetch attempt, cached or not.
type FetchRecord struct {
	Tickers  []string
	Start    time.Time
	End      time.Time
	Provider string
	Rows     int
	CacheHit bool
	Duration time.Duration
	Error    string
}

// Recorder persists a fetch audit trail for later inspection.
type Recorder interface {
	RecordFetch(rec *FetchRecord) error
	Close() error
}
