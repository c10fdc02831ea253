package collector

import (
	"fmt"
	"time"

	"CandleGrid/internal/model"
)

// Fetcher defines the interface for daily-bar market data providers.
// A provider returns an empty slice (not an error) for a symbol that is
// valid but has no bars in the range; errors are reserved for transport
// failures, throttling and unknown symbols.
type Fetcher interface {
	FetchDailyBars(symbol string, start, end time.Time) ([]model.Bar, error)
	Name() string
}

// FetchError carries a provider failure message to the user.
type FetchError struct {
	Provider string
	Message  string
	Err      error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *FetchError) Unwrap() error { return e.Err }
