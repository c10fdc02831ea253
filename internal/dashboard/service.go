// Package dashboard runs the fetch → detect → compose → grid pipeline for
// one render request.
package dashboard

import (
	"fmt"
	"time"

	"CandleGrid/internal/chart"
	"CandleGrid/internal/collector"
	"CandleGrid/internal/grid"
	"CandleGrid/internal/model"
)

// Params is the user-facing configuration surface of a single render.
type Params struct {
	Tickers []string
	Start   time.Time
	End     time.Time

	SMA       bool
	SMAPeriod int

	SR       bool
	SRWindow int
	SRLevels int

	Height int
}

// Parameter bounds, matching the selection widgets of the dashboard UI.
const (
	MinSMAPeriod = 10
	MaxSMAPeriod = 200
	MinSRWindow  = 5
	MaxSRWindow  = 50
	MinSRLevels  = 1
	MaxSRLevels  = 10
)

// Service wires the pipeline together for the delivery surfaces.
type Service struct {
	collector     *collector.Collector
	catalog       []string
	maxSelections int
	columns       int
	defaultHeight int
}

// NewService creates the render service.
func NewService(col *collector.Collector, catalog []string, maxSelections, columns, defaultHeight int) *Service {
	return &Service{
		collector:     col,
		catalog:       catalog,
		maxSelections: maxSelections,
		columns:       columns,
		defaultHeight: defaultHeight,
	}
}

// Catalog returns the selectable ticker list.
func (s *Service) Catalog() []string {
	out := make([]string, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// MaxSelections returns the selection cap.
func (s *Service) MaxSelections() int { return s.maxSelections }

// Columns returns the fixed grid column count.
func (s *Service) Columns() int { return s.columns }

// Render runs one synchronous pipeline pass and returns the dashboard.
//
// Propagation policy: a bad date range or invalid selection blocks the
// whole run with a *CodedError before any fetch. A provider failure or an
// empty dataset is folded into the dashboard as a user-visible message
// with an empty grid. Per-ticker data gaps only affect that ticker's cell.
func (s *Service) Render(p Params) (*model.Dashboard, error) {
	dash := &model.Dashboard{
		Start:   p.Start.Format("2006-01-02"),
		End:     p.End.Format("2006-01-02"),
		Columns: s.columns,
	}

	if len(p.Tickers) == 0 {
		dash.Notice = "select at least one asset to begin plotting"
		return dash, nil
	}

	if !p.Start.Before(p.End) {
		return nil, &CodedError{
			Code:    CodeInvalidDateRange,
			Message: "the start date must be before the end date",
		}
	}
	if err := s.validate(p); err != nil {
		return nil, err
	}

	ds, err := s.collector.Collect(p.Tickers, p.Start, p.End)
	if err != nil {
		// Single attempt per render; downstream sees an empty dataset.
		dash.Error = fmt.Sprintf("error fetching data: %v", err)
		dash.Warning = "no data returned for the selected tickers and date range"
		return dash, nil
	}

	if ds.Empty() {
		dash.Warning = "no data returned for the selected tickers and date range"
		return dash, nil
	}

	dash.Cells = grid.Build(ds, p.Tickers, s.columns, s.chartOptions(p))
	return dash, nil
}

func (s *Service) validate(p Params) error {
	if len(p.Tickers) > s.maxSelections {
		return validationErr(fmt.Sprintf("at most %d tickers may be selected", s.maxSelections))
	}
	seen := make(map[string]bool, len(p.Tickers))
	for _, t := range p.Tickers {
		if !s.inCatalog(t) {
			return validationErr(fmt.Sprintf("unknown ticker: %s", t))
		}
		if seen[t] {
			return validationErr(fmt.Sprintf("duplicate ticker: %s", t))
		}
		seen[t] = true
	}
	if p.SMA && (p.SMAPeriod < MinSMAPeriod || p.SMAPeriod > MaxSMAPeriod) {
		return validationErr(fmt.Sprintf("sma period must be between %d and %d", MinSMAPeriod, MaxSMAPeriod))
	}
	if p.SR {
		if p.SRWindow < MinSRWindow || p.SRWindow > MaxSRWindow {
			return validationErr(fmt.Sprintf("s/r window must be between %d and %d", MinSRWindow, MaxSRWindow))
		}
		if p.SRLevels < MinSRLevels || p.SRLevels > MaxSRLevels {
			return validationErr(fmt.Sprintf("s/r level count must be between %d and %d", MinSRLevels, MaxSRLevels))
		}
	}
	return nil
}

func (s *Service) inCatalog(ticker string) bool {
	for _, t := range s.catalog {
		if t == ticker {
			return true
		}
	}
	return false
}

func (s *Service) chartOptions(p Params) chart.Options {
	opts := chart.Options{Height: p.Height}
	if opts.Height <= 0 {
		opts.Height = s.defaultHeight
	}
	if p.SMA {
		opts.SMA = &chart.SMAOptions{Period: p.SMAPeriod}
	}
	if p.SR {
		opts.SR = &chart.SROptions{Window: p.SRWindow, MaxLevels: p.SRLevels}
	}
	return opts
}
