package model

// LevelKind tags a price level as support or resistance.
type LevelKind string

const (
	LevelSupport    LevelKind = "support"
	LevelResistance LevelKind = "resistance"
)

// PriceLevel is a horizontal annotation on a chart.
type PriceLevel struct {
	Kind  LevelKind `json:"kind"`
	Price float64   `json:"price"`
	Label string    `json:"label"` // e.g. "S: 182.40"
}

// Overlay is a line series aligned to the chart's date axis.
// Start is the index of the first defined point; values before it
// are undefined (trailing-window warmup).
type Overlay struct {
	Name   string    `json:"name"` // e.g. "SMA 20"
	Period int       `json:"period"`
	Start  int       `json:"start"`
	Values []float64 `json:"values"`
}

// ChartSpec is a render-ready description of one candlestick chart.
// It is rebuilt from scratch on every render and never cached.
type ChartSpec struct {
	Ticker string       `json:"ticker"`
	Height int          `json:"height"`
	Bars   []Bar        `json:"bars"`
	SMA    *Overlay     `json:"sma,omitempty"`
	Levels []PriceLevel `json:"levels,omitempty"`
}
