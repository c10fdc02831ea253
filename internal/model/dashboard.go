package model

// GridCell is one slot of the dashboard grid. Exactly one of Chart or
// Warning is set.
type GridCell struct {
	Ticker  string     `json:"ticker"`
	Row     int        `json:"row"`
	Column  int        `json:"column"`
	Chart   *ChartSpec `json:"chart,omitempty"`
	Warning string     `json:"warning,omitempty"`
}

// Dashboard is the full result of one render run.
type Dashboard struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Columns int    `json:"columns"`

	// Notice is informational (e.g. empty selection), Error carries a
	// failed-fetch message, Warning flags an empty dataset. All three are
	// user-visible; cells may be empty when any of them is set.
	Notice  string `json:"notice,omitempty"`
	Error   string `json:"error,omitempty"`
	Warning string `json:"warning,omitempty"`

	Cells []GridCell `json:"cells"`
}
