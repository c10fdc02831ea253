package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"CandleGrid/internal/dashboard"
	"CandleGrid/internal/model"
)

// ── styles ────────────────────────────────────────────────────────────────────

var (
	bullStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#26a641"))
	bearStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e05c5c"))
	wickStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	axisStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	smaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#58a6ff"))
	supportStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#26a641"))
	resistStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e05c5c"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#aaaaaa"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#d29922"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#f85149"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
)

// ── messages ──────────────────────────────────────────────────────────────────

type dashMsg struct {
	dash *model.Dashboard
	err  error
}

// ── model ─────────────────────────────────────────────────────────────────────

type tuiModel struct {
	svc    *dashboard.Service
	params dashboard.Params

	dash      *model.Dashboard
	renderErr error
	loading   bool
	width     int
	height    int
}

func newModel(svc *dashboard.Service, params dashboard.Params) tuiModel {
	return tuiModel{svc: svc, params: params, loading: true}
}

// render runs one full synchronous pipeline pass. Every parameter change
// goes through here, so SMA/SR tweaks always recompute from the current
// dataset (the fetch itself is memoized behind the collector).
func (m tuiModel) render() tea.Cmd {
	svc, params := m.svc, m.params
	return func() tea.Msg {
		dash, err := svc.Render(params)
		return dashMsg{dash: dash, err: err}
	}
}

func (m tuiModel) Init() tea.Cmd {
	return m.render()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dashMsg:
		m.dash = msg.dash
		m.renderErr = msg.err
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, m.render()
		case "s":
			m.params.SMA = !m.params.SMA
		case "]":
			m.params.SMAPeriod = clamp(m.params.SMAPeriod+5, dashboard.MinSMAPeriod, dashboard.MaxSMAPeriod)
		case "[":
			m.params.SMAPeriod = clamp(m.params.SMAPeriod-5, dashboard.MinSMAPeriod, dashboard.MaxSMAPeriod)
		case "x":
			m.params.SR = !m.params.SR
		case "+", "=":
			m.params.SRWindow = clamp(m.params.SRWindow+1, dashboard.MinSRWindow, dashboard.MaxSRWindow)
		case "-":
			m.params.SRWindow = clamp(m.params.SRWindow-1, dashboard.MinSRWindow, dashboard.MaxSRWindow)
		case ".":
			m.params.SRLevels = clamp(m.params.SRLevels+1, dashboard.MinSRLevels, dashboard.MaxSRLevels)
		case ",":
			m.params.SRLevels = clamp(m.params.SRLevels-1, dashboard.MinSRLevels, dashboard.MaxSRLevels)
		default:
			return m, nil
		}
		m.loading = true
		return m, m.render()
	}

	return m, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m tuiModel) View() string {
	if m.width == 0 {
		return "loading…"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')

	switch {
	case m.loading:
		b.WriteString("fetching…\n")
	case m.renderErr != nil:
		b.WriteString(errStyle.Render(m.renderErr.Error()))
		b.WriteByte('\n')
	case m.dash == nil:
		b.WriteString("no dashboard\n")
	default:
		if m.dash.Notice != "" {
			b.WriteString(m.dash.Notice)
			b.WriteByte('\n')
		}
		if m.dash.Error != "" {
			b.WriteString(errStyle.Render(m.dash.Error))
			b.WriteByte('\n')
		}
		if m.dash.Warning != "" {
			b.WriteString(warnStyle.Render(m.dash.Warning))
			b.WriteByte('\n')
		}
		if len(m.dash.Cells) > 0 {
			b.WriteString(m.renderGrid())
		}
	}

	b.WriteString(footerStyle.Render(
		"[q] quit  [r] refresh  [s] sma  [[/]] sma period  [x] s/r  [-/+] s/r window  [,/.] s/r levels"))
	return b.String()
}

func (m tuiModel) renderHeader() string {
	sma := "off"
	if m.params.SMA {
		sma = fmt.Sprintf("%d", m.params.SMAPeriod)
	}
	sr := "off"
	if m.params.SR {
		sr = fmt.Sprintf("w=%d n=%d", m.params.SRWindow, m.params.SRLevels)
	}
	return titleStyle.Render(fmt.Sprintf(
		"CandleGrid  %s → %s  %s  sma:%s  s/r:%s",
		m.params.Start.Format("2006-01-02"), m.params.End.Format("2006-01-02"),
		strings.Join(m.params.Tickers, " "), sma, sr,
	))
}

// renderGrid lays the cells out row-major across the dashboard's fixed
// column count, mirroring the web grid.
func (m tuiModel) renderGrid() string {
	columns := m.dash.Columns
	if columns < 1 {
		columns = 1
	}
	rowCount := (len(m.dash.Cells) + columns - 1) / columns

	cellW := m.width / columns
	// Header, notices and footer take ~3 lines; each cell adds a title line.
	cellH := (m.height - 3) / rowCount
	if cellH < 6 {
		cellH = 6
	}

	var rows []string
	for r := 0; r < rowCount; r++ {
		var rendered []string
		for c := 0; c < columns; c++ {
			i := r*columns + c
			if i >= len(m.dash.Cells) {
				break
			}
			rendered = append(rendered, renderCell(m.dash.Cells[i], cellW, cellH))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}
