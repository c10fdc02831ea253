package main

import (
	"fmt"
	"math"
	"strings"

	"CandleGrid/internal/model"
)

const yAxisWidth = 10 // " 12345.67 │" minus one

// renderCell paints one grid cell: a titled candlestick chart, or the
// cell's warning when no chart could be composed.
func renderCell(cell model.GridCell, w, h int) string {
	title := titleStyle.Render(cell.Ticker)
	if cell.Chart == nil {
		return title + "\n" + warnStyle.Render(cell.Warning) + strings.Repeat("\n", maxInt(h-2, 1))
	}
	return title + "\n" + renderChart(cell.Chart, w, h-1)
}

func renderChart(spec *model.ChartSpec, w, h int) string {
	chartH := h - 2 // x-axis separator + date line
	if chartH < 3 {
		chartH = 3
	}

	bars := spec.Bars
	maxCols := (w - yAxisWidth - 1) / 2 // each candle occupies 2 chars
	if maxCols < 1 {
		maxCols = 1
	}
	offset := 0
	if len(bars) > maxCols {
		offset = len(bars) - maxCols
		bars = bars[offset:]
	}

	hi, lo := priceRange(bars)
	if hi == lo {
		hi = lo + 1
	}

	cols := len(bars) * 2
	grid := make([][]string, chartH)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	for i, b := range bars {
		renderCandle(grid, b, i*2, chartH, hi, lo)
	}
	drawOverlay(grid, spec.SMA, offset, len(bars), chartH, hi, lo)
	for _, level := range spec.Levels {
		drawLevel(grid, level, chartH, hi, lo)
	}

	var b strings.Builder
	for row := 0; row < chartH; row++ {
		price := rowToPrice(row, chartH, hi, lo)
		b.WriteString(axisStyle.Render(fmt.Sprintf("%8.2f │", price)))
		b.WriteString(strings.Join(grid[row], ""))
		b.WriteByte('\n')
	}

	b.WriteString(axisStyle.Render(strings.Repeat("─", yAxisWidth+cols)))
	b.WriteByte('\n')

	// Date labels: first and last visible bar.
	first := bars[0].Date.Format("2006-01-02")
	last := bars[len(bars)-1].Date.Format("2006-01-02")
	gap := yAxisWidth + cols - len(first) - len(last)
	if gap < 1 {
		b.WriteString(axisStyle.Render(first))
	} else {
		b.WriteString(axisStyle.Render(first + strings.Repeat(" ", gap) + last))
	}
	b.WriteByte('\n')

	return b.String()
}

// renderCandle paints one candle into the grid at column x (2 wide).
func renderCandle(grid [][]string, bar model.Bar, x, chartH int, hi, lo float64) {
	bullish := bar.Close >= bar.Open
	style := bullStyle
	if !bullish {
		style = bearStyle
	}

	bodyTop := priceToRow(math.Max(bar.Open, bar.Close), chartH, hi, lo)
	bodyBot := priceToRow(math.Min(bar.Open, bar.Close), chartH, hi, lo)
	wickTop := priceToRow(bar.High, chartH, hi, lo)
	wickBot := priceToRow(bar.Low, chartH, hi, lo)

	for row := 0; row < chartH; row++ {
		inBody := row >= bodyTop && row <= bodyBot
		inWick := row >= wickTop && row <= wickBot

		switch {
		case inBody:
			grid[row][x] = style.Render("█")
			grid[row][x+1] = style.Render("█")
		case inWick:
			grid[row][x] = wickStyle.Render("│")
		}
	}
}

// drawOverlay marks the SMA value above each visible candle, skipping
// positions inside the warmup window or occupied by a candle body.
func drawOverlay(grid [][]string, sma *model.Overlay, offset, visible, chartH int, hi, lo float64) {
	if sma == nil {
		return
	}
	for i := 0; i < visible; i++ {
		gi := offset + i
		if gi < sma.Start || gi-sma.Start >= len(sma.Values) {
			continue
		}
		row := priceToRow(sma.Values[gi-sma.Start], chartH, hi, lo)
		if row < 0 || row >= chartH {
			continue
		}
		if grid[row][i*2+1] == " " {
			grid[row][i*2+1] = smaStyle.Render("·")
		}
	}
}

// drawLevel draws a dotted horizontal line with its annotation text.
func drawLevel(grid [][]string, level model.PriceLevel, chartH int, hi, lo float64) {
	row := priceToRow(level.Price, chartH, hi, lo)
	if row < 0 || row >= chartH {
		return
	}
	style := supportStyle
	if level.Kind == model.LevelResistance {
		style = resistStyle
	}
	cols := len(grid[row])
	for c := 0; c < cols; c++ {
		if grid[row][c] == " " {
			grid[row][c] = style.Render("┄")
		}
	}
	start := cols - len(level.Label)
	if start < 0 {
		return
	}
	for j, ch := range level.Label {
		grid[row][start+j] = style.Render(string(ch))
	}
}

func priceRange(bars []model.Bar) (hi, lo float64) {
	hi = math.Inf(-1)
	lo = math.Inf(1)
	for _, b := range bars {
		if b.High > hi {
			hi = b.High
		}
		if b.Low < lo {
			lo = b.Low
		}
	}
	return hi, lo
}

func priceToRow(p float64, chartH int, hi, lo float64) int {
	return int(math.Round((hi - p) / (hi - lo) * float64(chartH-1)))
}

func rowToPrice(row, chartH int, hi, lo float64) float64 {
	return hi - float64(row)/float64(chartH-1)*(hi-lo)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
