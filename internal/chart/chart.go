// Package chart builds render-ready candlestick chart descriptions.
package chart

import (
	"fmt"

	"CandleGrid/internal/calculator"
	"CandleGrid/internal/model"
)

// SMAOptions requests a trailing simple-moving-average overlay.
type SMAOptions struct {
	Period int
}

// SROptions requests support/resistance level annotations.
type SROptions struct {
	Window    int
	MaxLevels int
}

// Options controls what Compose attaches to the chart.
type Options struct {
	Height int
	SMA    *SMAOptions
	SR     *SROptions
}

// Compose builds a ChartSpec for one ticker's aligned bar slice. It returns
// a non-empty warning instead of a spec when the slice has no usable OHLC
// rows; that is a per-ticker condition, not a fatal one. The chart is
// recomputed from scratch on every call so parameter changes always take
// effect on the next render.
func Compose(bars []model.Bar, ticker string, opts Options) (*model.ChartSpec, string) {
	if len(bars) == 0 {
		return nil, fmt.Sprintf("missing OHLC data for %s", ticker)
	}

	spec := &model.ChartSpec{
		Ticker: ticker,
		Height: opts.Height,
		Bars:   bars,
	}

	closes := model.Closes(bars)

	if opts.SMA != nil {
		values, start := calculator.RollingSMA(closes, opts.SMA.Period)
		// A period longer than the series leaves the overlay with zero
		// defined points; the candlesticks still render without it.
		if len(values) > 0 {
			spec.SMA = &model.Overlay{
				Name:   fmt.Sprintf("SMA %d", opts.SMA.Period),
				Period: opts.SMA.Period,
				Start:  start,
				Values: values,
			}
		}
	}

	if opts.SR != nil {
		support, resistance := calculator.DetectLevels(closes, opts.SR.Window, opts.SR.MaxLevels)
		for _, s := range support {
			spec.Levels = append(spec.Levels, model.PriceLevel{
				Kind:  model.LevelSupport,
				Price: s,
				Label: fmt.Sprintf("S: %.2f", s),
			})
		}
		for _, r := range resistance {
			spec.Levels = append(spec.Levels, model.PriceLevel{
				Kind:  model.LevelResistance,
				Price: r,
				Label: fmt.Sprintf("R: %.2f", r),
			})
		}
	}

	return spec, ""
}
