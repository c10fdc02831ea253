package main

import (
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/natefinch/lumberjack.v2"

	"CandleGrid/internal/collector"
	"CandleGrid/internal/config"
	"CandleGrid/internal/dashboard"
	"CandleGrid/internal/recorder"
)

func main() {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	// Logs go to the rotating file only; stdout belongs to the TUI.
	slog.SetDefault(slog.New(slog.NewTextHandler(&lumberjack.Logger{
		Filename:   cfg.Server.LogFile,
		MaxSize:    25,
		MaxBackups: 10,
		MaxAge:     14,
		Compress:   true,
	}, nil)))

	tickers := cfg.Catalog[:3]
	if v := os.Getenv("TICKERS"); v != "" {
		tickers = nil
		for _, raw := range strings.Split(v, ",") {
			if t := strings.ToUpper(strings.TrimSpace(raw)); t != "" {
				tickers = append(tickers, t)
			}
		}
	}

	end := time.Now().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -365)
	if v := os.Getenv("START_DATE"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			start = t
		}
	}
	if v := os.Getenv("END_DATE"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			end = t
		}
	}

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Database.SQLitePath != "" {
		if sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath); err == nil {
			rec = sr
			defer sr.Close()
		}
	}

	fetcher := newFetcher(cfg)
	col := collector.NewCollector(fetcher, rec, time.Duration(cfg.Cache.TTLMinutes)*time.Minute)
	svc := dashboard.NewService(col, cfg.Catalog, cfg.MaxSelections, cfg.Grid.Columns, cfg.Grid.ChartHeight)

	params := dashboard.Params{
		Tickers:   tickers,
		Start:     start,
		End:       end,
		SMA:       false,
		SMAPeriod: cfg.Defaults.SMAPeriod,
		SR:        true,
		SRWindow:  cfg.Defaults.SRWindow,
		SRLevels:  cfg.Defaults.SRLevels,
		Height:    cfg.Grid.ChartHeight,
	}

	p := tea.NewProgram(newModel(svc, params), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("tui error: %v", err)
	}
}

func newFetcher(cfg *config.Config) collector.Fetcher {
	switch cfg.DataSource.Provider {
	case "alphavantage":
		return collector.NewAlphaVantageFetcher(cfg.DataSource.APIKey, cfg.Proxy)
	case "mock":
		return &collector.MockFetcher{Price: 100}
	default:
		return collector.NewYahooFetcher(cfg.Proxy)
	}
}
