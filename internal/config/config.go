package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		BindAddr string `yaml:"bind_addr"`
		LogLevel string `yaml:"log_level"`
		LogFile  string `yaml:"log_file"`
	} `yaml:"server"`
	Catalog       []string `yaml:"catalog"`
	MaxSelections int      `yaml:"max_selections"`
	Grid          struct {
		Columns     int `yaml:"columns"`
		ChartHeight int `yaml:"chart_height"`
	} `yaml:"grid"`
	Cache struct {
		TTLMinutes int `yaml:"ttl_minutes"`
	} `yaml:"cache"`
	DataSource struct {
		Provider string `yaml:"provider"` // yahoo | alphavantage | mock
		APIKey   string `yaml:"api_key"`
	} `yaml:"data_source"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Defaults struct {
		SMAPeriod int `yaml:"sma_period"`
		SRWindow  int `yaml:"sr_window"`
		SRLevels  int `yaml:"sr_levels"`
	} `yaml:"defaults"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; defaults fill the gaps.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("CANDLEGRID_BIND_ADDR"); v != "" {
		cfg.Server.BindAddr = v
	}
	if v := os.Getenv("CANDLEGRID_LOG_LEVEL"); v != "" {
		cfg.Server.LogLevel = v
	}
	if v := os.Getenv("CANDLEGRID_LOG_FILE"); v != "" {
		cfg.Server.LogFile = v
	}
	if v := os.Getenv("CANDLEGRID_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CACHE_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Cache.TTLMinutes = n
		}
	}

	// Defaults
	if cfg.Server.BindAddr == "" {
		cfg.Server.BindAddr = "127.0.0.1:8432"
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Server.LogFile == "" {
		cfg.Server.LogFile = "logs/candlegrid.log"
	}
	if len(cfg.Catalog) == 0 {
		cfg.Catalog = []string{
			"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA",
			"NVDA", "JPM", "V", "SPY", "QQQ",
		}
	}
	if cfg.MaxSelections == 0 {
		cfg.MaxSelections = 9
	}
	if cfg.Grid.Columns == 0 {
		cfg.Grid.Columns = 3
	}
	if cfg.Grid.ChartHeight == 0 {
		cfg.Grid.ChartHeight = 300
	}
	if cfg.Cache.TTLMinutes == 0 {
		cfg.Cache.TTLMinutes = 60
	}
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if cfg.Defaults.SMAPeriod == 0 {
		cfg.Defaults.SMAPeriod = 20
	}
	if cfg.Defaults.SRWindow == 0 {
		cfg.Defaults.SRWindow = 20
	}
	if cfg.Defaults.SRLevels == 0 {
		cfg.Defaults.SRLevels = 3
	}

	return cfg, nil
}

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case "yahoo", "mock":
	case "alphavantage":
		if c.DataSource.APIKey == "" {
			return fmt.Errorf("data_source.api_key is required for the alphavantage provider")
		}
	default:
		return fmt.Errorf("unknown data_source.provider %q", c.DataSource.Provider)
	}
	if c.MaxSelections < 1 || c.MaxSelections > 9 {
		return fmt.Errorf("max_selections must be between 1 and 9")
	}
	if c.Grid.Columns < 1 {
		return fmt.Errorf("grid.columns must be positive")
	}
	if c.Cache.TTLMinutes < 1 {
		return fmt.Errorf("cache.ttl_minutes must be positive")
	}
	return nil
}
