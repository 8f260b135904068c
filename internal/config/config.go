package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SignalParams holds the thresholds and window constants used by the
// signal-evaluation engine. Immutable after Load; injected into the core,
// never read from ambient state.
type SignalParams struct {
	MinPctChange     float64 `yaml:"min_pct_change"`
	VolumeMultiplier float64 `yaml:"volume_multiplier"`
	ValueMinUSD      float64 `yaml:"value_min_usd"`
	// WindowBars is the trailing intraday lookback (bars) shared by the
	// percent-change reference, the volume sum and the support/resistance
	// range. SessionMinutes is the assumed full-session bar count used to
	// pro-rate the daily average volume; 390 matches a regular US session
	// but is kept configurable pending domain review.
	WindowBars     int `yaml:"window_bars"`
	SessionMinutes int `yaml:"session_minutes"`
}

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Finnhub struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"finnhub"`
	Signals   SignalParams `yaml:"signals"`
	Watchlist struct {
		Path string `yaml:"path"`
	} `yaml:"watchlist"`
	Compliance struct {
		ListPath string `yaml:"list_path"`
	} `yaml:"compliance"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	RequestTimeout int    `yaml:"request_timeout"` // seconds, per outbound HTTP call
	Proxy          string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
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
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("FINNHUB_KEY"); v != "" {
		cfg.Finnhub.APIKey = v
	}
	if v := os.Getenv("MIN_PCT_CHANGE"); v != "" {
		if f, err := parseFloat(v); err == nil {
			cfg.Signals.MinPctChange = f
		}
	}
	if v := os.Getenv("VOLUME_MULTIPLIER"); v != "" {
		if f, err := parseFloat(v); err == nil {
			cfg.Signals.VolumeMultiplier = f
		}
	}
	if v := os.Getenv("VALUE_MIN_USD"); v != "" {
		if f, err := parseFloat(v); err == nil {
			cfg.Signals.ValueMinUSD = f
		}
	}
	if v := os.Getenv("WATCHLIST_PATH"); v != "" {
		cfg.Watchlist.Path = v
	}
	if v := os.Getenv("COMPLIANCE_LIST"); v != "" {
		cfg.Compliance.ListPath = v
	}
	if v := os.Getenv("CRON_SCAN"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Signals.MinPctChange == 0 {
		cfg.Signals.MinPctChange = 5.0
	}
	if cfg.Signals.VolumeMultiplier == 0 {
		cfg.Signals.VolumeMultiplier = 2.0
	}
	if cfg.Signals.ValueMinUSD == 0 {
		cfg.Signals.ValueMinUSD = 200000
	}
	if cfg.Signals.WindowBars == 0 {
		cfg.Signals.WindowBars = 30
	}
	if cfg.Signals.SessionMinutes == 0 {
		cfg.Signals.SessionMinutes = 390
	}
	if cfg.Watchlist.Path == "" {
		cfg.Watchlist.Path = "watchlist.txt"
	}
	if cfg.Schedule.ScanCron == "" {
		// Every 15 minutes on weekdays.
		cfg.Schedule.ScanCron = "0 */15 * * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/breakout_sentinel.db"
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 15
	}

	return cfg, nil
}

func parseFloat(s string) (float64, error) {
	var f float64
	_, err := fmt.Sscanf(s, "%f", &f)
	return f, err
}

// Validate checks that all required fields are set and sane.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.Signals.MinPctChange < 0 {
		return fmt.Errorf("signals.min_pct_change must not be negative")
	}
	if c.Signals.WindowBars <= 0 || c.Signals.SessionMinutes <= 0 {
		return fmt.Errorf("signals.window_bars and signals.session_minutes must be positive")
	}
	return nil
}
