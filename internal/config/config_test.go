package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing config file must not be an error, got %v", err)
	}

	if cfg.Signals.MinPctChange != 5.0 {
		t.Errorf("MinPctChange = %v, want 5.0", cfg.Signals.MinPctChange)
	}
	if cfg.Signals.VolumeMultiplier != 2.0 {
		t.Errorf("VolumeMultiplier = %v, want 2.0", cfg.Signals.VolumeMultiplier)
	}
	if cfg.Signals.ValueMinUSD != 200000 {
		t.Errorf("ValueMinUSD = %v, want 200000", cfg.Signals.ValueMinUSD)
	}
	if cfg.Signals.WindowBars != 30 || cfg.Signals.SessionMinutes != 390 {
		t.Errorf("window = %d/%d, want 30/390", cfg.Signals.WindowBars, cfg.Signals.SessionMinutes)
	}
	if cfg.Watchlist.Path != "watchlist.txt" {
		t.Errorf("watchlist path = %q, want watchlist.txt", cfg.Watchlist.Path)
	}
	if cfg.RequestTimeout != 15 {
		t.Errorf("request timeout = %d, want 15", cfg.RequestTimeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token-from-env")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("MIN_PCT_CHANGE", "7.5")
	t.Setenv("VALUE_MIN_USD", "500000")
	t.Setenv("FINNHUB_KEY", "fh-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Telegram.BotToken != "token-from-env" || cfg.Telegram.ChatID != "42" {
		t.Errorf("telegram overrides not applied: %+v", cfg.Telegram)
	}
	if cfg.Signals.MinPctChange != 7.5 {
		t.Errorf("MIN_PCT_CHANGE override not applied, got %v", cfg.Signals.MinPctChange)
	}
	if cfg.Signals.ValueMinUSD != 500000 {
		t.Errorf("VALUE_MIN_USD override not applied, got %v", cfg.Signals.ValueMinUSD)
	}
	if cfg.Finnhub.APIKey != "fh-key" {
		t.Errorf("FINNHUB_KEY override not applied, got %q", cfg.Finnhub.APIKey)
	}
}

func TestLoad_YamlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
telegram:
  bot_token: yaml-token
  chat_id: "99"
signals:
  min_pct_change: 3.0
  window_bars: 20
watchlist:
  path: tickers.txt
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Telegram.BotToken != "yaml-token" {
		t.Errorf("bot token = %q, want yaml-token", cfg.Telegram.BotToken)
	}
	if cfg.Signals.MinPctChange != 3.0 {
		t.Errorf("min_pct_change = %v, want 3.0", cfg.Signals.MinPctChange)
	}
	if cfg.Signals.WindowBars != 20 {
		t.Errorf("window_bars = %d, want 20", cfg.Signals.WindowBars)
	}
	if cfg.Watchlist.Path != "tickers.txt" {
		t.Errorf("watchlist path = %q, want tickers.txt", cfg.Watchlist.Path)
	}
	// Untouched fields still get defaults.
	if cfg.Signals.SessionMinutes != 390 {
		t.Errorf("session_minutes default = %d, want 390", cfg.Signals.SessionMinutes)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error without telegram credentials")
	}

	cfg.Telegram.BotToken = "t"
	cfg.Telegram.ChatID = "c"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}
