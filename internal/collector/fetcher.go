package collector

import "BreakoutSentinel/internal/model"

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchIntradayBars returns roughly two sessions of 1-minute bars,
	// oldest first. An empty slice and an error are distinct outcomes:
	// both mean "no data" to the caller, but only the error is logged
	// as a fetch fault.
	FetchIntradayBars(symbol string) ([]model.Bar, error)
	// FetchDailyStats derives daily-level statistics from a trailing
	// ~30-session window.
	FetchDailyStats(symbol string) (*model.DailyStats, error)
	Name() string
}
