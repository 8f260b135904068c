package model

import "time"

// Bar represents a single OHLCV candlestick.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// DailyStats holds derived daily-level statistics for a ticker.
type DailyStats struct {
	AvgVolume   float64 // mean volume over the trailing 20 sessions
	LastClose   float64
	FloatShares *int64 // nil when the provider does not report it
}

// NewsItem is a single news entry for a ticker, newest first as returned
// by the provider.
type NewsItem struct {
	Headline string
	Summary  string
	Source   string
	URL      string
	Time     time.Time
}
