package scanner

import (
	"log"
	"time"

	"BreakoutSentinel/internal/calculator"
	"BreakoutSentinel/internal/collector"
	"BreakoutSentinel/internal/config"
	"BreakoutSentinel/internal/filter"
	"BreakoutSentinel/internal/model"
	"BreakoutSentinel/internal/news"
)

// newsWindow is how far back recent news is considered.
const newsWindow = 24 * time.Hour

// Evaluator turns a ticker symbol into a ScanOutcome. Every upstream fault
// resolves to StatusIneligible or StatusNoData; nothing escapes Analyze.
type Evaluator struct {
	Filter  filter.Filter
	Fetcher collector.Fetcher
	News    news.Provider
	Params  config.SignalParams
}

// NewEvaluator creates an Evaluator with immutable signal parameters.
func NewEvaluator(f filter.Filter, fetcher collector.Fetcher, np news.Provider, params config.SignalParams) *Evaluator {
	return &Evaluator{Filter: f, Fetcher: fetcher, News: np, Params: params}
}

// Analyze runs the full per-ticker pipeline: eligibility check, intraday
// pull, metric derivation, daily stats, gate evaluation, news lookup and
// support/resistance. The eligibility check comes first so rejected tickers
// never cost a network call.
func (e *Evaluator) Analyze(ticker string) model.ScanOutcome {
	if !e.Filter.IsEligible(ticker) {
		return model.ScanOutcome{Ticker: ticker, Status: model.StatusIneligible}
	}

	bars, err := e.Fetcher.FetchIntradayBars(ticker)
	if err != nil {
		log.Printf("[WARN] %s: intraday fetch failed: %v", ticker, err)
		return noData(ticker)
	}
	if len(bars) == 0 {
		log.Printf("[INFO] %s: empty intraday series, skipping", ticker)
		return noData(ticker)
	}

	last := bars[len(bars)-1].Close
	pct, err := calculator.PercentChange(bars, e.Params.WindowBars)
	if err != nil {
		log.Printf("[WARN] %s: percent change: %v", ticker, err)
		return noData(ticker)
	}

	stats, err := e.Fetcher.FetchDailyStats(ticker)
	if err != nil {
		log.Printf("[WARN] %s: daily stats fetch failed: %v", ticker, err)
		return noData(ticker)
	}
	if stats == nil {
		log.Printf("[WARN] %s: no daily stats returned", ticker)
		return noData(ticker)
	}

	recentVol, err := calculator.SumVolume(bars, e.Params.WindowBars)
	if err != nil {
		log.Printf("[WARN] %s: volume sum: %v", ticker, err)
		return noData(ticker)
	}
	recentVolume := int64(recentVol)
	approxValue := int64(float64(recentVolume) * last)

	// The daily average covers a full session; scale it down to what the
	// trailing window is expected to carry before comparing.
	sessionScale := float64(e.Params.SessionMinutes) / float64(e.Params.WindowBars)
	pctGate := pct >= e.Params.MinPctChange
	volumeGate := float64(recentVolume) >= stats.AvgVolume*e.Params.VolumeMultiplier/sessionScale
	valueGate := float64(approxValue) >= e.Params.ValueMinUSD

	// News is corroborating only: a feed failure means zero items, never a
	// skipped ticker.
	now := time.Now()
	items, err := e.News.RecentNews(ticker, now.Add(-newsWindow), now)
	if err != nil {
		log.Printf("[WARN] %s: news fetch failed, treating as none: %v", ticker, err)
		items = nil
	}

	resistance, support, err := calculator.TrailingRange(bars, e.Params.WindowBars)
	if err != nil {
		log.Printf("[WARN] %s: trailing range: %v", ticker, err)
		return noData(ticker)
	}

	newsCount := len(items)
	if newsCount > 2 {
		items = items[:2]
	}

	return model.ScanOutcome{
		Ticker: ticker,
		Status: model.StatusEvaluated,
		Result: &model.AnalysisResult{
			Ticker:         ticker,
			Price:          calculator.Round(last, 4),
			PctChange:      calculator.Round(pct, 2),
			RecentVolume:   recentVolume,
			AvgDailyVolume: int64(stats.AvgVolume),
			ApproxValue:    approxValue,
			PctGate:        pctGate,
			VolumeGate:     volumeGate,
			ValueGate:      valueGate,
			NewsCount:      newsCount,
			News:           items,
			Support:        calculator.Round(support, 4),
			Resistance:     calculator.Round(resistance, 4),
		},
	}
}

func noData(ticker string) model.ScanOutcome {
	return model.ScanOutcome{Ticker: ticker, Status: model.StatusNoData}
}
