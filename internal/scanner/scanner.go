package scanner

import (
	"log"

	"github.com/google/uuid"

	"BreakoutSentinel/internal/model"
	"BreakoutSentinel/internal/notifier"
	"BreakoutSentinel/internal/recorder"
)

// Analyzer produces a per-ticker scan outcome.
type Analyzer interface {
	Analyze(ticker string) model.ScanOutcome
}

// Notifier delivers a formatted alert. Delivery is best-effort.
type Notifier interface {
	Send(text string) error
}

// Scanner drives one sequential pass over the watchlist and fires alerts.
type Scanner struct {
	Analyzer Analyzer
	Notifier Notifier
	Recorder recorder.Recorder
}

// NewScanner creates a Scanner.
func NewScanner(a Analyzer, n Notifier, rec recorder.Recorder) *Scanner {
	return &Scanner{Analyzer: a, Notifier: n, Recorder: rec}
}

// ShouldAlert is the core decision rule: momentum and value floor are
// mandatory; either elevated volume or the presence of recent news
// corroborates the move.
func ShouldAlert(r *model.AnalysisResult) bool {
	return r.PctGate && (r.VolumeGate || r.NewsCount > 0) && r.ValueGate
}

// Scan processes tickers strictly in listed order. No ticker's failure
// aborts the pass, and notification failures are swallowed.
func (s *Scanner) Scan(tickers []string) {
	if len(tickers) == 0 {
		log.Println("[INFO] watchlist empty, nothing to scan")
		return
	}

	runID := uuid.NewString()
	log.Printf("[INFO] scan %s: %d tickers", runID, len(tickers))

	alerts := 0
	for _, ticker := range tickers {
		out := s.Analyzer.Analyze(ticker)

		alerted := false
		switch out.Status {
		case model.StatusIneligible:
			log.Printf("[INFO] %s: not eligible, skipping", ticker)
		case model.StatusNoData:
			log.Printf("[INFO] %s: no data, skipping", ticker)
		case model.StatusEvaluated:
			if ShouldAlert(out.Result) {
				alerted = true
				alerts++
				msg := notifier.FormatAlert(out.Result)
				if err := s.Notifier.Send(msg); err != nil {
					log.Printf("[ERROR] %s: alert delivery failed: %v", ticker, err)
				} else if err := s.Recorder.RecordAlert(runID, ticker, msg); err != nil {
					log.Printf("[ERROR] %s: record alert: %v", ticker, err)
				}
			}
		}

		if err := s.Recorder.RecordOutcome(runID, &out, alerted); err != nil {
			log.Printf("[ERROR] %s: record outcome: %v", ticker, err)
		}
	}

	log.Printf("[INFO] scan %s finished: %d alerts", runID, alerts)
}
