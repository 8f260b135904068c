package scanner

import (
	"errors"
	"strings"
	"testing"

	"BreakoutSentinel/internal/collector"
	"BreakoutSentinel/internal/model"
)

type fakeAnalyzer struct {
	outcomes map[string]model.ScanOutcome
	order    []string
}

func (f *fakeAnalyzer) Analyze(ticker string) model.ScanOutcome {
	f.order = append(f.order, ticker)
	if out, ok := f.outcomes[ticker]; ok {
		return out
	}
	return model.ScanOutcome{Ticker: ticker, Status: model.StatusNoData}
}

type fakeNotifier struct {
	sent []string
	err  error
}

func (f *fakeNotifier) Send(text string) error {
	f.sent = append(f.sent, text)
	return f.err
}

type fakeRecorder struct {
	outcomes []model.ScanOutcome
	alerted  []bool
	alerts   []string
}

func (f *fakeRecorder) RecordOutcome(_ string, out *model.ScanOutcome, alerted bool) error {
	f.outcomes = append(f.outcomes, *out)
	f.alerted = append(f.alerted, alerted)
	return nil
}

func (f *fakeRecorder) RecordAlert(_, ticker, _ string) error {
	f.alerts = append(f.alerts, ticker)
	return nil
}

func (f *fakeRecorder) Close() error { return nil }

func evaluated(ticker string, pctGate, volumeGate, valueGate bool, newsCount int) model.ScanOutcome {
	return model.ScanOutcome{
		Ticker: ticker,
		Status: model.StatusEvaluated,
		Result: &model.AnalysisResult{
			Ticker:     ticker,
			Price:      2.5,
			PctChange:  6.0,
			PctGate:    pctGate,
			VolumeGate: volumeGate,
			ValueGate:  valueGate,
			NewsCount:  newsCount,
		},
	}
}

func TestShouldAlert_TruthTable(t *testing.T) {
	tests := []struct {
		name      string
		pct       bool
		volume    bool
		value     bool
		newsCount int
		want      bool
	}{
		{"all gates open", true, true, true, 0, true},
		{"news substitutes for volume", true, false, true, 1, true},
		{"volume and news both present", true, true, true, 3, true},
		{"no corroboration", true, false, true, 0, false},
		{"pct gate closed", false, true, true, 5, false},
		{"value gate closed", true, true, false, 5, false},
		{"everything closed", false, false, false, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := evaluated("X", tt.pct, tt.volume, tt.value, tt.newsCount)
			if got := ShouldAlert(out.Result); got != tt.want {
				t.Errorf("ShouldAlert = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScan_AlertsOnlyQualifiedResults(t *testing.T) {
	analyzer := &fakeAnalyzer{outcomes: map[string]model.ScanOutcome{
		"AAA": {Ticker: "AAA", Status: model.StatusIneligible},
		"BBB": evaluated("BBB", true, true, true, 0),
		"CCC": {Ticker: "CCC", Status: model.StatusNoData},
		"DDD": evaluated("DDD", true, false, true, 0), // no corroboration
	}}
	nt := &fakeNotifier{}
	rec := &fakeRecorder{}
	s := NewScanner(analyzer, nt, rec)

	s.Scan([]string{"AAA", "BBB", "CCC", "DDD"})

	if len(nt.sent) != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", len(nt.sent))
	}
	if !strings.Contains(nt.sent[0], "BBB") {
		t.Errorf("alert must contain the ticker, got: %s", nt.sent[0])
	}
	if got := strings.Join(analyzer.order, ","); got != "AAA,BBB,CCC,DDD" {
		t.Errorf("tickers must be analyzed in listed order, got %s", got)
	}
	if len(rec.outcomes) != 4 {
		t.Errorf("expected one recorded outcome per ticker, got %d", len(rec.outcomes))
	}
	if len(rec.alerts) != 1 || rec.alerts[0] != "BBB" {
		t.Errorf("expected one recorded alert for BBB, got %v", rec.alerts)
	}
}

func TestScan_NotifierFailureDoesNotAbort(t *testing.T) {
	analyzer := &fakeAnalyzer{outcomes: map[string]model.ScanOutcome{
		"AAA": evaluated("AAA", true, true, true, 0),
		"BBB": evaluated("BBB", true, true, true, 0),
	}}
	nt := &fakeNotifier{err: errors.New("telegram down")}
	rec := &fakeRecorder{}
	s := NewScanner(analyzer, nt, rec)

	s.Scan([]string{"AAA", "BBB"})

	if len(nt.sent) != 2 {
		t.Errorf("delivery failure must not stop the pass, attempted %d sends", len(nt.sent))
	}
	if len(rec.outcomes) != 2 {
		t.Errorf("expected 2 recorded outcomes, got %d", len(rec.outcomes))
	}
}

func TestScan_EmptyWatchlistIsNoOp(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	nt := &fakeNotifier{}
	s := NewScanner(analyzer, nt, &fakeRecorder{})

	s.Scan(nil)

	if len(analyzer.order) != 0 {
		t.Errorf("empty watchlist must analyze nothing, got %d calls", len(analyzer.order))
	}
	if len(nt.sent) != 0 {
		t.Errorf("empty watchlist must send nothing, got %d", len(nt.sent))
	}
}

// End-to-end over the real evaluator: AAA fails the compliance filter and
// costs no data fetch; BBB clears every gate and produces exactly one alert.
func TestScan_EndToEnd(t *testing.T) {
	fetcher := &collector.MockFetcher{
		IntradayData: risingSeries(10, 10.6, 30, 1000),
		Daily:        &model.DailyStats{AvgVolume: 100000, LastClose: 10.5},
	}
	eval := NewEvaluator(
		&fakeFilter{eligible: map[string]bool{"BBB": true}},
		fetcher,
		&fakeNews{},
		defaultParams(),
	)
	nt := &fakeNotifier{}
	rec := &fakeRecorder{}
	s := NewScanner(eval, nt, rec)

	s.Scan([]string{"AAA", "BBB"})

	if fetcher.IntradayCalls != 1 || fetcher.DailyCalls != 1 {
		t.Errorf("only BBB may hit the data ports, got intraday=%d daily=%d",
			fetcher.IntradayCalls, fetcher.DailyCalls)
	}
	if len(nt.sent) != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", len(nt.sent))
	}
	if !strings.Contains(nt.sent[0], "BBB") {
		t.Errorf("alert must name BBB, got: %s", nt.sent[0])
	}
	if rec.outcomes[0].Status != model.StatusIneligible || rec.outcomes[1].Status != model.StatusEvaluated {
		t.Errorf("unexpected recorded statuses: %s, %s", rec.outcomes[0].Status, rec.outcomes[1].Status)
	}
}

func TestScan_NoDataFetchFailureProducesNoAlert(t *testing.T) {
	fetcher := &collector.MockFetcher{
		IntradayData: risingSeries(10, 10.6, 30, 1000),
		DailyErr:     errors.New("daily stats unavailable"),
	}
	eval := NewEvaluator(
		&fakeFilter{eligible: map[string]bool{"BBB": true}},
		fetcher,
		&fakeNews{},
		defaultParams(),
	)
	nt := &fakeNotifier{}
	s := NewScanner(eval, nt, &fakeRecorder{})

	s.Scan([]string{"BBB"})

	if len(nt.sent) != 0 {
		t.Errorf("noData ticker must produce zero notifications, got %d", len(nt.sent))
	}
}
