package model

// ScanStatus classifies the outcome of analyzing a single ticker.
type ScanStatus string

const (
	StatusIneligible ScanStatus = "INELIGIBLE" // rejected by the compliance filter
	StatusNoData     ScanStatus = "NO_DATA"    // upstream fetch failed or returned nothing usable
	StatusEvaluated  ScanStatus = "EVALUATED"
)

// AnalysisResult is the full per-ticker evaluation produced by the engine.
// Price, Support and Resistance are rounded to 4 decimals, PctChange to 2;
// volume and value fields are integer-truncated.
type AnalysisResult struct {
	Ticker         string
	Price          float64
	PctChange      float64
	RecentVolume   int64 // volume summed over the trailing analysis window
	AvgDailyVolume int64
	ApproxValue    int64 // RecentVolume * Price, truncated
	PctGate        bool
	VolumeGate     bool
	ValueGate      bool
	NewsCount      int
	News           []NewsItem // at most the 2 most recent items
	Support        float64    // min low over the trailing analysis window
	Resistance     float64    // max high over the trailing analysis window
}

// ScanOutcome pairs a ticker with its evaluation status. Result is non-nil
// only when Status is StatusEvaluated.
type ScanOutcome struct {
	Ticker string
	Status ScanStatus
	Result *AnalysisResult
}
