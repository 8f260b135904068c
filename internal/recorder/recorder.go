package recorder

import "BreakoutSentinel/internal/model"

// Recorder persists an audit trail of scan outcomes and sent alerts.
// It is write-only from the scan path: decisions never consult history.
type Recorder interface {
	RecordOutcome(runID string, out *model.ScanOutcome, alerted bool) error
	RecordAlert(runID, ticker, message string) error
	Close() error
}
