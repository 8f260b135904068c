package recorder

import "BreakoutSentinel/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordOutcome(_ string, _ *model.ScanOutcome, _ bool) error { return nil }
func (n *NoopRecorder) RecordAlert(_, _, _ string) error                           { return nil }
func (n *NoopRecorder) Close() error                                               { return nil }
