package writer

import "btis/internal/model"

// NoopWriter discards snapshots. Used when no output path is configured.
type NoopWriter struct{}

func NewNoopWriter() *NoopWriter { return &NoopWriter{} }

func (n *NoopWriter) Write(_ *model.CompositeIndex) error { return nil }
