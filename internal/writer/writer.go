package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"btis/internal/model"
)

// Writer persists the composite index snapshot.
type Writer interface {
	Write(idx *model.CompositeIndex) error
}

// SnapshotWriter writes the snapshot to a single JSON file, replacing the
// previous run's artifact wholesale. There is no history: the file is the
// entire persisted state of the system.
type SnapshotWriter struct {
	Path string
}

// NewSnapshotWriter creates a writer targeting the given file path.
func NewSnapshotWriter(path string) *SnapshotWriter {
	return &SnapshotWriter{Path: path}
}

// Write marshals the index and atomically replaces the artifact: the JSON is
// staged in a temp file and renamed over the destination, so a failed run
// never leaves a partial or corrupt snapshot behind.
func (w *SnapshotWriter) Write(idx *model.CompositeIndex) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(w.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.Path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), w.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
