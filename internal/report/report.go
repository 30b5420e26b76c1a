// Package report writes a machine-readable summary of one fitting run,
// so scripts can act on "close enough" outcomes without parsing the
// human progress output.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Report is the top-level JSON document written next to (or instead
// of reading) the human summary.
type Report struct {
	GeneratedAt string   `json:"generated_at"`
	Input       FileInfo `json:"input"`
	Output      FileInfo `json:"output"`
	Format      string   `json:"format"`
	Quality     int      `json:"quality"` // quality for lossy, compression level for png
	TargetBytes int64    `json:"target_bytes"`
	Rounds      int      `json:"rounds"`
	MetTarget   bool     `json:"met_target"`
}

// FileInfo describes one side of the run.
type FileInfo struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"`
	Hash   string `json:"hash,omitempty"` // xxhash64 of the bytes, hex
}

// New creates a report stamped with the current time.
func New() *Report {
	return &Report{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// WriteJSON serializes the report to a JSON file.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
