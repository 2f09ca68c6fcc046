// Package stats builds and serializes the per-run statistics JSON document a
// scan run produces: totals plus one entry per file processed.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/uuid"
)

// FileStat is one file's contribution to a run's statistics.
type FileStat struct {
	Path              string  `json:"path"`
	CharsProcessed    int     `json:"chars_processed"`
	SentencesDetected int     `json:"sentences_detected"`
	ProcessingTimeMs  int64   `json:"processing_time_ms"`
	CharsPerSec       float64 `json:"chars_per_sec"`
	Status            string  `json:"status"`
	Error             string  `json:"error,omitempty"`
}

// Status values a FileStat may carry.
const (
	StatusSuccess = "success"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// RunStats is the complete per-run aggregate document.
type RunStats struct {
	RunID                  string     `json:"run_id"`
	RunStart               string     `json:"run_start"`
	TotalProcessingTimeMs  int64      `json:"total_processing_time_ms"`
	TotalCharsProcessed    int        `json:"total_chars_processed"`
	TotalSentencesDetected int        `json:"total_sentences_detected"`
	OverallCharsPerSec     float64    `json:"overall_chars_per_sec"`
	FilesProcessed         int        `json:"files_processed"`
	FilesSkipped           int        `json:"files_skipped"`
	FilesFailed            int        `json:"files_failed"`
	FileStats              []FileStat `json:"file_stats"`
}

// Build folds a run's per-file results into a RunStats, stamping it with a
// fresh run_id and the given start time.
func Build(runStart time.Time, elapsed time.Duration, fileStats []FileStat) (RunStats, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return RunStats{}, fmt.Errorf("stats: generating run id: %w", err)
	}

	rs := RunStats{
		RunID:                 id.String(),
		RunStart:              fmt.Sprintf("%d", runStart.Unix()),
		TotalProcessingTimeMs: elapsed.Milliseconds(),
		FileStats:             fileStats,
	}
	for _, fs := range fileStats {
		switch fs.Status {
		case StatusSuccess:
			rs.FilesProcessed++
			rs.TotalCharsProcessed += fs.CharsProcessed
			rs.TotalSentencesDetected += fs.SentencesDetected
		case StatusSkipped:
			rs.FilesSkipped++
		case StatusFailed:
			rs.FilesFailed++
		}
	}
	if elapsed > 0 {
		rs.OverallCharsPerSec = float64(rs.TotalCharsProcessed) / elapsed.Seconds()
	}
	return rs, nil
}

// WriteJSON serializes rs to path as indented JSON.
func (rs RunStats) WriteJSON(path string) error {
	data, err := json.MarshalIndent(rs, "", "  ")
	if err != nil {
		return fmt.Errorf("stats: marshaling run stats: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("stats: writing %s: %w", path, err)
	}
	return nil
}
