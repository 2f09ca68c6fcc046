// Package dispatch runs detector scans over a stream of corpus files with a
// bounded amount of concurrency, writing each result to a sink and folding
// per-file outcomes into run statistics.
package dispatch

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/textseams/seams"
	"github.com/textseams/seams/internal/corpus"
	"github.com/textseams/seams/internal/incremental"
	"github.com/textseams/seams/internal/sink"
	"github.com/textseams/seams/internal/stats"
)

// Options configures one dispatch run.
type Options struct {
	// Concurrency bounds the number of files scanned at once. Zero or
	// negative means unbounded.
	Concurrency int
	// FailFast stops launching new work and returns the first file error
	// instead of recording it and continuing.
	FailFast bool
}

// Run consumes files from a corpus walk, scanning each with det and writing
// its sentences to sk, skipping any file the cache already marks complete.
// Results are returned in the order files arrived from the channel
// regardless of which worker finished first. Each successfully written file
// is recorded in cache in memory only; on a non-nil error under FailFast the
// caller must not save the cache. logger receives one entry
// per file as it completes, ahead of the aggregate RunStats the caller
// builds once every file has been accounted for.
func Run(ctx context.Context, det *seams.Detector, files <-chan corpus.Result, cache *incremental.Cache, sk sink.Sink, opts Options, logger logrus.FieldLogger) ([]stats.FileStat, error) {
	eg, egCtx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		eg.SetLimit(opts.Concurrency)
	}

	type ordered struct {
		idx int
		fs  stats.FileStat
	}

	var (
		mu      sync.Mutex
		results []ordered
	)

	idx := 0
consume:
	for {
		select {
		case <-egCtx.Done():
			break consume
		case r, ok := <-files:
			if !ok {
				break consume
			}
			i := idx
			idx++
			fileID := i + 1
			r := r
			eg.Go(func() error {
				fs := processOne(egCtx, det, r, cache, sk, fileID)
				logOutcome(logger, fs)

				mu.Lock()
				results = append(results, ordered{i, fs})
				mu.Unlock()

				if opts.FailFast && fs.Status == stats.StatusFailed {
					return fmt.Errorf("%s: %s", fs.Path, fs.Error)
				}
				return nil
			})
		}
	}

	err := eg.Wait()

	sort.Slice(results, func(a, b int) bool { return results[a].idx < results[b].idx })
	out := make([]stats.FileStat, len(results))
	for i, o := range results {
		out[i] = o.fs
	}
	return out, err
}

func logOutcome(logger logrus.FieldLogger, fs stats.FileStat) {
	switch fs.Status {
	case stats.StatusFailed:
		logger.WithFields(logrus.Fields{"path": fs.Path, "error": fs.Error}).Warn("dispatch: file failed")
	case stats.StatusSkipped:
		logger.WithFields(logrus.Fields{"path": fs.Path}).Debug("dispatch: file skipped")
	default:
		logger.WithFields(logrus.Fields{
			"path":      fs.Path,
			"sentences": fs.SentencesDetected,
		}).Debug("dispatch: file processed")
	}
}

func processOne(ctx context.Context, det *seams.Detector, r corpus.Result, cache *incremental.Cache, sk sink.Sink, fileID int) stats.FileStat {
	if r.Err != nil {
		return stats.FileStat{Status: stats.StatusFailed, Error: r.Err.Error()}
	}

	path := r.File.Path
	if cache.Skip(path) {
		return stats.FileStat{Path: path, Status: stats.StatusSkipped}
	}

	start := time.Now()
	sentences := det.Scan(r.File.Data)
	elapsed := time.Since(start)

	if err := sk.WriteFile(ctx, sink.FileRecord{FileID: fileID, Path: path}, sentences); err != nil {
		return stats.FileStat{
			Path: path, Status: stats.StatusFailed,
			Error: fmt.Errorf("dispatch: writing sink output for %s: %w", path, err).Error(),
		}
	}

	cache.Record(path, incremental.Entry{
		CompletedAt: time.Now().UTC().Format(time.RFC3339),
		Sentences:   len(sentences),
	})

	chars := len(r.File.Data)
	fs := stats.FileStat{
		Path:              path,
		CharsProcessed:    chars,
		SentencesDetected: len(sentences),
		ProcessingTimeMs:  elapsed.Milliseconds(),
		Status:            stats.StatusSuccess,
	}
	if elapsed > 0 {
		fs.CharsPerSec = float64(chars) / elapsed.Seconds()
	}
	return fs
}
