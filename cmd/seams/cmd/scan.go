package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/textseams/seams"
	"github.com/textseams/seams/internal/corpus"
	"github.com/textseams/seams/internal/dispatch"
	"github.com/textseams/seams/internal/incremental"
	"github.com/textseams/seams/internal/sink"
	"github.com/textseams/seams/internal/stats"
)

var (
	sinkKind string
	sinkDSN  string
	statsOut string
)

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Scan a corpus directory for sentence boundaries",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		cfg, err := resolveConfig(args[0])
		if err != nil {
			return err
		}
		if sinkKind != "" {
			cfg.Sink.Kind = sinkKind
		}
		if sinkDSN != "" {
			cfg.Sink.DSN = sinkDSN
		}

		logger := logrus.New()
		log := logger.WithFields(logrusFields(cfg))
		log.Info("starting scan")

		det, err := seams.BuildDetector()
		if err != nil {
			return fmt.Errorf("scan: building detector: %w", err)
		}

		cachePath := cfg.CachePath
		if cachePath == "" {
			cachePath = filepath.Join(cfg.CorpusRoot, incremental.DefaultFilename)
		}
		cache, err := incremental.Load(cachePath)
		if err != nil {
			return fmt.Errorf("scan: loading incremental cache: %w", err)
		}

		sk, err := sink.Open(cfg.Sink.Kind, cfg.Sink.DSN, log)
		if err != nil {
			return fmt.Errorf("scan: opening sink: %w", err)
		}
		defer sk.Close()

		ctx := context.Background()
		walkResults := corpus.Walk(ctx, cfg.CorpusRoot, cfg.IncludeGlobs, cfg.ExcludeGlobs, log)

		start := time.Now()
		fileStats, runErr := dispatch.Run(ctx, det, walkResults, cache, sk, dispatch.Options{
			Concurrency: cfg.Concurrency,
			FailFast:    cfg.FailFast,
		}, log)
		elapsed := time.Since(start)

		if runErr != nil {
			log.WithError(runErr).Error("scan aborted")
			return runErr
		}

		if err := cache.Save(); err != nil {
			return fmt.Errorf("scan: saving incremental cache: %w", err)
		}

		rs, err := stats.Build(start, elapsed, fileStats)
		if err != nil {
			return err
		}

		out := statsOut
		if out == "" {
			out = filepath.Join(cfg.CorpusRoot, "run-stats.json")
		}
		if err := rs.WriteJSON(out); err != nil {
			return err
		}

		log.WithFields(map[string]any{
			"files_processed": rs.FilesProcessed,
			"files_skipped":   rs.FilesSkipped,
			"files_failed":    rs.FilesFailed,
			"sentences":       rs.TotalSentencesDetected,
		}).Info("scan complete")

		if rs.FilesFailed > 0 {
			return errors.New("scan: one or more files failed")
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&sinkKind, "sink", "", "output sink: sidecar (default) or sql")
	scanCmd.Flags().StringVar(&sinkDSN, "dsn", "", "sql sink DSN (sqlite://, mysql://, or postgres://)")
	scanCmd.Flags().StringVar(&statsOut, "stats-out", "", "path to write the run statistics JSON (default <corpus>/run-stats.json)")
	rootCmd.AddCommand(scanCmd)
}
