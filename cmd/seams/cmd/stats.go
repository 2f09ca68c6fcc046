package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/textseams/seams/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats <run-stats.json>",
	Short: "Pretty-print a prior run's statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("stats: reading %s: %w", args[0], err)
		}

		var rs stats.RunStats
		if err := json.Unmarshal(data, &rs); err != nil {
			return fmt.Errorf("stats: parsing %s: %w", args[0], err)
		}

		fmt.Fprintf(c.OutOrStdout(), "run %s (started %s)\n", rs.RunID, rs.RunStart)
		fmt.Fprintf(c.OutOrStdout(), "  files: %d processed, %d skipped, %d failed\n",
			rs.FilesProcessed, rs.FilesSkipped, rs.FilesFailed)
		fmt.Fprintf(c.OutOrStdout(), "  chars: %d (%.0f/sec)\n", rs.TotalCharsProcessed, rs.OverallCharsPerSec)
		fmt.Fprintf(c.OutOrStdout(), "  sentences: %d\n", rs.TotalSentencesDetected)

		for _, fs := range rs.FileStats {
			if fs.Status != stats.StatusFailed {
				continue
			}
			fmt.Fprintf(c.OutOrStdout(), "  failed: %s: %s\n", fs.Path, fs.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
