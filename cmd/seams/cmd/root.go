package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "seams",
		Short:        "seams",
		SilenceUsage: true,
		Long:         `Dialog-aware sentence boundary detector for large literary corpora.`,
	}

	configPath  string
	concurrency int
	failFast    bool
)

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a seams.yaml config file")
	rootCmd.PersistentFlags().IntVarP(&concurrency, "concurrency", "n", 0, "max files scanned concurrently (0 = unbounded)")
	rootCmd.PersistentFlags().BoolVar(&failFast, "fail-fast", false, "abort the run on the first file error")
	return rootCmd.Execute()
}
