package main

import (
	"github.com/spf13/cobra"

	"github.com/praetorian-inc/backtrack/pkg/logger"
)

var (
	verbose bool
	quiet   bool
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "backtrack",
	Short: "Backtrack - time a catastrophic-backtracking regex against a simple one",
	Long: `Backtrack builds inputs of growing size from "a\nb\nc" and times two regular
expressions against each one: ((\n*.*\n*)*), whose nested unbounded
repetition makes backtracking engines re-explore overlapping splits, and a
lazy (.*?) with dot-matches-newline semantics.

Run without arguments to measure multipliers 1 through 100000 with the
backtracking engine and print one report per multiplier.`,
	Args:          cobra.NoArgs,
	RunE:          runMeasure,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(logger.Config{
			Verbose: verbose,
			Quiet:   quiet,
			File:    logFile,
			Output:  cmd.ErrOrStderr(),
		})
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs to this file (rotated)")

	// Add subcommands
	rootCmd.AddCommand(enginesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
