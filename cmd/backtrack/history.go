package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/praetorian-inc/backtrack/pkg/report"
	"github.com/praetorian-inc/backtrack/pkg/store"
)

var (
	historyDB     string
	historyFormat string
	historyColor  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show stored runs",
	Long:  "Read runs persisted with --db and print them in any report format",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyDB, "db", "backtrack.db", "Path to the SQLite database")
	historyCmd.Flags().StringVar(&historyFormat, "format", string(report.FormatHuman), "Output format: text, human, json, yaml")
	historyCmd.Flags().StringVar(&historyColor, "color", "auto", "Color output for human format: auto, always, never")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyDB == ":memory:" {
		return errors.New("cannot read history from an in-memory store")
	}
	if _, err := os.Stat(historyDB); err != nil {
		return errors.Errorf("database not found: %s", historyDB)
	}

	w, err := report.New(report.Format(historyFormat), cmd.OutOrStdout(), report.Options{Color: historyColor})
	if err != nil {
		return err
	}

	s, err := store.New(store.Config{Path: historyDB})
	if err != nil {
		return errors.Wrap(err, "opening store")
	}
	defer s.Close()

	runs, err := store.LoadRuns(s)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "No runs stored in: %s\n", historyDB)
		return nil
	}

	for _, run := range runs {
		if err := w.WriteRun(run); err != nil {
			return errors.Wrapf(err, "writing run %d", run.ID)
		}
	}
	return nil
}
