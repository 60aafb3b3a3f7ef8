package main

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/praetorian-inc/backtrack/pkg/harness"
	"github.com/praetorian-inc/backtrack/pkg/logger"
	"github.com/praetorian-inc/backtrack/pkg/report"
	"github.com/praetorian-inc/backtrack/pkg/store"
	"github.com/praetorian-inc/backtrack/pkg/types"
)

var (
	measureEngine      string
	measureMultipliers []int
	measureTimeout     time.Duration
	measureTolerant    bool
	measureFormat      string
	measureColor       string
	measureDB          string
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&measureEngine, "engine", string(types.EngineBacktracking), "Regex engine: backtracking, linear, hyperscan")
	flags.IntSliceVar(&measureMultipliers, "multipliers", harness.DefaultMultipliers(), "Input size multipliers, measured in order")
	flags.DurationVar(&measureTimeout, "timeout", 0, "Abort a single search after this long (0 = never, backtracking engine only)")
	flags.BoolVar(&measureTolerant, "tolerant", false, "Keep timed-out measurements instead of failing")
	flags.StringVar(&measureFormat, "format", string(report.FormatText), "Output format: text, human, json, yaml")
	flags.StringVar(&measureColor, "color", "auto", "Color output for human format: auto, always, never")
	flags.StringVar(&measureDB, "db", "", "Persist the run to this SQLite database (\":memory:\" for in-process only)")
}

func runMeasure(cmd *cobra.Command, args []string) error {
	log := logger.GetLogger("measure")

	engine, err := types.ParseEngine(measureEngine)
	if err != nil {
		return err
	}

	for _, m := range measureMultipliers {
		if m < 0 {
			return errors.Errorf("multiplier must not be negative: %d", m)
		}
	}

	w, err := report.New(report.Format(measureFormat), cmd.OutOrStdout(), report.Options{Color: measureColor})
	if err != nil {
		return err
	}

	opts := []harness.Option{harness.WithEngine(engine), harness.WithTimeout(measureTimeout)}
	if measureTolerant {
		opts = append(opts, harness.WithTolerant())
	}

	h, err := harness.New(opts...)
	if err != nil {
		return errors.Wrap(err, "creating harness")
	}
	defer h.Close()

	if !engine.Backtracks() {
		log.Warnf("The %s engine runs in linear time; the problematic pattern will not blow up", engine)
	}

	run := &types.Run{Engine: engine, StartedAt: time.Now()}
	start := time.Now()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	err = harness.NewDriver(h).Run(ctx, measureMultipliers, func(m types.Measurement) error {
		run.Measurements = append(run.Measurements, m)
		return w.WriteMeasurement(m)
	})
	if err != nil {
		return errors.Wrap(err, "measuring")
	}

	log.Debugf("Finished %d iterations in %v", len(run.Measurements), time.Since(start))

	if measureDB != "" {
		if err := persistRun(measureDB, run); err != nil {
			return err
		}
		log.Infof("Run %d stored in: %s", run.ID, measureDB)
	}

	return nil
}

func persistRun(path string, run *types.Run) error {
	s, err := store.New(store.Config{Path: path})
	if err != nil {
		return errors.Wrap(err, "opening store")
	}
	defer s.Close()

	if err := store.SaveRun(s, run); err != nil {
		return errors.Wrap(err, "saving run")
	}
	return nil
}
