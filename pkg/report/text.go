package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/praetorian-inc/backtrack/pkg/types"
)

// Separator closes every text report block.
var Separator = strings.Repeat("-", 30)

// TextWriter writes the plain line-oriented report.
type TextWriter struct {
	w io.Writer
}

// NewText creates a TextWriter.
func NewText(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteMeasurement writes the five report lines followed by two blank lines.
func (t *TextWriter) WriteMeasurement(m types.Measurement) error {
	r, ok := m.Ratio()
	_, err := fmt.Fprintf(t.w,
		"Multiplier: %d\nProblematic Regex Time (ns): %d\nSimple Regex Time (ns): %d\nRatio of Times: %s\n%s\n\n\n",
		m.Multiplier,
		m.Problematic.Nanoseconds(),
		m.Simple.Nanoseconds(),
		types.FormatRatio(r, ok),
		Separator,
	)
	return err
}

// WriteRun writes a short run header and then each measurement.
func (t *TextWriter) WriteRun(run *types.Run) error {
	_, err := fmt.Fprintf(t.w, "Run: %d\nEngine: %s\nStarted: %s\n\n",
		run.ID, run.Engine, run.StartedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}
	for _, m := range run.Measurements {
		if err := t.WriteMeasurement(m); err != nil {
			return err
		}
	}
	return nil
}
