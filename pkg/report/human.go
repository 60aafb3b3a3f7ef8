package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/praetorian-inc/backtrack/pkg/types"
)

// styles holds color formatters for the human report.
type styles struct {
	heading  *color.Color
	label    *color.Color
	slow     *color.Color
	fast     *color.Color
	ratio    *color.Color
	warning  *color.Color
	metadata *color.Color
}

// newStyles creates color formatters. enabled=false respects --color=never
// and the NO_COLOR env var.
func newStyles(enabled bool) *styles {
	s := &styles{
		heading:  color.New(color.Bold, color.FgHiWhite),
		label:    color.New(color.Bold),
		slow:     color.New(color.FgHiRed),
		fast:     color.New(color.FgHiGreen),
		ratio:    color.New(color.Bold, color.FgYellow),
		warning:  color.New(color.FgHiYellow),
		metadata: color.New(color.FgHiBlue),
	}

	for _, c := range []*color.Color{s.heading, s.label, s.slow, s.fast, s.ratio, s.warning, s.metadata} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

// colorEnabled resolves a --color mode for w.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

// HumanWriter writes an aligned, optionally colored report with digit
// grouping.
type HumanWriter struct {
	w io.Writer
	s *styles
}

// NewHuman creates a HumanWriter.
func NewHuman(w io.Writer, colored bool) *HumanWriter {
	return &HumanWriter{w: w, s: newStyles(colored)}
}

// WriteMeasurement writes one block per iteration.
func (h *HumanWriter) WriteMeasurement(m types.Measurement) error {
	s := h.s
	out := h.w

	fmt.Fprintf(out, "%s %s  %s\n",
		s.heading.Sprint("Multiplier"),
		s.heading.Sprint(humanize.Comma(int64(m.Multiplier))),
		s.metadata.Sprintf("(input %s, %s engine)", humanize.Bytes(uint64(m.InputLength)), m.Engine),
	)
	fmt.Fprintf(out, "  %-20s %s%s\n", s.label.Sprint("Problematic Regex"),
		s.slow.Sprintf("%15s ns", humanize.Comma(m.Problematic.Nanoseconds())), h.status(m.ProblematicStatus))
	fmt.Fprintf(out, "  %-20s %s%s\n", s.label.Sprint("Simple Regex"),
		s.fast.Sprintf("%15s ns", humanize.Comma(m.Simple.Nanoseconds())), h.status(m.SimpleStatus))

	r, ok := m.Ratio()
	ratio := "undefined (simple time was 0 ns)"
	if ok {
		ratio = humanize.CommafWithDigits(r, 2) + "x"
	}
	_, err := fmt.Fprintf(out, "  %-20s %s\n\n", s.label.Sprint("Ratio"), s.ratio.Sprint(ratio))
	return err
}

func (h *HumanWriter) status(st types.SearchStatus) string {
	if st == types.StatusTimedOut {
		return " " + h.s.warning.Sprint("(timed out)")
	}
	return ""
}

// WriteRun writes a run heading and its measurements.
func (h *HumanWriter) WriteRun(run *types.Run) error {
	fmt.Fprintf(h.w, "%s %s\n",
		h.s.heading.Sprintf("Run %d", run.ID),
		h.s.metadata.Sprintf("%s engine, started %s (%s)", run.Engine,
			run.StartedAt.Local().Format(time.DateTime), humanize.Time(run.StartedAt)),
	)
	if len(run.Measurements) == 0 {
		_, err := fmt.Fprintf(h.w, "  No measurements.\n\n")
		return err
	}
	for _, m := range run.Measurements {
		if err := h.WriteMeasurement(m); err != nil {
			return err
		}
	}
	return nil
}
