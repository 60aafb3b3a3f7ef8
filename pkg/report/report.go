// Package report renders measurements for people and machines.
package report

import (
	"io"

	"github.com/pkg/errors"

	"github.com/praetorian-inc/backtrack/pkg/types"
)

// Format selects a Writer implementation.
type Format string

const (
	FormatText  Format = "text"
	FormatHuman Format = "human"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatHuman, FormatJSON, FormatYAML}

// Writer emits measurements as they arrive.
type Writer interface {
	// WriteMeasurement renders one driver iteration.
	WriteMeasurement(m types.Measurement) error

	// WriteRun renders a stored run and its measurements.
	WriteRun(run *types.Run) error
}

// Options configures writers that support them.
type Options struct {
	// Color mode for the human format: "auto", "always" or "never".
	Color string
}

// New returns a Writer for format that writes to w.
func New(format Format, w io.Writer, opts Options) (Writer, error) {
	switch format {
	case FormatText, "":
		return NewText(w), nil
	case FormatHuman:
		return NewHuman(w, colorEnabled(opts.Color, w)), nil
	case FormatJSON:
		return NewJSON(w), nil
	case FormatYAML:
		return NewYAML(w), nil
	default:
		return nil, errors.Errorf("unknown output format: %s", format)
	}
}

// record is the machine-readable form shared by JSON and YAML.
type record struct {
	Multiplier        int                `json:"multiplier" yaml:"multiplier"`
	InputLength       int                `json:"input_length" yaml:"input_length"`
	Engine            types.Engine       `json:"engine" yaml:"engine"`
	ProblematicNs     int64              `json:"problematic_ns" yaml:"problematic_ns"`
	SimpleNs          int64              `json:"simple_ns" yaml:"simple_ns"`
	Ratio             *float64           `json:"ratio" yaml:"ratio"`
	ProblematicStatus types.SearchStatus `json:"problematic_status" yaml:"problematic_status"`
	SimpleStatus      types.SearchStatus `json:"simple_status" yaml:"simple_status"`
}

func toRecord(m types.Measurement) record {
	return record{
		Multiplier:        m.Multiplier,
		InputLength:       m.InputLength,
		Engine:            m.Engine,
		ProblematicNs:     m.Problematic.Nanoseconds(),
		SimpleNs:          m.Simple.Nanoseconds(),
		Ratio:             m.RatioPtr(),
		ProblematicStatus: m.ProblematicStatus,
		SimpleStatus:      m.SimpleStatus,
	}
}

type runRecord struct {
	ID           int64    `json:"id" yaml:"id"`
	Engine       string   `json:"engine" yaml:"engine"`
	StartedAt    string   `json:"started_at" yaml:"started_at"`
	Measurements []record `json:"measurements" yaml:"measurements"`
}

func toRunRecord(run *types.Run) runRecord {
	rr := runRecord{
		ID:           run.ID,
		Engine:       string(run.Engine),
		StartedAt:    run.StartedAt.UTC().Format("2006-01-02T15:04:05.000000000Z07:00"),
		Measurements: make([]record, 0, len(run.Measurements)),
	}
	for _, m := range run.Measurements {
		rr.Measurements = append(rr.Measurements, toRecord(m))
	}
	return rr
}
