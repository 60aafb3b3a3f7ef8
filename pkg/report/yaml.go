package report

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/praetorian-inc/backtrack/pkg/types"
)

// YAMLWriter writes a YAML document per measurement or run.
type YAMLWriter struct {
	w io.Writer
}

// NewYAML creates a YAMLWriter.
func NewYAML(w io.Writer) *YAMLWriter {
	return &YAMLWriter{w: w}
}

// WriteMeasurement writes m as its own document.
func (y *YAMLWriter) WriteMeasurement(m types.Measurement) error {
	return y.encode(toRecord(m))
}

// WriteRun writes run as its own document.
func (y *YAMLWriter) WriteRun(run *types.Run) error {
	return y.encode(toRunRecord(run))
}

// encode uses a fresh encoder per document so each one is flushed before
// the next measurement starts.
func (y *YAMLWriter) encode(v interface{}) error {
	if _, err := io.WriteString(y.w, "---\n"); err != nil {
		return err
	}
	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return enc.Close()
}
