package report

import (
	"encoding/json"
	"io"

	"github.com/praetorian-inc/backtrack/pkg/types"
)

// JSONWriter writes one JSON object per line so output can be streamed.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSON creates a JSONWriter.
func NewJSON(w io.Writer) *JSONWriter {
	return &JSONWriter{enc: json.NewEncoder(w)}
}

// WriteMeasurement encodes m. An undefined ratio is null.
func (j *JSONWriter) WriteMeasurement(m types.Measurement) error {
	return j.enc.Encode(toRecord(m))
}

// WriteRun encodes run with its measurements.
func (j *JSONWriter) WriteRun(run *types.Run) error {
	return j.enc.Encode(toRunRecord(run))
}
