package types

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Measurement is the duration pair produced for a single multiplier.
type Measurement struct {
	Multiplier        int           `json:"multiplier" yaml:"multiplier"`
	InputLength       int           `json:"input_length" yaml:"input_length"`
	Engine            Engine        `json:"engine" yaml:"engine"`
	Problematic       time.Duration `json:"problematic_ns" yaml:"problematic_ns"`
	Simple            time.Duration `json:"simple_ns" yaml:"simple_ns"`
	ProblematicStatus SearchStatus  `json:"problematic_status" yaml:"problematic_status"`
	SimpleStatus      SearchStatus  `json:"simple_status" yaml:"simple_status"`
}

// Ratio returns Problematic / Simple. The second value is false when the
// simple search took zero nanoseconds and the ratio is undefined.
func (m Measurement) Ratio() (float64, bool) {
	if m.Simple <= 0 {
		return 0, false
	}
	return float64(m.Problematic) / float64(m.Simple), true
}

// RatioPtr is Ratio as a pointer, nil when undefined. Used for encoders
// that should emit null.
func (m Measurement) RatioPtr() *float64 {
	r, ok := m.Ratio()
	if !ok {
		return nil
	}
	return &r
}

// TimedOut reports whether either search was aborted.
func (m Measurement) TimedOut() bool {
	return m.ProblematicStatus == StatusTimedOut || m.SimpleStatus == StatusTimedOut
}

// FormatRatio renders a ratio as the shortest decimal that round-trips,
// always keeping a decimal point ("12.0", "3.75"). Undefined ratios render
// as "undefined".
func FormatRatio(r float64, ok bool) string {
	if !ok {
		return "undefined"
	}
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return strconv.FormatFloat(r, 'g', -1, 64)
	}
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

// Run is a persisted sequence of measurements.
type Run struct {
	ID           int64         `json:"id" yaml:"id"`
	Engine       Engine        `json:"engine" yaml:"engine"`
	StartedAt    time.Time     `json:"started_at" yaml:"started_at"`
	Measurements []Measurement `json:"measurements,omitempty" yaml:"measurements,omitempty"`
}
