package harness

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/praetorian-inc/backtrack/pkg/logger"
	"github.com/praetorian-inc/backtrack/pkg/types"
)

// EmitFunc receives each measurement as soon as it is taken. Returning an
// error stops the driver.
type EmitFunc func(types.Measurement) error

// Driver runs the harness once per multiplier, in order.
type Driver struct {
	harness *Harness
	log     *logrus.Entry
}

// NewDriver wraps h.
func NewDriver(h *Harness) *Driver {
	return &Driver{harness: h, log: logger.GetLogger("driver")}
}

// Run measures each multiplier and calls emit before starting the next one.
// ctx is only checked between iterations; a search in progress is never
// interrupted.
func (d *Driver) Run(ctx context.Context, multipliers []int, emit EmitFunc) error {
	d.log.Debugf("Running %d iterations with %s engine", len(multipliers), d.harness.Engine())

	for i, multiplier := range multipliers {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "stopped before iteration %d", i+1)
		}

		m, err := d.harness.Measure(multiplier)
		if err != nil {
			return errors.Wrapf(err, "iteration %d", i+1)
		}

		if err := emit(m); err != nil {
			return errors.Wrapf(err, "emitting multiplier %d", multiplier)
		}
	}

	return nil
}
