package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Config controls the process-wide logger.
type Config struct {
	Verbose bool
	Quiet   bool

	// File, when set, receives a copy of every log line and is rotated.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	// Output defaults to stderr. Stdout is reserved for reports.
	Output io.Writer
}

var (
	mu        sync.Mutex
	prefixLen = 8
	rotator   *lumberjack.Logger
)

// Init configures the standard logrus logger. It may be called more than
// once; each call replaces the previous configuration.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	level := logrus.InfoLevel
	switch {
	case cfg.Quiet:
		level = logrus.ErrorLevel
	case cfg.Verbose:
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)

	logrus.SetFormatter(&prefixed.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		ForceFormatting: true,
	})

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	if rotator != nil {
		rotator.Close()
		rotator = nil
	}

	if cfg.File != "" {
		rotator = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    valueOr(cfg.MaxSizeMB, 5),
			MaxBackups: valueOr(cfg.MaxBackups, 10),
			MaxAge:     valueOr(cfg.MaxAgeDays, 14),
		}
		// Fail early on an unwritable path rather than on the first log line.
		if _, err := rotator.Write(nil); err != nil {
			rotator = nil
			return errors.Wrapf(err, "opening log file %s", cfg.File)
		}
		out = io.MultiWriter(out, rotator)
	}

	logrus.SetOutput(out)
	return nil
}

// GetLogger returns an entry tagged with a padded component prefix.
func GetLogger(prefix string) *logrus.Entry {
	mu.Lock()
	if len(prefix) > prefixLen {
		prefixLen = len(prefix)
	}
	width := prefixLen
	mu.Unlock()

	return logrus.WithFields(logrus.Fields{"prefix": fmt.Sprintf("%-*s", width, prefix)})
}

// Close flushes and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if rotator == nil {
		return nil
	}
	err := rotator.Close()
	rotator = nil
	return err
}

func valueOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
