// Package logging provides the logrus plumbing shared by memkit packages.
// Library code accepts an optional *logrus.Entry; these helpers make a nil
// entry safe to log through.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// MakeLogger returns a logger for the given layer. When enabled is false the
// logger discards everything, so callers can log unconditionally.
func MakeLogger(enabled bool, fields logrus.Fields) *logrus.Entry {
	logger := logrus.New()
	logger.Level = logrus.DebugLevel
	if !enabled {
		logger.Out = io.Discard
		logger.Level = logrus.PanicLevel
	}
	return logger.WithFields(fields)
}

// discard is the shared entry handed out for nil loggers; hot paths call
// OrDiscard on every operation, so it is built once.
var discard = MakeLogger(false, nil)

// OrDiscard returns entry unchanged when non-nil, otherwise a shared
// logger that discards everything.
func OrDiscard(entry *logrus.Entry) *logrus.Entry {
	if entry != nil {
		return entry
	}
	return discard
}
