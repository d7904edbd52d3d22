// Package logger provides modifications to charmbracelet/log's default
// logger to be used in various files/packages. Output goes to stderr so the
// msgpack IPC stream on stdout stays clean.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a charm log for user-facing output. It picks up the global
// log level but skips timestamps, which are noise on interactive lines.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a new charm log with custom config.
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}
