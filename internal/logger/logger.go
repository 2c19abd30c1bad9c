// Package logger holds the diagnostic logger. Player-facing narrative goes
// to gamelog instead; this one is for developers.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide diagnostic logger. It discards output until Init
// points it somewhere, so packages and tests can use it unconditionally.
var Log = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Options configures Init. Zero values fall back to the environment:
// LOG_LEVEL (default "info"), LOG_FORMAT ("json" or "text") and LOG_FILE.
type Options struct {
	Level  string
	Format string
	// Output overrides LOG_FILE. When both are empty, logs are discarded,
	// because stdout belongs to the terminal UI.
	Output io.Writer
}

// Init configures Log. It returns a closer for any file it opened.
func Init(opts Options) (io.Closer, error) {
	level := opts.Level
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	format := opts.Format
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			DisableColors:    true,
			QuoteEmptyFields: true,
		})
	}

	var closer io.Closer = nopCloser{}
	switch {
	case opts.Output != nil:
		Log.SetOutput(opts.Output)
	case os.Getenv("LOG_FILE") != "":
		path := os.Getenv("LOG_FILE")
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return closer, fmt.Errorf("open log file %s: %w", path, err)
		}
		Log.SetOutput(f)
		closer = f
	default:
		Log.SetOutput(io.Discard)
	}
	return closer, nil
}

// For returns an entry tagged with the given component name.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
