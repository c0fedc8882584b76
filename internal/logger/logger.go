// Package logger holds the process-wide logrus logger.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It logs at info level to stderr until Setup runs.
var Log = logrus.New()

// Setup configures the shared logger's level and destination. A nil out keeps
// the current destination.
func Setup(level string, out io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	Log.SetLevel(lvl)
	if out != nil {
		Log.SetOutput(out)
	}
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return nil
}

// ToFile redirects the shared logger to a file, returning a close function.
// The terminal backend owns stdout and stderr while it runs. Closing restores
// the previous destination before the file is closed.
func ToFile(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	prev := Log.Out
	Log.SetOutput(f)
	return func() error {
		Log.SetOutput(prev)
		return f.Close()
	}, nil
}
