package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Logger is the process logger. It writes to stderr so that stdout carries
// only the kiosk screen.
var Logger *logrus.Logger

// colors controls whether the text formatter may emit ANSI colors.
var colors = true

func init() {
	Logger = logrus.New()
	Logger.SetOutput(os.Stderr)
	Logger.SetLevel(logrus.WarnLevel)
	Logger.SetFormatter(textFormatter())
}

// Configure applies level and format to Logger and directs it to out.
// A nil out leaves the current output in place. With color false the text
// format never emits ANSI escapes, even on a terminal.
func Configure(level, format string, out io.Writer, color bool) error {
	colors = color
	if format == "" {
		if _, ok := Logger.Formatter.(*logrus.TextFormatter); ok {
			format = "text"
		}
	}
	if err := SetLevel(level); err != nil {
		return err
	}
	if err := SetFormatter(format); err != nil {
		return err
	}
	if out != nil {
		Logger.SetOutput(out)
	}
	return nil
}

// SetLevel sets the logging level. An empty level keeps the current one.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	Logger.SetLevel(lvl)
	return nil
}

// SetFormatter sets the logging formatter: "text" or "json".
// An empty format keeps the current one.
func SetFormatter(format string) error {
	switch format {
	case "":
		return nil
	case "json":
		Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
		})
	case "text":
		Logger.SetFormatter(textFormatter())
	default:
		return fmt.Errorf("log format: unknown format %q (want text or json)", format)
	}
	return nil
}

func textFormatter() logrus.Formatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
		DisableColors:   !colors,
	}
}

// WithField creates a new entry with a single field
func WithField(key string, value interface{}) *logrus.Entry {
	return Logger.WithField(key, value)
}
