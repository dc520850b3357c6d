package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// New builds the application logger. When filename is set output goes to a
// rotated log file instead of stderr.
func New(level, filename string) *log.Logger {
	var w io.Writer = os.Stderr
	if filename != "" {
		w = &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    5,
			MaxAge:     3,
			MaxBackups: 3,
		}
	}

	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		ReportTimestamp: true,
		TimeFormat:      "2006/01/02 15:04:05",
	})
}

// Discard returns a logger that only reports fatal messages, for tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
