package log

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.Formatter = NewFormatter("")
}

// Get returns the shared logger.
func Get() *logrus.Logger {
	return log
}

// SetLevel sets the level of the shared logger by name. Unknown names fall
// back to info.
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "error":
		log.Level = logrus.ErrorLevel
	case "warn":
		log.Level = logrus.WarnLevel
	case "debug":
		log.Level = logrus.DebugLevel
	default:
		log.Level = logrus.InfoLevel
	}
}

// SetFormat switches the shared logger between "text" and "json" output.
func SetFormat(format string) {
	log.Formatter = NewFormatter(format)
}

// NewFormatter returns the JSON formatter for "json" and a text formatter
// with full timestamps for anything else.
func NewFormatter(format string) logrus.Formatter {
	if strings.EqualFold(format, "json") {
		return &JSONFormatter{TimestampFormat: time.RFC3339}
	}
	return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339}
}
