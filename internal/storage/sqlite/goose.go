package sqlite

import (
	"fmt"
	"log/slog"
)

// gooseLogger adapts the goose logger interface to slog
type gooseLogger struct {
	logger *slog.Logger
}

// Printf forwards migration progress at debug level
func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

// Fatalf logs the failure without exiting; goose returns the error to Open
func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
