package testutil

import (
	"bytes"
	"log/slog"
	"time"
)

// GameNight is the fixed instant the mocked clock starts at
var GameNight = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// NopLogger discards everything; the scoreboard logs every save and event
func NopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// CaptureLogger records text-formatted log lines, including debug, so
// tests can assert on failed saves and emitted events
func CaptureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), &buf
}
