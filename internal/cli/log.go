// Package cli implements the sec4dev command-line interface.
//
// The CLI wraps the sec4dev client with commands for email and IP checks.
// Results are written to stdout as JSON; diagnostics go to stderr through
// charmbracelet/log.
//
// # Commands
//
//   - email check: full disposable-email result for one or more addresses
//   - email disposable: prints true or false for a single address
//   - ip check: full reputation result for one or more addresses
//   - ip is: tests a single signal (hosting, vpn, tor, residential, mobile, proxy)
//   - version: prints the client version
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// enables the client's per-attempt request logging. Loggers are passed
// through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the given level with
// "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
