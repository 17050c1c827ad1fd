// Package observability provides structured logging, metrics, and tracing
// for stringargs substitutions.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// NewCallID returns a unique identifier for a single substitution call.
func NewCallID() string {
	return uuid.New().String()
}

// EnrichLogger adds the call ID to a logger.
//
// Example:
//
//	enriched := EnrichLogger(logger, callID)
//	enriched.Debug("placeholder unresolved") // includes call_id
func EnrichLogger(logger *slog.Logger, callID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("call_id", callID))
}

// LogUnresolved logs a placeholder whose name was not found in the mapping.
func LogUnresolved(logger *slog.Logger, name string) {
	if logger == nil {
		return
	}
	logger.Debug("placeholder unresolved",
		slog.String("name", name),
	)
}

// LogApplyComplete logs a finished substitution.
func LogApplyComplete(logger *slog.Logger, durationMs float64, replaced, unresolved int) {
	if logger == nil {
		return
	}
	logger.Debug("substitution completed",
		slog.Float64("duration_ms", durationMs),
		slog.Int("replaced", replaced),
		slog.Int("unresolved", unresolved),
	)
}

// LogApplyError logs a substitution that failed in strict mode.
func LogApplyError(logger *slog.Logger, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("substitution failed",
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// Milliseconds converts d to fractional milliseconds for log attributes.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
