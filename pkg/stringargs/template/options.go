package template

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/randalmurphal/stringargs/pkg/stringargs/observability"
)

// MissingAction specifies how to handle names not found in the mapping.
type MissingAction int

const (
	// MissingSentinel replaces the placeholder with the sentinel text ("None").
	// This is the default behavior.
	MissingSentinel MissingAction = iota

	// MissingKeep keeps the placeholder as-is.
	MissingKeep

	// MissingEmpty replaces the placeholder with an empty string.
	MissingEmpty

	// MissingError renders the sentinel and makes Apply return an
	// *UndefinedVariableError listing every unresolved name.
	MissingError
)

// ErrInvalidMissingAction is returned by ParseMissingAction for unknown names.
var ErrInvalidMissingAction = errors.New("invalid missing action")

var missingActionNames = map[MissingAction]string{
	MissingSentinel: "sentinel",
	MissingKeep:     "keep",
	MissingEmpty:    "empty",
	MissingError:    "error",
}

// String returns the configuration name of the action.
func (a MissingAction) String() string {
	if name, ok := missingActionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("MissingAction(%d)", int(a))
}

// ParseMissingAction parses sentinel, keep, empty or error (case-insensitive).
func ParseMissingAction(s string) (MissingAction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for action, name := range missingActionNames {
		if name == s {
			return action, nil
		}
	}
	return MissingSentinel, fmt.Errorf("%w: %q", ErrInvalidMissingAction, s)
}

// Option configures an Expander.
type Option func(*Expander)

// WithMissingAction sets how unresolved names are handled.
//
// Default: MissingSentinel
//
// Example:
//
//	exp := NewExpander(WithMissingAction(MissingError))
//	_, err := exp.Apply("$missing", nil, nil)
//	// err: "undefined variable: missing"
func WithMissingAction(action MissingAction) Option {
	return func(e *Expander) {
		e.missingAction = action
	}
}

// WithSentinel sets the text emitted for unresolved names.
//
// Default: "None"
func WithSentinel(sentinel string) Option {
	return func(e *Expander) {
		e.sentinel = sentinel
	}
}

// WithConverter sets the converter used when a call passes a nil one.
// A nil converter leaves the default in place.
func WithConverter(convert Converter) Option {
	return func(e *Expander) {
		if convert != nil {
			e.converter = convert
		}
	}
}

// WithLogger enables debug logging of unresolved names and call completion.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Expander) {
		e.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics using the global meter provider.
func WithMetrics(enabled bool) Option {
	return func(e *Expander) {
		if enabled {
			e.metrics = observability.NewMetricsRecorder()
		} else {
			e.metrics = observability.NoopMetrics{}
		}
	}
}

// WithTracing enables an OpenTelemetry span per call using the global tracer provider.
func WithTracing(enabled bool) Option {
	return func(e *Expander) {
		e.tracing = enabled
		if enabled {
			e.spans = observability.NewSpanManager()
		} else {
			e.spans = observability.NoopSpanManager{}
		}
	}
}
