package template

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/randalmurphal/stringargs/pkg/stringargs/observability"
	"go.opentelemetry.io/otel/attribute"
)

// placeholderPattern matches $$ or $ followed by one or more ASCII letters
// and digits. The alphanumeric run is greedy.
var placeholderPattern = regexp.MustCompile(`\$(\$|[A-Za-z0-9]+)`)

// escape is the only escape sequence; it renders a single dollar sign.
const escape = "$$"

// Sentinel is emitted in place of a placeholder whose name is not in the mapping.
const Sentinel = "None"

// Converter turns one mapping value into its text form.
// The expander never inspects value types; that is the converter's job.
type Converter func(v any) string

// defaultConverter is used when neither the call nor WithConverter supplies one.
func defaultConverter(v any) string {
	return fmt.Sprint(v)
}

// Expander substitutes $name placeholders in strings.
//
// Create with NewExpander() and configure with Option functions.
// Expander is safe for concurrent use after construction.
type Expander struct {
	missingAction MissingAction
	sentinel      string
	converter     Converter
	logger        *slog.Logger
	tracing       bool
	metrics       observability.MetricsRecorder
	spans         observability.SpanManager
}

// NewExpander creates a new Expander with the given options.
//
// Default configuration:
//   - MissingAction: MissingSentinel (unresolved names become "None")
//   - Converter: fmt.Sprint
//   - Logging, metrics and tracing: disabled
func NewExpander(opts ...Option) *Expander {
	e := &Expander{
		missingAction: MissingSentinel,
		sentinel:      Sentinel,
		converter:     defaultConverter,
		metrics:       observability.NoopMetrics{},
		spans:         observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// expansion tallies what a single scan did.
type expansion struct {
	replaced   int
	unresolved int
	missing    []string
}

// Apply substitutes every placeholder in base using vars and convert.
//
// A nil convert falls back to the expander's converter. vars is never
// modified. Errors are only returned when MissingAction is MissingError and
// at least one name was not found; the partially substituted string is
// returned alongside the error.
//
// Example:
//
//	exp := NewExpander()
//	result, _ := exp.Apply("Hello $name!", map[string]any{"name": "World"}, nil)
//	// result: "Hello World!"
func (e *Expander) Apply(base string, vars map[string]any, convert Converter) (string, error) {
	return e.ApplyContext(context.Background(), base, vars, convert)
}

// ApplyContext is Apply with spans and metrics reported under ctx.
func (e *Expander) ApplyContext(ctx context.Context, base string, vars map[string]any, convert Converter) (string, error) {
	if convert == nil {
		convert = e.converter
	}

	done := observability.TimedOperation()

	logger := e.logger
	var callID string
	if logger != nil || e.tracing {
		callID = observability.NewCallID()
		logger = observability.EnrichLogger(logger, callID)
	}
	ctx, span := e.spans.StartApplySpan(ctx, callID)

	result, st := e.substitute(ctx, logger, base, vars, convert)

	var err error
	if len(st.missing) > 0 {
		err = &UndefinedVariableError{Names: st.missing}
	}

	elapsed := done()
	e.metrics.RecordApply(ctx, elapsed, st.replaced, st.unresolved, err)
	if err != nil {
		observability.LogApplyError(logger, err, observability.Milliseconds(elapsed))
	} else {
		observability.LogApplyComplete(logger, observability.Milliseconds(elapsed), st.replaced, st.unresolved)
	}
	e.spans.EndSpanWithError(span, err)

	return result, err
}

// substitute performs the single left-to-right scan.
func (e *Expander) substitute(ctx context.Context, logger *slog.Logger, base string, vars map[string]any, convert Converter) (string, expansion) {
	var st expansion
	if !strings.Contains(base, "$") {
		return base, st
	}

	result := placeholderPattern.ReplaceAllStringFunc(base, func(match string) string {
		if match == escape {
			return "$"
		}

		name := match[1:]
		if val, ok := vars[name]; ok {
			st.replaced++
			return convert(val)
		}

		st.unresolved++
		observability.LogUnresolved(logger, name)
		e.spans.AddSpanEvent(ctx, "placeholder.unresolved", attribute.String("name", name))

		switch e.missingAction {
		case MissingKeep:
			return match
		case MissingEmpty:
			return ""
		case MissingError:
			if !slices.Contains(st.missing, name) {
				st.missing = append(st.missing, name)
			}
			return e.sentinel
		default: // MissingSentinel
			return e.sentinel
		}
	})

	return result, st
}

// MustApply substitutes placeholders in base and panics on error.
//
// Use this when the expander is not in MissingError mode, or when every
// name is known to be present.
func (e *Expander) MustApply(base string, vars map[string]any, convert Converter) string {
	result, err := e.Apply(base, vars, convert)
	if err != nil {
		panic(fmt.Sprintf("template: %v", err))
	}
	return result
}

// ApplyAll substitutes placeholders in every string of bases.
//
// Returns a new slice. On error (with MissingError), returns nil and the
// first error.
func (e *Expander) ApplyAll(bases []string, vars map[string]any, convert Converter) ([]string, error) {
	if bases == nil {
		return nil, nil
	}

	results := make([]string, len(bases))
	for i, s := range bases {
		applied, err := e.Apply(s, vars, convert)
		if err != nil {
			return nil, err
		}
		results[i] = applied
	}
	return results, nil
}

// ApplyMap substitutes placeholders in all string values of m recursively.
//
// Returns a new map. Nested map[string]any and []any values are walked;
// other values are copied as-is. On error (with MissingError), returns nil
// and the first error.
//
// Example:
//
//	exp := NewExpander()
//	result, _ := exp.ApplyMap(map[string]any{
//	    "url":  "https://$host/api",
//	    "port": 8080, // copied as-is
//	}, vars, nil)
func (e *Expander) ApplyMap(m map[string]any, vars map[string]any, convert Converter) (map[string]any, error) {
	if m == nil {
		return nil, nil
	}

	result := make(map[string]any, len(m))
	for k, v := range m {
		applied, err := e.applyValue(v, vars, convert)
		if err != nil {
			return nil, err
		}
		result[k] = applied
	}
	return result, nil
}

func (e *Expander) applyValue(v any, vars map[string]any, convert Converter) (any, error) {
	switch val := v.(type) {
	case string:
		return e.Apply(val, vars, convert)
	case map[string]any:
		return e.ApplyMap(val, vars, convert)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			applied, err := e.applyValue(item, vars, convert)
			if err != nil {
				return nil, err
			}
			out[i] = applied
		}
		return out, nil
	default:
		return v, nil
	}
}

// Placeholders returns the distinct names referenced by base in the order
// they first appear. The $$ escape is not a name.
func Placeholders(base string) []string {
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(base, -1) {
		if m[0] == escape || slices.Contains(names, m[1]) {
			continue
		}
		names = append(names, m[1])
	}
	return names
}

// UndefinedVariableError is returned when MissingError is set and
// one or more names are not found.
type UndefinedVariableError struct {
	// Names lists the unresolved names in first-seen order.
	Names []string
}

// Error implements the error interface.
func (e *UndefinedVariableError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("undefined variable: %s", e.Names[0])
	}
	return fmt.Sprintf("undefined variables: %s", strings.Join(e.Names, ", "))
}

// defaultExpander is the package-level expander with default settings.
var defaultExpander = NewExpander()

// Apply substitutes placeholders in base using the default expander.
//
// Unresolved names become "None"; it never fails. A nil convert means fmt.Sprint.
//
// Example:
//
//	result := template.Apply("Price: $$5", nil, nil)
//	// result: "Price: $5"
func Apply(base string, vars map[string]any, convert Converter) string {
	// Default expander never returns errors (MissingSentinel).
	result, _ := defaultExpander.Apply(base, vars, convert)
	return result
}

// ApplyAll substitutes placeholders in every string using the default expander.
func ApplyAll(bases []string, vars map[string]any, convert Converter) []string {
	results, _ := defaultExpander.ApplyAll(bases, vars, convert)
	return results
}

// ApplyMap substitutes placeholders in all string values using the default expander.
func ApplyMap(m map[string]any, vars map[string]any, convert Converter) map[string]any {
	result, _ := defaultExpander.ApplyMap(m, vars, convert)
	return result
}
