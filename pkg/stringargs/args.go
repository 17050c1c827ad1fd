package stringargs

import (
	"fmt"

	"github.com/randalmurphal/stringargs/pkg/stringargs/template"
)

// Args maps placeholder names to values of any type.
// It is read-only while a substitution is running.
type Args map[string]any

// Pair is one key/value entry for New.
type Pair struct {
	Key   any
	Value any
}

// P builds a Pair.
func P(key, value any) Pair {
	return Pair{Key: key, Value: value}
}

// New builds Args from pairs, sized to len(pairs).
// Keys are converted to text; when two keys have the same text the later
// pair wins.
//
// Example:
//
//	args := New(P("a", "foo"), P("b", "bar"), P("a", "baz"))
//	// args: {"a": "baz", "b": "bar"}
func New(pairs ...Pair) Args {
	args := make(Args, len(pairs))
	for _, p := range pairs {
		args[keyText(p.Key)] = p.Value
	}
	return args
}

// keyText leaves the Stringer call to fmt, which renders a nil receiver as <nil>.
func keyText(key any) string {
	if k, ok := key.(string); ok {
		return k
	}
	return fmt.Sprint(key)
}

// Apply substitutes placeholders in base from a.
func (a Args) Apply(base string, convert template.Converter) string {
	return Apply(base, a, convert)
}

// Apply substitutes every $name in base with convert(vars[name]), every $$
// with $, and every unknown name with "None". A nil convert means fmt.Sprint.
func Apply(base string, vars Args, convert template.Converter) string {
	return template.Apply(base, vars, convert)
}
