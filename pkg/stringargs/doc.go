// Package stringargs substitutes $name placeholders in strings from a map of
// arbitrarily typed values.
//
// Build the mapping from literal pairs, then apply it:
//
//	args := stringargs.New(
//	    stringargs.P("name", "World"),
//	    stringargs.P("count", 3),
//	)
//	result := args.Apply("Hello $name, you have $count messages. $$0 due.", convert.Text)
//	// result: "Hello World, you have 3 messages. $0 due."
//
// Names are ASCII letters and digits. $$ renders a single dollar sign, and a
// name that is not in the mapping renders as "None". The template subpackage
// has the engine and its options; convert has stock converters; config and
// Profile load variables and settings from YAML, JSON or TOML files.
package stringargs
