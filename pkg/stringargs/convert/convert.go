// Package convert provides stock Converter functions for template
// substitution and a registry for looking them up by name.
package convert

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Text renders v the way a person would write it: strings and byte slices
// verbatim, anything else via fmt.Sprint (which uses Error and String
// methods and prints a nil receiver as <nil>).
func Text(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(v)
	}
}

// JSON renders v as compact JSON.
// If marshaling fails, returns Text(v).
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return Text(v)
	}
	return string(b)
}

// YAML renders v as YAML without the trailing newline.
// If marshaling fails, returns Text(v).
//
// Only yaml.v3's "cannot marshal type" panic for unsupported kinds (funcs,
// channels) is turned into the fallback; any other panic, including one
// from a value's own MarshalYAML, propagates.
func YAML(v any) (s string) {
	defer func() {
		if r := recover(); r != nil {
			msg, ok := r.(string)
			if !ok || !strings.HasPrefix(msg, "cannot marshal type") {
				panic(r)
			}
			s = Text(v)
		}
	}()
	b, err := yaml.Marshal(v)
	if err != nil {
		return Text(v)
	}
	return strings.TrimSuffix(string(b), "\n")
}

// Quote renders Text(v) as a double-quoted Go string literal.
func Quote(v any) string {
	return strconv.Quote(Text(v))
}
