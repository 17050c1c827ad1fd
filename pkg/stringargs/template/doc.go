/*
Package template substitutes $name placeholders in strings.

# Overview

A placeholder is a dollar sign followed by one or more ASCII letters or
digits. Each placeholder is looked up in a map[string]any and the value is
turned into text by a caller-supplied Converter. The two-character sequence
$$ renders a single dollar sign. The scan is single-pass: substituted text is
never scanned again.

# Basic Usage

	result := template.Apply("Hello $name!", map[string]any{"name": "World"}, nil)
	// result: "Hello World!"

	result = template.Apply("Price: $$5", nil, nil)
	// result: "Price: $5"

A nil Converter means fmt.Sprint. Pass your own to control formatting:

	upper := func(v any) string { return strings.ToUpper(fmt.Sprint(v)) }
	result = template.Apply("$greeting", map[string]any{"greeting": "hi"}, upper)
	// result: "HI"

# Placeholder Syntax

  - $$ - a literal dollar sign
  - $name - name is [A-Za-z0-9]+, greedy, case-sensitive

Underscores, hyphens and non-ASCII letters end a name, so "$user_id" looks
up "user" and keeps "_id" verbatim. A dollar sign followed by anything else
is copied through.

# Missing Variables

By default a name that is not in the map becomes the text "None":

	result := template.Apply("$missing end", nil, nil)
	// result: "None end"

Other behaviors are available on a custom Expander:

	exp := template.NewExpander(template.WithMissingAction(template.MissingError))
	_, err := exp.Apply("Hello $missing", nil, nil)
	// err: "undefined variable: missing"

MissingKeep leaves the placeholder untouched and MissingEmpty drops it.

# Batch Substitution

	results := template.ApplyAll([]string{"$env.api.com", "$env.db.com"}, vars, nil)
	config := template.ApplyMap(map[string]any{
	    "nested": map[string]any{"endpoint": "/api/$env/v1"},
	}, vars, nil)

# Observability

	exp := template.NewExpander(
	    template.WithLogger(logger),
	    template.WithMetrics(true),
	    template.WithTracing(true),
	)

# Thread Safety

Expander is safe for concurrent use after construction, provided no caller
mutates a map while it is being read.
*/
package template
