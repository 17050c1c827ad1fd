/*
Package config loads substitution profiles from YAML, JSON or TOML files.

A profile is a small document naming the missing-name policy, the sentinel
text, the converter and the variables themselves:

	missing: sentinel   # sentinel | keep | empty | error
	sentinel: None
	converter: text     # any name in convert.Default()
	vars:
	  name: World
	  port: 8080

Config wraps the decoded document and returns defaults for missing keys or
mismatched types instead of failing:

	cfg, err := config.FromFile("profile.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	missing := cfg.String("missing", "sentinel")
	vars := cfg.Map("vars")

Config is safe for concurrent read access.
*/
package config
