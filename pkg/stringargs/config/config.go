package config

import "fmt"

// Config wraps a decoded profile document for type-safe value extraction.
// Accessors return default values if the key is missing or the value has
// the wrong type.
type Config struct {
	data map[string]any
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data}
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (c Config) String(key, defaultVal string) string {
	if s, ok := c.data[key].(string); ok {
		return s
	}
	return defaultVal
}

// Map returns the nested table for key with text keys, or nil if missing
// or not a table.
//
// yaml.v3 decodes a table with any non-string key (e.g. "1: one") to
// map[any]any; its keys are converted with fmt.Sprint, strings unchanged.
func (c Config) Map(key string) map[string]any {
	switch m := c.data[key].(type) {
	case map[string]any:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			if s, ok := k.(string); ok {
				out[s] = v
			} else {
				out[fmt.Sprint(k)] = v
			}
		}
		return out
	}
	return nil
}
