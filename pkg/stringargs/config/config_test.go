package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/stringargs/pkg/stringargs/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cfg := config.New(nil)
	assert.Equal(t, "None", cfg.String("sentinel", "None"))
	assert.Nil(t, cfg.Map("vars"))
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want string
	}{
		{"key exists", map[string]any{"sentinel": "<unset>"}, "<unset>"},
		{"empty string", map[string]any{"sentinel": ""}, ""},
		{"key missing", map[string]any{}, "None"},
		{"wrong type", map[string]any{"sentinel": 3}, "None"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, config.New(tt.data).String("sentinel", "None"))
		})
	}
}

func TestMap(t *testing.T) {
	t.Run("string keys", func(t *testing.T) {
		cfg := config.New(map[string]any{"vars": map[string]any{"name": "World"}})
		assert.Equal(t, map[string]any{"name": "World"}, cfg.Map("vars"))
	})

	t.Run("mixed keys are converted to text", func(t *testing.T) {
		cfg := config.New(map[string]any{"vars": map[any]any{1: "one", "name": "World", true: "yes"}})
		assert.Equal(t, map[string]any{"1": "one", "name": "World", "true": "yes"}, cfg.Map("vars"))
	})

	t.Run("not a table", func(t *testing.T) {
		cfg := config.New(map[string]any{"vars": "x"})
		assert.Nil(t, cfg.Map("vars"))
		assert.Nil(t, cfg.Map("missing"))
	})
}

const yamlProfile = `
missing: error
sentinel: "?"
converter: json
vars:
  name: World
  port: 8080
`

const jsonProfile = `{
  "missing": "error",
  "sentinel": "?",
  "converter": "json",
  "vars": {"name": "World", "port": 8080}
}`

const tomlProfile = `
missing = "error"
sentinel = "?"
converter = "json"

[vars]
name = "World"
port = 8080
`

func assertProfile(t *testing.T, cfg config.Config) {
	t.Helper()
	assert.Equal(t, "error", cfg.String("missing", ""))
	assert.Equal(t, "?", cfg.String("sentinel", ""))
	assert.Equal(t, "json", cfg.String("converter", ""))

	vars := cfg.Map("vars")
	require.NotNil(t, vars)
	assert.Equal(t, "World", vars["name"])
	assert.EqualValues(t, 8080, vars["port"])
}

func TestFromYAML(t *testing.T) {
	cfg, err := config.FromYAML([]byte(yamlProfile))
	require.NoError(t, err)
	assertProfile(t, cfg)

	t.Run("numeric keys", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte("vars:\n  1: one\n  name: World\n"))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"1": "one", "name": "World"}, cfg.Map("vars"))
	})

	_, err = config.FromYAML([]byte("vars: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml")
}

func TestFromJSON(t *testing.T) {
	cfg, err := config.FromJSON([]byte(jsonProfile))
	require.NoError(t, err)
	assertProfile(t, cfg)

	_, err = config.FromJSON([]byte("{"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse json")
}

func TestFromTOML(t *testing.T) {
	cfg, err := config.FromTOML([]byte(tomlProfile))
	require.NoError(t, err)
	assertProfile(t, cfg)

	_, err = config.FromTOML([]byte("vars = ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse toml")
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"profile.yaml": yamlProfile,
		"profile.YML":  yamlProfile,
		"profile.json": jsonProfile,
		"profile.toml": tomlProfile,
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			cfg, err := config.FromFile(path)
			require.NoError(t, err)
			assertProfile(t, cfg)
		})
	}

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "profile.ini")
		require.NoError(t, os.WriteFile(path, []byte("x=1"), 0o644))

		_, err := config.FromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported config file extension")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.FromFile(filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
