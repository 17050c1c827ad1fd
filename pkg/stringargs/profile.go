package stringargs

import (
	"context"
	"fmt"

	"github.com/randalmurphal/stringargs/pkg/stringargs/config"
	"github.com/randalmurphal/stringargs/pkg/stringargs/convert"
	"github.com/randalmurphal/stringargs/pkg/stringargs/template"
)

// Profile keys.
const (
	keyMissing   = "missing"
	keySentinel  = "sentinel"
	keyConverter = "converter"
	keyVars      = "vars"
)

// Profile pairs a set of variables with the expander configured to apply them.
type Profile struct {
	Vars     Args
	Expander *template.Expander
}

// LoadProfile reads a profile file (.yaml, .yml, .json or .toml).
// opts are applied after the file's settings and take precedence.
func LoadProfile(path string, opts ...template.Option) (*Profile, error) {
	cfg, err := config.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return ProfileFromConfig(cfg, opts...)
}

// ProfileFromConfig builds a Profile from a decoded document.
// Converter names are resolved against convert.Default().
func ProfileFromConfig(cfg config.Config, opts ...template.Option) (*Profile, error) {
	action, err := template.ParseMissingAction(cfg.String(keyMissing, template.MissingSentinel.String()))
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", keyMissing, err)
	}

	conv, err := convert.Default().Lookup(cfg.String(keyConverter, "text"))
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", keyConverter, err)
	}

	vars := cfg.Map(keyVars)
	args := make(Args, len(vars))
	for k, v := range vars {
		args[k] = v
	}

	all := append([]template.Option{
		template.WithMissingAction(action),
		template.WithSentinel(cfg.String(keySentinel, template.Sentinel)),
		template.WithConverter(conv),
	}, opts...)

	return &Profile{
		Vars:     args,
		Expander: template.NewExpander(all...),
	}, nil
}

// Apply substitutes placeholders in base from the profile's variables.
func (p *Profile) Apply(base string) (string, error) {
	return p.ApplyContext(context.Background(), base)
}

// ApplyContext is Apply with spans and metrics reported under ctx.
// Values are rendered with the profile's converter.
func (p *Profile) ApplyContext(ctx context.Context, base string) (string, error) {
	return p.Expander.ApplyContext(ctx, base, p.Vars, nil)
}
