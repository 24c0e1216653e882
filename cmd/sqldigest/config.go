package main

import (
	"os"

	"github.com/k0kubun/sqldigest/digest"
	"github.com/kballard/go-shellquote"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// yamlConfig mirrors digest.Config for YAML unmarshaling; the CLI
// loads one of these, then overlays flag and --set overrides on top
// of digest.DefaultConfig().
type yamlConfig struct {
	Lowercase      *bool `yaml:"lowercase"`
	ReplaceNull    *bool `yaml:"replace_null"`
	NoDigits       *bool `yaml:"no_digits"`
	GroupingLimit  *int  `yaml:"grouping_limit"`
	MaxQueryLength *int  `yaml:"max_query_length"`
}

// loadConfigFile reads a YAML config file and applies its fields on
// top of base, returning the merged result. A field absent from the
// file leaves base's value untouched.
func loadConfigFile(path string, base digest.Config) (digest.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, xerrors.Errorf("loading digest config: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return base, xerrors.Errorf("loading digest config: %w", err)
	}

	if yc.Lowercase != nil {
		base.Lowercase = *yc.Lowercase
	}
	if yc.ReplaceNull != nil {
		base.ReplaceNull = *yc.ReplaceNull
	}
	if yc.NoDigits != nil {
		base.NoDigits = *yc.NoDigits
	}
	if yc.GroupingLimit != nil {
		base.GroupingLimit = *yc.GroupingLimit
	}
	if yc.MaxQueryLength != nil {
		base.MaxQueryLength = *yc.MaxQueryLength
	}
	return base, nil
}

// applySetOverrides parses a shell-quoted "key=value key2=value2"
// string (so values containing spaces can be quoted) and applies each
// key onto cfg. Unknown keys are reported as an error rather than
// silently ignored.
func applySetOverrides(raw string, cfg digest.Config) (digest.Config, error) {
	fields, err := shellquote.Split(raw)
	if err != nil {
		return cfg, xerrors.Errorf("parsing --set: %w", err)
	}

	for _, field := range fields {
		key, value := digest.Split2(field, "=")
		switch key {
		case "lowercase":
			cfg.Lowercase = value == "true" || value == "1"
		case "replace_null":
			cfg.ReplaceNull = value == "true" || value == "1"
		case "no_digits":
			cfg.NoDigits = value == "true" || value == "1"
		case "grouping_limit":
			n, err := parseInt(value)
			if err != nil {
				return cfg, xerrors.Errorf("--set grouping_limit: %w", err)
			}
			cfg.GroupingLimit = n
		case "max_query_length":
			n, err := parseInt(value)
			if err != nil {
				return cfg, xerrors.Errorf("--set max_query_length: %w", err)
			}
			cfg.MaxQueryLength = n
		default:
			return cfg, xerrors.Errorf("--set: unknown key %q", key)
		}
	}
	return cfg, nil
}

func parseInt(s string) (int, error) {
	n := 0
	neg := false
	if len(s) == 0 {
		return 0, xerrors.Errorf("empty integer")
	}
	for i, c := range []byte(s) {
		if i == 0 && c == '-' {
			neg = true
			continue
		}
		if c < '0' || c > '9' {
			return 0, xerrors.Errorf("invalid integer %q", s)
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}
