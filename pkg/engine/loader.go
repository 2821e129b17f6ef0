package engine

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadConfig builds an EngineConfig by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (DefaultEngineConfig)
//  2. file (YAML) if XGSIM_CONFIG is set
//  3. env (prefix XGSIM_)
func LoadConfig() (*EngineConfig, error) {
	// Start with defaults
	base := DefaultEngineConfig()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("XGSIM_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: XGSIM_MAX_XG, XGSIM_SIMULATIONS, ...
	// Map env keys like XGSIM_FORM_WEIGHT -> form_weight (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("XGSIM_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "xgsim_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	// StatsWeight is derived, never configured directly
	cfg.StatsWeight = 1.0 - cfg.FormWeight

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
