// Package config loads settings for the inspect tool.
//
// Values are layered, later sources overriding earlier ones: built-in
// defaults, an optional YAML file, PASCAL3D_* environment variables, and
// finally command line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

// EnvPrefix is the prefix of environment overrides, e.g. PASCAL3D_SPLIT_SEED.
const EnvPrefix = "PASCAL3D_"

// SplitConfig controls the train/validation split.
type SplitConfig struct {
	Validation float64 `koanf:"validation"`
	Canonical  bool    `koanf:"canonical"`
	Seed       *uint64 `koanf:"seed"`
}

// Config is the inspect tool configuration.
type Config struct {
	Path  string      `koanf:"path"`
	Class string      `koanf:"class"`
	Split SplitConfig `koanf:"split"`
	Debug bool        `koanf:"debug"`
}

// Defaults mirrors the loader's own defaults.
func Defaults() map[string]any {
	return map[string]any{
		"path":             "pascal3d_imagenet_train_test.h5",
		"class":            "",
		"split.validation": 0.2,
		"split.canonical":  true,
		"debug":            false,
	}
}

// Load builds a Config. filePath may be empty to skip the YAML file.
// overrides are applied last, keyed like the YAML file ("split.seed").
func Load(filePath string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if filePath != "" {
		if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", filePath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps PASCAL3D_SPLIT_SEED to split.seed.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

// Validate checks value ranges.
func Validate(cfg *Config) error {
	if cfg.Path == "" {
		return fmt.Errorf("path must not be empty")
	}
	if v := cfg.Split.Validation; v < 0 || v > 1 {
		return fmt.Errorf("split.validation %v outside [0, 1]", v)
	}
	return nil
}
