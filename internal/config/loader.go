package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the name looked up in the user and local config directories.
const ConfigFile = "barista.yaml"

// LoadBarista loads the tier configuration.
// Search order: customPath -> ~/.barista/configs/barista.yaml ->
// ./configs/barista.yaml -> embedded default.
// Files are decoded over the defaults, so they may set only some keys,
// including single fields of a tier.
// An explicit customPath must exist and be valid; the implicit locations
// are skipped when unreadable or invalid.
func LoadBarista(customPath string) (BaristaConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BaristaConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return BaristaConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return BaristaConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(ConfigFile),
		filepath.Join("configs", ConfigFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := decode(defaultBaristaYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultBaristaConfig(), nil
	}
	return cfg, nil
}

// tierOverride is a tier as written in a file; nil fields keep the default.
type tierOverride struct {
	Colors    []string `yaml:"colors"`
	EmptyCups *int     `yaml:"empty_cups"`
}

// decode unmarshals YAML over the built-in defaults. Tiers are merged
// field by field, so a file may change only the colors of one tier.
func decode(data []byte) (BaristaConfig, error) {
	cfg := DefaultBaristaConfig()
	tiers := cfg.Tiers
	cfg.Tiers = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BaristaConfig{}, err
	}

	var file struct {
		Tiers map[string]tierOverride `yaml:"tiers"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return BaristaConfig{}, err
	}
	for name, o := range file.Tiers {
		tier := tiers[name]
		if o.Colors != nil {
			tier.Colors = o.Colors
		}
		if o.EmptyCups != nil {
			tier.EmptyCups = *o.EmptyCups
		}
		tiers[name] = tier
	}
	cfg.Tiers = tiers
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".barista", "configs", filename)
}
