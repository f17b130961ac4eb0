package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"record-flattener/internal/schema"
)

const filePerm = 0o644

// LoadFile loads and parses a YAML run configuration from the given path.
func LoadFile(path string) (*Config, error) {
	cfg, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	return cfg, nil
}

// ReadFile is LoadFile without defaults, for callers that override
// fields first (defaults such as decode_unicode depend on the mode).
func ReadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Decode(data)
}

// Parse parses YAML data into a Config and applies defaults.
func Parse(data []byte) (*Config, error) {
	cfg, err := Decode(data)
	if err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	return cfg, nil
}

// Decode parses YAML data into a Config without applying defaults.
func Decode(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults fills in default values for unset optional fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}

	if cfg.Placeholder == nil {
		p := "0"
		cfg.Placeholder = &p
	}

	if cfg.DecodeUnicode == nil {
		decode := cfg.Mode == schema.ModeFixed
		cfg.DecodeUnicode = &decode
	}

	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes a Config to the given path.
func WriteFile(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
