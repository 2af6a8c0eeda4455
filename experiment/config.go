package experiment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads and validates a YAML experiment configuration.
//
// Missing fields keep their zero values, so a file usually spells out the
// whole experiment; an absent map falls back to DefaultMap before
// validation.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("experiment: open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("experiment: decode config: %w", err)
	}
	if cfg.Map == "" {
		cfg.Map = DefaultMap
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
