package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Dump renders the configuration as YAML. It is used by the daemon's
// -print-config flag and produces output a config file can be seeded from.
func Dump(cfg *Config) (string, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(out), nil
}
