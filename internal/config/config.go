package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/noki-launcher/internal/procutil"
)

// GetConfigPath returns the configuration path next to the executable.
func GetConfigPath() string {
	return procutil.NextToExecutable(FileName)
}

// Load reads configuration from a YAML file and merges it over the defaults.
// A missing file is not an error; the defaults are returned and nothing is
// written to disk.
func Load(path string) (*Config, error) {
	if path == "" {
		return LoadFromBytes(nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadFromBytes(nil)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses YAML configuration and merges it over the defaults.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	return cfg, nil
}
