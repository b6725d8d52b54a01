// Package config handles launcher configuration loading and validation.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the optional configuration file looked up next to the executable.
const FileName = "launcher.yaml"

// Duration wraps time.Duration so YAML can carry values like "300ms" or "1s".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("unsupported duration format: %v", value.Kind)
	}
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Config represents the launcher configuration.
type Config struct {
	Target  Target  `yaml:"target"`
	Pacing  Pacing  `yaml:"pacing"`
	Window  Window  `yaml:"window"`
	Logging Logging `yaml:"logging"`
	Exit    Exit    `yaml:"exit"`
}

// Target describes where the companion executable lives relative to the
// launcher's own directory.
type Target struct {
	Dir  string `yaml:"dir"`
	Name string `yaml:"name"`
}

// Pacing holds the pauses shown between progress stages. They only exist so
// the user can read the status line.
type Pacing struct {
	Initialize Duration `yaml:"initialize"`
	Check      Duration `yaml:"check"`
	Launch     Duration `yaml:"launch"`
	Success    Duration `yaml:"success"`
}

// Window configuration for the progress window.
type Window struct {
	Title string `yaml:"title"`
}

// Logging configuration. An empty File disables the file sink.
type Logging struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Exit controls the process exit status.
type Exit struct {
	// Strict makes worker failures exit with a non-zero status.
	Strict bool `yaml:"strict"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Target: Target{
			Dir:  "dist",
			Name: "Noki_HBR_Auto.exe",
		},
		Pacing: Pacing{
			Initialize: Duration{300 * time.Millisecond},
			Check:      Duration{500 * time.Millisecond},
			Launch:     Duration{500 * time.Millisecond},
			Success:    Duration{1000 * time.Millisecond},
		},
		Window: Window{
			Title: "Noki启动器 (管理员模式)",
		},
		Logging: Logging{
			Level: "info",
			File:  "",
		},
	}
}
