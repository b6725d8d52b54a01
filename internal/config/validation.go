package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Target.Validate(); err != nil {
		return fmt.Errorf("target config: %w", err)
	}
	if err := c.Pacing.Validate(); err != nil {
		return fmt.Errorf("pacing config: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}
	return nil
}

// Validate validates the target location.
func (t *Target) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("name is required")
	}
	if strings.ContainsAny(t.Name, `/\`) || t.Name == "." || t.Name == ".." {
		return fmt.Errorf("name must be a bare file name: %s", t.Name)
	}
	if filepath.IsAbs(t.Dir) || strings.HasPrefix(t.Dir, `\`) || strings.HasPrefix(t.Dir, "/") {
		return fmt.Errorf("dir must be relative to the launcher: %s", t.Dir)
	}
	parts := strings.FieldsFunc(filepath.Clean(t.Dir), func(r rune) bool { return r == '/' || r == '\\' })
	for _, part := range parts {
		if part == ".." {
			return fmt.Errorf("dir must stay below the launcher: %s", t.Dir)
		}
	}
	return nil
}

// Validate validates pacing.
func (p *Pacing) Validate() error {
	pauses := map[string]Duration{
		"initialize": p.Initialize,
		"check":      p.Check,
		"launch":     p.Launch,
		"success":    p.Success,
	}
	for name, d := range pauses {
		if d.Duration < 0 {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}
	return nil
}

// Validate validates logging configuration.
func (l *Logging) Validate() error {
	switch l.Level {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("unknown level: %s", l.Level)
	}
}
