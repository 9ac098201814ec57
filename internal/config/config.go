// Package config loads quilt's optional YAML configuration file, which
// selects the theme mode, allows spacing-scale overrides, and seeds the demo
// commands' pagination defaults.
package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/quiltui/quilt/internal/ui/components"
	quilterrors "github.com/quiltui/quilt/pkg/errors"
)

// Config represents the full quilt configuration document.
type Config struct {
	Theme ThemeConfig `yaml:"theme,omitempty"`
	Demo  DemoConfig  `yaml:"demo,omitempty"`
}

// ThemeConfig selects the theme mode and optional spacing overrides.
type ThemeConfig struct {
	Mode    string         `yaml:"mode,omitempty" validate:"omitempty,oneof=light dark system"`
	Spacing *SpacingConfig `yaml:"spacing,omitempty"`
}

// SpacingConfig overrides individual tokens of the theme's spacing scale.
// Nil fields keep the theme default.
type SpacingConfig struct {
	ExtraSmall *int `yaml:"extra_small,omitempty" validate:"omitempty,gte=0,lte=16"`
	Small      *int `yaml:"small,omitempty" validate:"omitempty,gte=0,lte=16"`
	Medium     *int `yaml:"medium,omitempty" validate:"omitempty,gte=0,lte=16"`
	Large      *int `yaml:"large,omitempty" validate:"omitempty,gte=0,lte=16"`
}

// DemoConfig seeds the pagination demo commands.
type DemoConfig struct {
	Total        int `yaml:"total,omitempty" validate:"omitempty,gte=0"`
	Limit        int `yaml:"limit,omitempty" validate:"omitempty,gt=0"`
	SiblingCount int `yaml:"sibling_count,omitempty" validate:"omitempty,gte=0"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Theme: ThemeConfig{Mode: "system"},
		Demo:  DemoConfig{Total: 95, Limit: 10, SiblingCount: 1},
	}
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, validates it, and fills
// unset fields from the defaults. Unknown keys are rejected so typos fail
// loudly instead of being silently ignored.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, quilterrors.NewParseError(path, 0, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		return nil, quilterrors.NewParseError(path, extractLine(err), err)
	}

	cfg.applyDefaults()

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()
	if c.Theme.Mode == "" {
		c.Theme.Mode = defaults.Theme.Mode
	}
	if c.Demo.Total == 0 {
		c.Demo.Total = defaults.Demo.Total
	}
	if c.Demo.Limit == 0 {
		c.Demo.Limit = defaults.Demo.Limit
	}
}

// Mode returns the configured theme mode.
func (c *Config) Mode() components.Mode {
	switch c.Theme.Mode {
	case "light":
		return components.ModeLight
	case "dark":
		return components.ModeDark
	default:
		return components.ModeSystem
	}
}

// ResolveTheme resolves the configured mode to a concrete theme and applies
// any spacing overrides.
func (c *Config) ResolveTheme() components.Theme {
	theme := components.ThemeForMode(c.Mode())

	if s := c.Theme.Spacing; s != nil {
		apply := func(size components.SpacingSize, value *int) {
			if value != nil {
				theme.Spacing[size] = *value
			}
		}
		apply(components.SpacingExtraSmall, s.ExtraSmall)
		apply(components.SpacingSmall, s.Small)
		apply(components.SpacingMedium, s.Medium)
		apply(components.SpacingLarge, s.Large)
	}

	return theme
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
