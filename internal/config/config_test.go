package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quiltui/quilt/internal/ui/components"
	quilterrors "github.com/quiltui/quilt/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "quilt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseConfigValidDocument(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
theme:
  mode: dark
demo:
  total: 240
  limit: 25
  sibling_count: 2
`)

	cfg, err := ParseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme.Mode)
	assert.Equal(t, components.ModeDark, cfg.Mode())
	assert.Equal(t, 240, cfg.Demo.Total)
	assert.Equal(t, 25, cfg.Demo.Limit)
	assert.Equal(t, 2, cfg.Demo.SiblingCount)
}

func TestParseConfigFillsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
demo:
  total: 50
`)

	cfg, err := ParseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "system", cfg.Theme.Mode)
	assert.Equal(t, components.ModeSystem, cfg.Mode())
	assert.Equal(t, 50, cfg.Demo.Total)
	assert.Equal(t, Default().Demo.Limit, cfg.Demo.Limit)
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var parseErr *quilterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseConfigMalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "theme: [unclosed")

	_, err := ParseConfig(path)
	require.Error(t, err)

	var parseErr *quilterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseConfigRejectsUnknownMode(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
theme:
  mode: sepia
`)

	_, err := ParseConfig(path)
	require.Error(t, err)

	var validationErr *quilterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Field, "mode")
}

func TestParseConfigRejectsNegativeSiblingCount(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
demo:
  sibling_count: -1
`)

	_, err := ParseConfig(path)
	require.Error(t, err)

	var validationErr *quilterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestParseConfigRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
theme:
  mode: dark
  palete: oops
`)

	_, err := ParseConfig(path)
	require.Error(t, err)

	var parseErr *quilterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseConfigAppliesSpacingOverrides(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
theme:
  spacing:
    small: 4
    large: 8
`)

	cfg, err := ParseConfig(path)
	require.NoError(t, err)

	theme := cfg.ResolveTheme()
	assert.Equal(t, 4, components.SpacingValue(theme, components.SpacingSmall))
	assert.Equal(t, 8, components.SpacingValue(theme, components.SpacingLarge))

	defaults := components.DefaultTheme()
	assert.Equal(t,
		components.SpacingValue(defaults, components.SpacingMedium),
		components.SpacingValue(theme, components.SpacingMedium))
}

func TestParseConfigRejectsOversizedSpacing(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
theme:
  spacing:
    small: 40
`)

	_, err := ParseConfig(path)
	require.Error(t, err)

	var validationErr *quilterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestResolveThemeFollowsMode(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Theme.Mode = "dark"
	assert.Equal(t, components.DarkTheme().Palette.Surface, cfg.ResolveTheme().Palette.Surface)

	cfg.Theme.Mode = "light"
	assert.Equal(t, components.LightTheme().Palette.Surface, cfg.ResolveTheme().Palette.Surface)
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	err := ValidateConfig(nil)
	require.Error(t, err)
}
