package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewButtonDefaults(t *testing.T) {
	t.Parallel()

	button := NewButton("Next")
	assert.Equal(t, "Next", button.Label())
	assert.False(t, button.IsActive())
	assert.False(t, button.IsDisabled())
}

func TestButtonViewContainsLabel(t *testing.T) {
	t.Parallel()

	view := NewButton("Submit").View()
	assert.Contains(t, view, "Submit")
}

func TestButtonVariantPaddingFromTheme(t *testing.T) {
	t.Parallel()

	// ButtonVariant strategies pad horizontally from the spacing scale.
	view := MutedButton("7").View()
	pad := strings.Repeat(" ", SpacingValue(DefaultTheme(), SpacingSmall))
	assert.Contains(t, view, pad+"7"+pad)
}

func TestButtonBuilderReturnsSameReceiver(t *testing.T) {
	t.Parallel()

	button := NewButton("x")
	require.Same(t, button, button.WithActive(true))
	require.Same(t, button, button.WithDisabled(true))
	require.Same(t, button, button.WithVariant(ButtonVariantInfo))
	assert.True(t, button.IsActive())
	assert.True(t, button.IsDisabled())
}

func TestBadgeViewContainsText(t *testing.T) {
	t.Parallel()

	assert.Contains(t, SuccessBadge("ok").View(), "ok")
	assert.Contains(t, WarningBadge("careful").View(), "careful")
	assert.Contains(t, InfoBadge("fyi").View(), "fyi")
}

func TestBadgeUnregisteredVariantFallsBackToBase(t *testing.T) {
	t.Parallel()

	badge := NewBadge("raw").WithVariant(BadgeVariant(99))
	assert.Equal(t, "raw", badge.ViewWithContext(DefaultContext()))
}
