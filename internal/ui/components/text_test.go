package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRendersContent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", NewText("hello").View())
	assert.Contains(t, TitleText("Heading").View(), "Heading")
	assert.Contains(t, CodeText("quilt browse").View(), "quilt browse")
}

func TestTextSetContent(t *testing.T) {
	t.Parallel()

	text := NewText("before")
	require.Same(t, text, text.SetContent("after"))
	assert.Equal(t, "after", text.Content())
}

func TestDividerFillsContextWidth(t *testing.T) {
	t.Parallel()

	view := NewDivider().ViewWithContext(DefaultContext().WithWidth(12))
	assert.Equal(t, strings.Repeat("─", 12), view)
}

func TestDividerExplicitWidthWins(t *testing.T) {
	t.Parallel()

	view := NewDivider().WithWidth(5).ViewWithContext(DefaultContext().WithWidth(40))
	assert.Equal(t, strings.Repeat("─", 5), view)
}

func TestDashedDividerUsesDashes(t *testing.T) {
	t.Parallel()

	view := DashedDivider().WithWidth(4).View()
	assert.Equal(t, "----", view)
}

func TestSpacerDimensions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "   ", HorizontalSpacer(3).View())
	assert.Equal(t, "", NewSpacer(0, 0).View())

	vertical := VerticalSpacer(3).View()
	assert.Equal(t, 2, strings.Count(vertical, "\n"))
}

func TestHeaderWithSubtitle(t *testing.T) {
	t.Parallel()

	header := NewHeader("Pagination").WithSubtitle("95 items")
	view := header.View()

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Pagination")
	assert.Contains(t, lines[1], "95 items")
}
