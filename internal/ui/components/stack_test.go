package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVStackJoinsChildrenVertically(t *testing.T) {
	t.Parallel()

	stack := VStack(NewText("alpha"), NewText("beta"))
	view := stack.View()

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "alpha")
	assert.Contains(t, lines[1], "beta")
}

func TestHStackJoinsChildrenHorizontally(t *testing.T) {
	t.Parallel()

	stack := HStack(NewText("left"), NewText("right")).WithGap(1)
	view := stack.View()

	require.NotContains(t, view, "\n")
	assert.Contains(t, view, "left right")
}

func TestStackSkipsNilAndEmptyChildren(t *testing.T) {
	t.Parallel()

	stack := VStack(nil, NewText(""), NewText("only"))
	view := stack.View()

	assert.Equal(t, "only", view)
}

func TestStackResponsiveDirectionFollowsWidth(t *testing.T) {
	t.Parallel()

	stack := NewStack(NewText("a"), NewText("b")).
		WithDirection(PerBreakpoint(DirectionVertical, DirectionHorizontal, DirectionHorizontal))

	narrow := stack.ViewWithContext(DefaultContext().WithWidth(40))
	assert.Contains(t, narrow, "\n")

	wide := stack.ViewWithContext(DefaultContext().WithWidth(120))
	assert.NotContains(t, wide, "\n")
}

func TestStackGapInsertsSpacing(t *testing.T) {
	t.Parallel()

	noGap := VStack(NewText("a"), NewText("b")).View()
	withGap := VStack(NewText("a"), NewText("b")).WithGap(1).View()

	assert.Greater(t, strings.Count(withGap, "\n"), strings.Count(noGap, "\n"))
}

func TestStackAddAppendsChildren(t *testing.T) {
	t.Parallel()

	stack := NewStack(NewText("one"))
	stack.Add(NewText("two"), NewText("three"))
	assert.Len(t, stack.Children(), 3)
}
