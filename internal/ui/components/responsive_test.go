package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreakpointForWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width    int
		expected Breakpoint
	}{
		{width: 0, expected: BreakpointNarrow},
		{width: 59, expected: BreakpointNarrow},
		{width: 60, expected: BreakpointMedium},
		{width: 99, expected: BreakpointMedium},
		{width: 100, expected: BreakpointWide},
		{width: 240, expected: BreakpointWide},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, BreakpointForWidth(tc.width), "width=%d", tc.width)
	}
}

func TestFixedResolvesToSameValueEverywhere(t *testing.T) {
	t.Parallel()

	prop := Fixed(DirectionHorizontal)
	assert.Equal(t, DirectionHorizontal, prop.Resolve(10))
	assert.Equal(t, DirectionHorizontal, prop.Resolve(80))
	assert.Equal(t, DirectionHorizontal, prop.Resolve(200))
}

func TestPerBreakpointResolvesByWidth(t *testing.T) {
	t.Parallel()

	prop := PerBreakpoint(DirectionVertical, DirectionVertical, DirectionHorizontal)
	assert.Equal(t, DirectionVertical, prop.Resolve(40))
	assert.Equal(t, DirectionVertical, prop.Resolve(80))
	assert.Equal(t, DirectionHorizontal, prop.Resolve(140))
}

func TestPerBreakpointWorksForAnyValueType(t *testing.T) {
	t.Parallel()

	gaps := PerBreakpoint(0, 1, 2)
	assert.Equal(t, 0, gaps.Resolve(30))
	assert.Equal(t, 1, gaps.Resolve(70))
	assert.Equal(t, 2, gaps.Resolve(120))
}
