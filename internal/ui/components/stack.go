package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quiltui/quilt/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Alignment specifies how children line up on the cross axis.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

func (a Alignment) toLipglossPosition() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// Stack arranges children in a single direction with optional gaps. Its
// direction and alignment are responsive props: they can be fixed or vary
// per breakpoint, resolved against the context width at render time.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Responsive[Direction]
	align     Responsive[Alignment]
	gap       int
}

// NewStack creates a vertical stack of the given children.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     Fixed(DirectionVertical),
		align:         Fixed(AlignStart),
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(Fixed(DirectionHorizontal))
}

// View renders the stack with the default context.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack and its children.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	if len(s.children) == 0 {
		return s.ComputeStyle(ctx.Theme).Render("")
	}

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := renderChild(child, ctx); view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return s.ComputeStyle(ctx.Theme).Render("")
	}

	direction := s.direction.Resolve(ctx.Width)
	position := s.align.Resolve(ctx.Width).toLipglossPosition()

	var content string
	if direction == DirectionHorizontal {
		content = lipgloss.JoinHorizontal(position, s.withGaps(views, strings.Repeat(" ", s.gap))...)
	} else {
		content = lipgloss.JoinVertical(position, s.withGaps(views, strings.Repeat("\n", s.gap))...)
	}

	return s.ComputeStyle(ctx.Theme).Render(content)
}

func (s *Stack) withGaps(views []string, spacer string) []string {
	if s.gap <= 0 || len(views) < 2 {
		return views
	}
	spaced := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			spaced = append(spaced, spacer)
		}
		spaced = append(spaced, view)
	}
	return spaced
}

// WithDirection sets the layout direction prop.
func (s *Stack) WithDirection(direction Responsive[Direction]) *Stack {
	s.direction = direction
	return s
}

// WithAlign sets the cross-axis alignment prop.
func (s *Stack) WithAlign(align Responsive[Alignment]) *Stack {
	s.align = align
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the stack's children.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
