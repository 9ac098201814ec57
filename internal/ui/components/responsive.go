package components

// Breakpoint names a width band. Components that accept responsive props
// resolve them against the render context width through these bands.
type Breakpoint int

const (
	// BreakpointNarrow covers widths below 60 columns.
	BreakpointNarrow Breakpoint = iota
	// BreakpointMedium covers widths from 60 up to 100 columns.
	BreakpointMedium
	// BreakpointWide covers widths of 100 columns and above.
	BreakpointWide
)

const (
	mediumMinWidth = 60
	wideMinWidth   = 100
)

// BreakpointForWidth maps a width in columns to its breakpoint.
func BreakpointForWidth(width int) Breakpoint {
	switch {
	case width >= wideMinWidth:
		return BreakpointWide
	case width >= mediumMinWidth:
		return BreakpointMedium
	default:
		return BreakpointNarrow
	}
}

// Responsive is a closed variant: either a single fixed value or a
// per-breakpoint lookup table. It resolves to one concrete value per
// render, so components never branch on value shape at render time.
type Responsive[T any] struct {
	fixed   T
	table   [3]T
	isTable bool
}

// Fixed wraps a single value that applies at every breakpoint.
func Fixed[T any](value T) Responsive[T] {
	return Responsive[T]{fixed: value}
}

// PerBreakpoint builds a lookup table with one value per breakpoint.
func PerBreakpoint[T any](narrow, medium, wide T) Responsive[T] {
	return Responsive[T]{table: [3]T{narrow, medium, wide}, isTable: true}
}

// Resolve returns the concrete value for the given width.
func (r Responsive[T]) Resolve(width int) T {
	if !r.isTable {
		return r.fixed
	}
	return r.table[BreakpointForWidth(width)]
}
