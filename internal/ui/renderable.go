// Package ui defines the composition contract shared by every quilt
// component.
package ui

// Renderable is anything that can render itself to a string for terminal
// output. Components compose by accepting other Renderables as children.
type Renderable interface {
	View() string
}
