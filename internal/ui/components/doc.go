// Package components provides quilt's theme-aware presentational building
// blocks for terminal applications.
//
// # Architecture
//
// The component system has three layers:
//
//  1. Theme Layer - immutable theme definitions (palette, borders, spacing,
//     typography) selected through an explicit Mode (light/dark/system).
//  2. Modifier Layer - StyleFunc transformations that apply theme data to
//     lipgloss styles.
//  3. Component Layer - composable elements that render to strings.
//
// Themes are never global. They travel through RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	output := component.ViewWithContext(ctx)
//
// For quick one-off rendering, View() falls back to the default context.
//
// # Components
//
// Primitives: Text, Spacer, Divider.
// Layout: Stack (vertical/horizontal, responsive direction).
// Semantic: Button, Badge, Header, Paginator.
//
// The Paginator renders the indicator sequence produced by the pagination
// package: page numbers become buttons, the current page is highlighted,
// and collapsed runs appear as muted ellipses. It renders nothing when the
// underlying controller is hidden.
//
// # Responsive props
//
// Props that vary with the available width (a Stack's direction, for
// example) accept a Responsive value: either a fixed value or a
// per-breakpoint table resolved against the context width at render time.
package components
