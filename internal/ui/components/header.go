package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Header is a title component with an optional subtitle.
type Header struct {
	BaseComponent
	title    string
	subtitle string
}

// NewHeader creates a header with the given title.
func NewHeader(title string) *Header {
	return &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
}

// View renders the header with the default context.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header with the given context.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	titleStyle := h.ComputeStyle(ctx.Theme).Inherit(TypographyStyle(ctx.Theme, TypographyTitle))

	if h.subtitle == "" {
		return titleStyle.Render(h.title)
	}

	subtitleStyle := TypographyStyle(ctx.Theme, TypographySubtitle)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(h.title),
		subtitleStyle.Render(h.subtitle),
	)
}

// WithSubtitle adds a subtitle below the title.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithAppliers applies theme-based style modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.SetAppliers(appliers...)
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// Subtitle returns the header subtitle.
func (h *Header) Subtitle() string {
	return h.subtitle
}
