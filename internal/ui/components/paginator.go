package components

import (
	"github.com/quiltui/quilt/internal/pagination"
	"github.com/quiltui/quilt/internal/ui"
)

// Paginator renders a pagination indicator sequence as a row of page
// buttons. The current page is highlighted, ellipses render as muted text,
// and the whole control disappears when there are fewer than two
// indicators (zero or one page total).
type Paginator struct {
	BaseComponent
	indicators  []pagination.Indicator
	currentPage int
	gap         int
}

// NewPaginator creates a paginator for the given indicators and current page.
func NewPaginator(indicators []pagination.Indicator, currentPage int) *Paginator {
	return &Paginator{
		BaseComponent: NewBaseComponent(),
		indicators:    indicators,
		currentPage:   currentPage,
		gap:           1,
	}
}

// PaginatorFromController creates a paginator bound to a controller's
// current state. Call again after navigation events to pick up the new
// range.
func PaginatorFromController(c *pagination.Controller) *Paginator {
	return NewPaginator(c.Indicators(), c.CurrentPage())
}

// View renders the paginator with the default context.
func (p *Paginator) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the paginator with the given context.
func (p *Paginator) ViewWithContext(ctx RenderContext) string {
	if len(p.indicators) < 2 {
		return ""
	}

	slots := make([]ui.Renderable, 0, len(p.indicators))
	for _, indicator := range p.indicators {
		slots = append(slots, p.slotFor(indicator))
	}

	row := HStack(slots...).WithGap(p.gap)
	row.SetStrategy(p.strategy)
	return row.ViewWithContext(ctx)
}

func (p *Paginator) slotFor(indicator pagination.Indicator) ui.Renderable {
	if indicator.IsEllipsis() {
		return NewText(indicator.String()).WithAppliers(MutedForeground(PaletteNeutral))
	}

	button := MutedButton(indicator.String())
	if indicator.Page == p.currentPage {
		button = NewButton(indicator.String()).WithActive(true)
	}
	return button
}

// WithGap sets the spacing between page slots.
func (p *Paginator) WithGap(gap int) *Paginator {
	p.gap = gap
	return p
}

// WithAppliers applies theme-based style modifiers to the paginator row.
func (p *Paginator) WithAppliers(appliers ...StyleFunc) *Paginator {
	p.AddAppliers(appliers...)
	return p
}

// Indicators returns the indicator sequence being rendered.
func (p *Paginator) Indicators() []pagination.Indicator {
	return p.indicators
}

// CurrentPage returns the highlighted page.
func (p *Paginator) CurrentPage() int {
	return p.currentPage
}
