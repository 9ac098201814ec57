package tui

import (
	"fmt"

	"github.com/quiltui/quilt/internal/ui"
	"github.com/quiltui/quilt/internal/ui/components"
)

// View renders the demo screen with the component kit.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := components.DefaultContext().
		WithTheme(m.theme).
		WithWidth(m.width)

	children := []ui.Renderable{
		components.NewHeader("quilt pagination demo").
			WithSubtitle(fmt.Sprintf("%d records", len(m.items))),
		components.NewDivider().WithAppliers(components.MutedForeground(components.PaletteNeutral)),
	}

	for _, item := range m.page {
		children = append(children, components.NewText(item))
	}

	children = append(children,
		components.NewDivider().WithAppliers(components.MutedForeground(components.PaletteNeutral)),
		m.statusLine(),
		components.PaginatorFromController(m.controller),
		components.NewText(m.help.View(m.keys)),
	)

	return components.VStack(children...).WithGap(0).ViewWithContext(ctx) + "\n"
}

func (m Model) statusLine() ui.Renderable {
	if m.controller.Loading() {
		return components.HStack(
			components.NewText(m.spin.View()),
			components.NewText("loading…"),
		).WithGap(1)
	}

	if !m.controller.Visible() {
		return components.NewText("everything fits on one page").
			WithAppliers(components.Typography(components.TypographySubtitle))
	}

	status := fmt.Sprintf("page %d of %d · offset %d · limit %d",
		m.controller.CurrentPage(),
		m.controller.LastPage(),
		m.controller.Offset(),
		m.controller.Limit(),
	)
	return components.SubtitleText(status)
}
