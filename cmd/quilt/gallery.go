package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quiltui/quilt/internal/pagination"
	"github.com/quiltui/quilt/internal/ui"
	"github.com/quiltui/quilt/internal/ui/components"
)

func newGalleryCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Print a showcase of every component",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}

			ctx := components.DefaultContext().
				WithTheme(cfg.ResolveTheme()).
				WithWidth(terminalWidth())

			return renderGallery(cmd.OutOrStdout(), ctx)
		},
	}

	return cmd
}

// terminalWidth reports the width of the attached terminal, falling back to
// the default when stdout is not a TTY.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return components.DefaultWidth
	}
	return width
}

func renderGallery(w io.Writer, ctx components.RenderContext) error {
	indicators, err := pagination.Compute(95, 10, 5, 1)
	if err != nil {
		return err
	}

	sections := []ui.Renderable{
		components.NewHeader("quilt component gallery").
			WithSubtitle("themed building blocks for terminal interfaces"),

		gallerySection("Typography",
			components.TitleText("Title"),
			components.SubtitleText("Subtitle"),
			components.NewText("Body"),
			components.CodeText("Code"),
			components.EmphasisText("Emphasis"),
		),

		gallerySection("Buttons", components.HStack(
			components.NewButton("Primary"),
			components.SuccessButton("Success"),
			components.DangerButton("Danger"),
			components.MutedButton("Muted"),
			components.NewButton("Active").WithActive(true),
			components.NewButton("Disabled").WithDisabled(true),
		).WithGap(2)),

		gallerySection("Badges", components.HStack(
			components.NewBadge("default"),
			components.SuccessBadge("passing"),
			components.WarningBadge("degraded"),
			components.InfoBadge("info"),
		).WithGap(2)),

		gallerySection("Dividers",
			components.NewDivider(),
			components.DashedDivider(),
			components.ThickDivider(),
		),

		gallerySection("Paginator",
			components.NewPaginator(indicators, 5),
		),
	}

	view := components.VStack(sections...).WithGap(1).ViewWithContext(ctx)
	_, err = fmt.Fprintln(w, view)
	return err
}

func gallerySection(title string, children ...ui.Renderable) ui.Renderable {
	body := append(
		[]ui.Renderable{
			components.SubtitleText(title),
		},
		children...,
	)
	return components.VStack(body...)
}
