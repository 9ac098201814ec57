package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/quiltui/quilt/internal/logger"
	"github.com/quiltui/quilt/internal/tui"
)

type browseFlags struct {
	total    int
	limit    int
	siblings int
}

func newBrowseCmd(root *rootFlags, log *logger.Logger) *cobra.Command {
	flags := &browseFlags{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse a paginated dataset interactively",
		Long:  `Launch the interactive pagination demo. Navigate pages with the arrow keys, jump with digits, and watch the controller gate input while each page loads.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("total") {
				cfg.Demo.Total = flags.total
			}
			if cmd.Flags().Changed("limit") {
				cfg.Demo.Limit = flags.limit
			}
			if cmd.Flags().Changed("siblings") {
				cfg.Demo.SiblingCount = flags.siblings
			}

			m, err := tui.NewModel(cfg, log)
			if err != nil {
				return err
			}

			p := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				log.Error(err, "browse session failed")
				return fmt.Errorf("failed to run demo: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.total, "total", 0, "Total number of records in the dataset")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "Records per page")
	cmd.Flags().IntVar(&flags.siblings, "siblings", 0, "Page indicators kept on each side of the current page")

	return cmd
}
