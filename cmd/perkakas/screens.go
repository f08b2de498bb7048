package main

import (
	"fmt"
	"os"

	"github.com/flashingpumpkin/perkakas/internal/breakpoint"
	"github.com/flashingpumpkin/perkakas/internal/output"
	"github.com/spf13/cobra"
)

var screensCmd = newScreensCmd()

// newScreensCmd creates the screens command.
func newScreensCmd() *cobra.Command {
	var columns int
	cmd := &cobra.Command{
		Use:   "screens",
		Short: "Show which breakpoints the terminal width satisfies",
		Long: `Show the configured breakpoints and which of them the current terminal
width satisfies. Each terminal column counts as 8px, so an 80 column
terminal matches "640px" and "80ch".

Use --columns to evaluate a width other than the current terminal's.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			f := newFormatter(cfg, cmd.OutOrStdout())

			if !cmd.Flags().Changed("columns") {
				terminal := breakpoint.NewTerminal(int(os.Stdout.Fd()))
				if !terminal.Supported() {
					f.PrintVerbose("stdout is not a terminal, evaluating 0 columns")
				}
				columns = terminal.Columns()
			}
			if columns < 0 {
				return fmt.Errorf("columns must be non-negative, got %d", columns)
			}

			layout, err := breakpoint.New(cfg.Screens, breakpoint.NewViewport(float64(columns)*breakpoint.ChPixels))
			if err != nil {
				return err
			}

			f.PrintLabeled("Width", fmt.Sprintf("%d columns", columns))
			f.PrintScreens(screenStatuses(layout))
			return nil
		},
	}
	cmd.Flags().IntVar(&columns, "columns", 0, "Terminal width in columns to evaluate")
	return cmd
}

// screenStatuses reports every screen of layout with its current match.
func screenStatuses(layout *breakpoint.Layout) []output.ScreenStatus {
	screens := layout.Screens()
	statuses := make([]output.ScreenStatus, len(screens))
	for i, s := range screens {
		statuses[i] = output.ScreenStatus{
			Name:     s.Name,
			MinWidth: s.MinWidth,
			Match:    layout.Match(s.Name),
		}
	}
	return statuses
}
