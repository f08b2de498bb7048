package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/flashingpumpkin/perkakas/internal/clipboard"
	"github.com/flashingpumpkin/perkakas/internal/util"
	"github.com/spf13/cobra"
)

// clipboardWriter is the clipboard used by the copy command.
var clipboardWriter clipboard.Writer = clipboard.System

var copyCmd = newCopyCmd()

// newCopyCmd creates the copy command.
func newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy [text]",
		Short: "Copy text to the system clipboard",
		Long: `Copy text to the system clipboard. Without an argument the text is read
from standard input, so results can be piped in:

    perkakas rupiah 1500000 | perkakas copy`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var text string
			if len(args) == 1 {
				text = args[0]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				text = strings.TrimRight(string(data), "\r\n")
			}

			f := newFormatter(cfg, cmd.OutOrStdout())
			return clipboard.Copy(clipboardWriter, text, func() {
				f.PrintLabeled("Copied", util.FormatNumber(int64(utf8.RuneCountInString(text)), ",")+" characters")
			})
		},
	}
}
