package main

import (
	"fmt"
	"strings"

	"github.com/flashingpumpkin/perkakas/internal/classes"
	"github.com/flashingpumpkin/perkakas/internal/dates"
	perrors "github.com/flashingpumpkin/perkakas/internal/errors"
	"github.com/flashingpumpkin/perkakas/internal/strcase"
	"github.com/flashingpumpkin/perkakas/internal/style"
	"github.com/flashingpumpkin/perkakas/internal/util"
	"github.com/spf13/cobra"
)

var (
	dateCmd     = newDateCmd()
	caseCmd     = newCaseCmd()
	ellipsisCmd = newEllipsisCmd()
	twCmd       = newTwCmd()
)

// newDateCmd creates the date command.
func newDateCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "date <date>",
		Short: "Render a date in a display style",
		Long: `Render a date in one of the display styles. Input may be an ISO date,
an RFC 3339 timestamp or a common written form. Unparsable input prints "-".

Styles: ` + kindNames(),
		Example: `  perkakas date 2023-06-09                  # Jun 09, 2023
  perkakas date 2023-06-09 --kind en-gb     # 09 June 2023`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !validKind(dates.Kind(kind)) {
				return fmt.Errorf("%w: unknown date style %q, valid options: %s", perrors.ErrInvalidInput, kind, kindNames())
			}
			newFormatter(cfg, cmd.OutOrStdout()).PrintResult(dates.Format(dates.Kind(kind), args[0]))
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", string(dates.KindUSA), "Display style")
	return cmd
}

func validKind(kind dates.Kind) bool {
	for _, k := range dates.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func kindNames() string {
	names := make([]string, len(dates.Kinds))
	for i, k := range dates.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// caseConverters maps case styles to their conversions.
var caseConverters = map[string]func(string) string{
	"title": strcase.TitleCase,
	"snake": strcase.CamelToSnake,
	"camel": strcase.SnakeToCamel,
	// snake_case to a title, through camelCase
	"label": util.Compose(strcase.SnakeToCamel, strcase.TitleCase),
}

// newCaseCmd creates the case command.
func newCaseCmd() *cobra.Command {
	var char string
	cmd := &cobra.Command{
		Use:   "case <title|snake|camel|label|special> <text>",
		Short: "Convert text between naming styles",
		Long: `Convert text between naming styles.

  title    this_is_text    -> This Is Text
  snake    camelCaseText   -> camel_case_text
  camel    snake_case_text -> snakeCaseText
  label    snake_case_text -> Snake Case Text
  special  replace every character that is not a letter or space with --char`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"title", "snake", "camel", "label", "special"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			f := newFormatter(cfg, cmd.OutOrStdout())

			kind, text := args[0], args[1]
			if kind == "special" {
				f.PrintResult(strcase.ReplaceSpecialChar(text, char))
				return nil
			}
			convert, ok := caseConverters[kind]
			if !ok {
				return fmt.Errorf("%w: unknown case style %q", perrors.ErrInvalidInput, kind)
			}
			if strcase.IsSpecialChar(text) {
				f.PrintVerbose("input has no letters or digits")
			}
			f.PrintResult(convert(text))
			return nil
		},
	}
	cmd.Flags().StringVar(&char, "char", "-", "Replacement used by the special style")
	return cmd
}

// newEllipsisCmd creates the ellipsis command.
func newEllipsisCmd() *cobra.Command {
	var (
		length   int
		position string
	)
	cmd := &cobra.Command{
		Use:   "ellipsis <text>",
		Short: "Shorten text with an ellipsis",
		Long: `Shorten text to --length characters and mark the cut with "...".

--position start keeps the tail, middle keeps both ends and end keeps
the head.`,
		Example: `  perkakas ellipsis "Hello World" --length 5                  # Hello...
  perkakas ellipsis "Hello World" --length 5 --position start # ...World`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			pos := style.Position(position)
			switch pos {
			case style.PositionStart, style.PositionMiddle, style.PositionEnd:
			default:
				return fmt.Errorf("%w: position must be start, middle, or end", perrors.ErrInvalidInput)
			}
			newFormatter(cfg, cmd.OutOrStdout()).PrintResult(style.TextEllipsis(args[0], length, pos))
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", 20, "Characters kept before the ellipsis")
	cmd.Flags().StringVarP(&position, "position", "p", string(style.PositionEnd), "Where to cut: start, middle, or end")
	return cmd
}

// newTwCmd creates the tw command.
func newTwCmd() *cobra.Command {
	var noMerge bool
	cmd := &cobra.Command{
		Use:   "tw <classes>...",
		Short: "Join and merge Tailwind CSS classes",
		Long: `Join class lists and drop utility classes overridden by a later class
of the same group, so "p-2 text-sm" followed by "p-4" becomes "text-sm p-4".
Use --no-merge to only join and drop empty values.`,
		Example: `  perkakas tw "p-2 text-sm" p-4        # text-sm p-4`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			values := make([]any, len(args))
			for i, a := range args {
				values[i] = a
			}
			f := newFormatter(cfg, cmd.OutOrStdout())
			if noMerge {
				f.PrintResult(classes.Clsx(values...))
				return nil
			}
			f.PrintResult(classes.Merge(values...))
			return nil
		},
	}
	cmd.Flags().BoolVar(&noMerge, "no-merge", false, "Join classes without resolving conflicts")
	return cmd
}
