package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/flashingpumpkin/perkakas/internal/currency"
	perrors "github.com/flashingpumpkin/perkakas/internal/errors"
	"github.com/flashingpumpkin/perkakas/internal/util"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var (
	rupiahCmd = newRupiahCmd()
	usdCmd    = newUSDCmd()
	abbrevCmd = newAbbrevCmd()
	cryptoCmd = newCryptoCmd()
	spellCmd  = newSpellCmd()
)

// newRupiahCmd creates the rupiah command.
func newRupiahCmd() *cobra.Command {
	var (
		prefix    string
		separator string
		decimal   string
		parse     bool
	)
	cmd := &cobra.Command{
		Use:   "rupiah <amount>",
		Short: "Group digits of an amount in Rupiah style",
		Long: `Group the digits of an amount in threes and prepend the Rupiah prefix.

Everything except digits and the first comma is ignored, so "Rp 1.500,25"
and "1500,25" format the same. With --parse the command works in reverse
and prints the integer amount; a non-zero fraction is rejected.`,
		Example: `  perkakas rupiah 1500000             # Rp. 1.500.000
  perkakas rupiah 1500,5 --prefix IDR  # IDR 1.500,5
  perkakas rupiah --parse "Rp. 1.500"  # 1500`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			f := newFormatter(cfg, cmd.OutOrStdout())

			if parse {
				n, err := currency.ParseRupiah(args[0])
				if err != nil {
					return err
				}
				f.PrintResult(strconv.FormatInt(n, 10))
				return nil
			}

			opts := currency.GroupOptions{
				Prefix:        cfg.Prefix,
				Separator:     separator,
				DecimalSymbol: cfg.DecimalSymbol,
			}
			if cmd.Flags().Changed("prefix") {
				opts.Prefix = prefix
			}
			if cmd.Flags().Changed("decimal-symbol") {
				opts.DecimalSymbol = decimal
			}
			f.PrintVerbose("prefix %q, separator %q, decimal symbol %q", opts.Prefix, opts.Separator, opts.DecimalSymbol)
			f.PrintResult(currency.FormatGrouped(args[0], opts))
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", currency.RupiahPrefix, "Prefix written before the amount (empty for none)")
	cmd.Flags().StringVar(&separator, "separator", ".", "Separator between digit groups")
	cmd.Flags().StringVar(&decimal, "decimal-symbol", ",", "Symbol joining the fractional part")
	cmd.Flags().BoolVar(&parse, "parse", false, "Parse a formatted amount back into an integer")
	return cmd
}

// newUSDCmd creates the usd command.
func newUSDCmd() *cobra.Command {
	var (
		locale   string
		decimals int
	)
	cmd := &cobra.Command{
		Use:   "usd <value>",
		Short: "Format a value as US dollars",
		Long: `Format a value as US dollars with two decimals and comma grouping.

With --locale the value is formatted with that locale's grouping and
decimal conventions instead, without a currency symbol.`,
		Example: `  perkakas usd 1234.5                 # $1,234.50
  perkakas usd 1234.5 --locale id     # 1.234,50`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}
			f := newFormatter(cfg, cmd.OutOrStdout())

			if locale == "" {
				f.PrintResult(currency.FormatUSD(v))
				return nil
			}
			tag, err := language.Parse(locale)
			if err != nil {
				return fmt.Errorf("invalid locale %q: %w", locale, err)
			}
			f.PrintVerbose("locale %s, %d decimals", tag, decimals)
			f.PrintResult(currency.FormatLocale(tag, v, decimals))
			return nil
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "", "BCP 47 locale for grouping, e.g. id, de, en-IN")
	cmd.Flags().IntVar(&decimals, "decimals", 2, "Decimal places used with --locale")
	return cmd
}

// newAbbrevCmd creates the abbrev command.
func newAbbrevCmd() *cobra.Command {
	var keepZero bool
	cmd := &cobra.Command{
		Use:   "abbrev <value>",
		Short: "Abbreviate a value with K, M or B",
		Long: `Abbreviate a value of 1000 or more with a K, M or B suffix rounded to
one decimal. Smaller values are printed unchanged.

By default a zero fraction is dropped ("1K"); --keep-zero or
keep_trailing_zero in the config file keeps it ("1.0K").`,
		Example: `  perkakas abbrev 1500                # 1.5K
  perkakas abbrev 1000000 --keep-zero # 1.0M`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}
			opts := currency.AbbrevOptions{KeepTrailingZero: cfg.KeepTrailingZero}
			if cmd.Flags().Changed("keep-zero") {
				opts.KeepTrailingZero = keepZero
			}
			newFormatter(cfg, cmd.OutOrStdout()).PrintResult(currency.Abbreviate(v, opts))
			return nil
		},
	}
	cmd.Flags().BoolVar(&keepZero, "keep-zero", false, "Always print one decimal place")
	return cmd
}

// newCryptoCmd creates the crypto command.
func newCryptoCmd() *cobra.Command {
	var decimals int
	cmd := &cobra.Command{
		Use:   "crypto <value>",
		Short: "Format a crypto amount",
		Long: `Format a crypto amount. Values below 1 keep up to --decimals places
with trailing zeros trimmed; larger values are rounded to an integer.`,
		Example: `  perkakas crypto 0.000123456789      # 0.0001235
  perkakas crypto 12.7                # 13`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}
			precision := cfg.CryptoDecimals
			if cmd.Flags().Changed("decimals") {
				precision = decimals
			}
			newFormatter(cfg, cmd.OutOrStdout()).PrintResult(currency.FormatCryptoValue(v, precision))
			return nil
		},
	}
	cmd.Flags().IntVar(&decimals, "decimals", currency.DefaultCryptoDecimals, "Decimal places kept for values below 1")
	return cmd
}

// newSpellCmd creates the spell command.
func newSpellCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "spell <number>",
		Short:   "Spell a whole number in Indonesian words",
		Example: `  perkakas spell 1250                 # Satu Ribu Dua Ratus Lima Puluh`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			n, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not a whole number", perrors.ErrInvalidInput, args[0])
			}
			words, err := currency.CountableNumber(n)
			if err != nil {
				return err
			}
			f := newFormatter(cfg, cmd.OutOrStdout())
			f.PrintVerbose("spelling %s", util.FormatNumber(n, "."))
			f.PrintResult(words)
			return nil
		},
	}
}

// parseValue reads a numeric argument.
func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", perrors.ErrInvalidInput, s)
	}
	return v, nil
}
