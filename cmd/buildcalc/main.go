package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"Buildcalc/internal/calc/quantity"
	"Buildcalc/internal/format"
	"Buildcalc/internal/units"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type globals struct {
	rates  string
	locale string
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	rootCmd := &cobra.Command{
		Use:          "buildcalc",
		Short:        "Unit conversions and construction estimates from the command line",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&g.rates, "rates", "", "YAML file with currency rates")
	rootCmd.PersistentFlags().StringVar(&g.locale, "locale", format.DefaultLocale, "number formatting locale")

	rootCmd.AddCommand(unitsCmd(g))
	rootCmd.AddCommand(convertCmd(g))
	rootCmd.AddCommand(emiCmd(g))
	rootCmd.AddCommand(discountCmd(g))
	rootCmd.AddCommand(concreteCmd(g))
	rootCmd.AddCommand(bbsCmd(g))
	return rootCmd
}

func (g *globals) registry() (*units.Registry, error) {
	if g.rates == "" {
		return units.Default(), nil
	}
	rates, err := units.LoadRates(g.rates)
	if err != nil {
		return nil, err
	}
	return units.Default().WithCurrencyRates(rates)
}

func unitsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "units [domain]",
		Short: "List unit domains, or the units of one domain",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := g.registry()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer tw.Flush()
			if len(args) == 0 {
				fmt.Fprintln(tw, "DOMAIN\tNAME\tBASE\tUNITS")
				for _, id := range reg.Domains() {
					d, _ := reg.Domain(id)
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", d.ID, d.Name, d.Base, len(d.Units))
				}
				return nil
			}
			d, err := reg.Domain(units.DomainID(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(tw, "ID\tSYMBOL\tNAME")
			for _, u := range d.Units {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", u.ID, u.Symbol, u.Name)
			}
			return nil
		},
	}
}

func convertCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "convert <domain> <from> <to> <value>",
		Short:   "Convert a value between two units of a domain",
		Example: "  buildcalc convert length m ft 2.5\n  buildcalc convert temperature c f 100",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("value %q: %w", args[3], err)
			}
			reg, err := g.registry()
			if err != nil {
				return err
			}
			domain := units.DomainID(args[0])
			res, err := reg.Convert(domain, args[1], args[2], value)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reg.Display(domain, args[2], res, g.locale))
			return nil
		},
	}
}

// printLines renders a result table with two decimals.
func printLines(w io.Writer, locale string, lines []quantity.Line) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()
	for _, l := range lines {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", l.Label, format.Fixed(l.Quantity, 2, locale), l.Unit)
	}
}
