package main

import (
	"fmt"
	"os"

	"Buildcalc/internal/calc/concrete"
	"Buildcalc/internal/calc/discount"
	"Buildcalc/internal/calc/emi"
	"Buildcalc/internal/calc/sheet"
	"Buildcalc/internal/format"

	"github.com/spf13/cobra"
)

func emiCmd(g *globals) *cobra.Command {
	var in emi.Input
	var schedule bool

	cmd := &cobra.Command{
		Use:   "emi",
		Short: "Monthly installment, total interest and amortization for a loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := emi.Calculate(in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printLines(out, g.locale, emi.Lines(res))
			if res.TotalPayment > 0 {
				fmt.Fprintf(out, "Interest share: %s\n", format.Percent(res.TotalInterest/res.TotalPayment, g.locale))
			}
			if schedule {
				fmt.Fprintln(out)
				for _, y := range res.Yearly {
					fmt.Fprintf(out, "Year %d: principal %s, interest %s, balance %s\n", y.Year,
						format.Fixed(y.Principal, 2, g.locale),
						format.Fixed(y.Interest, 2, g.locale),
						format.Fixed(y.Balance, 2, g.locale))
				}
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&in.Principal, "principal", "p", 0, "loan amount")
	cmd.Flags().Float64VarP(&in.AnnualRatePercent, "rate", "r", 0, "annual interest rate in percent")
	cmd.Flags().Float64VarP(&in.Years, "years", "y", 0, "tenure in years")
	cmd.Flags().IntVarP(&in.Months, "months", "m", 0, "tenure in months, overrides --years")
	cmd.Flags().BoolVar(&schedule, "schedule", false, "print the yearly amortization summary")
	cmd.MarkFlagRequired("principal")
	return cmd
}

func discountCmd(g *globals) *cobra.Command {
	var in discount.Input

	cmd := &cobra.Command{
		Use:   "discount",
		Short: "Savings and final price after a percentage discount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := discount.Calculate(in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printLines(out, g.locale, discount.Lines(res))
			fmt.Fprintf(out, "Discount rate: %s\n", format.Percent(res.EffectiveRate/100, g.locale))
			return nil
		},
	}

	cmd.Flags().Float64Var(&in.Price, "price", 0, "original price")
	cmd.Flags().Float64Var(&in.Percent, "percent", 0, "discount in percent")
	cmd.Flags().Float64Var(&in.Extra, "extra", 0, "second discount in percent, applied after the first")
	cmd.MarkFlagRequired("price")
	return cmd
}

func concreteCmd(g *globals) *cobra.Command {
	var in concrete.Input

	cmd := &cobra.Command{
		Use:   "concrete",
		Short: "Concrete volume and cement, sand, aggregate and water quantities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := concrete.Calculate(in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printLines(out, g.locale, concrete.Lines(res))
			if res.Notes != "" {
				fmt.Fprintln(out, res.Notes)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&in.Length, "length", 0, "length")
	cmd.Flags().Float64Var(&in.Width, "width", 0, "width")
	cmd.Flags().Float64Var(&in.Thickness, "thickness", 0, "thickness or depth")
	cmd.Flags().StringVar(&in.Unit, "unit", "m", "length unit of the dimensions")
	cmd.Flags().StringVar(&in.Grade, "grade", concrete.DefaultGrade, "nominal mix grade")
	return cmd
}

func bbsCmd(g *globals) *cobra.Command {
	var export string

	cmd := &cobra.Command{
		Use:   "bbs <file.xlsx>",
		Short: "Cutting lengths and steel weight for a bar bending schedule workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			res, err := sheet.Import(f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, row := range res.Skipped {
				fmt.Fprintf(out, "skipped row %d\n", row)
			}
			for _, t := range res.Result.ByDiameter {
				fmt.Fprintf(out, "%v mm: %d bars, %s mm, %s kg\n", t.Diameter, t.Bars,
					format.Number(t.CuttingLength, 0, g.locale), format.Fixed(t.Weight, 2, g.locale))
			}
			fmt.Fprintf(out, "Total: %d bars, %s kg\n", res.Result.TotalBars, format.Fixed(res.Result.TotalWeight, 2, g.locale))

			if export == "" {
				return nil
			}
			w, err := os.Create(export)
			if err != nil {
				return err
			}
			if err := sheet.ExportSchedule(w, res.Result); err != nil {
				w.Close()
				return err
			}
			return w.Close()
		},
	}

	cmd.Flags().StringVarP(&export, "out", "o", "", "write the computed schedule to this xlsx file")
	return cmd
}
