package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/salondata/pkg/analysis"
	"pkg.jsn.cam/salondata/pkg/salondata"
)

// The repricing scenario the report walks through: inflation uplift for the
// working class, discounts for juniors and seniors, Wavy excluded from the
// junior discount.
const (
	reportInflation      = 0.035
	reportJuniorDiscount = 0.10
	reportSeniorDiscount = 0.05
	reportMilestone      = 1000.0
)

func newReportCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "report <dataset>",
		Short: "Print the revenue analysis for a dataset file",
		Long: `Parse a generated dataset file and print the revenue analysis: totals,
monthly and weekday breakdowns, per-gender figures, and the repricing
simulations.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := initLogger(logLevel); err != nil {
				return err
			}
			return runReport(os.Stdout, args[0])
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "WARNING", "Log level")

	return cmd
}

func runReport(w io.Writer, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	records, err := analysis.Parse(string(raw))
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return errors.New("dataset is empty")
	}

	printReport(w, records)
	return nil
}

func printReport(w io.Writer, records []salondata.Record) {
	section(w, "Orders")
	fmt.Fprintln(w, "First 3 orders:")
	for _, r := range records[:min(3, len(records))] {
		printOrder(w, r)
	}
	fmt.Fprintln(w, "Last 5 orders:")
	for _, r := range records[max(0, len(records)-5):] {
		printOrder(w, r)
	}

	section(w, "Customers")
	unique := analysis.UniqueCustomers(records)
	fmt.Fprintf(w, "There are %d unique names.\n", len(unique))

	section(w, "Revenue")
	total := analysis.TotalRevenue(records)
	fmt.Fprintf(w, "Total revenue: €%.2f.\n", float64(total))

	year := records[0].Date.Year()
	march := analysis.MonthRevenue(records, time.March, year)
	fmt.Fprintf(w, "Revenue in March %d: €%.2f.\n", year, float64(march))

	weekdays := analysis.WeekdayRevenue(records)
	fmt.Fprintf(w, "Revenue on Mondays: €%.2f.\n", float64(weekdays[time.Monday]))
	fmt.Fprintf(w, "Revenue on Sundays: €%.2f.\n", float64(weekdays[time.Sunday]))

	breakdown := analysis.GenderBreakdown(records)
	for _, g := range salondata.Genders {
		s := breakdown[g]
		fmt.Fprintf(w, "Revenue %s: €%.2f (%d clients). Average revenue: €%.2f.\n",
			g, float64(s.Revenue), s.Orders, s.Average())
	}

	fmt.Fprintf(w, "Average price of a haircut: €%.2f.\n",
		analysis.CatalogAveragePrice(salondata.Hairstyles))

	section(w, "Repricing simulations")
	inflated := analysis.SimulatedRevenue(records, analysis.PricingPolicy{
		Inflation: reportInflation,
	})
	fmt.Fprintf(w, "Revenue after price change: €%.2f.\n", inflated)
	fmt.Fprintf(w, "Revenue increase after inflation correction: €%.2f.\n",
		inflated-float64(total))

	discounted := analysis.SimulatedRevenue(records, analysis.PricingPolicy{
		Inflation:      reportInflation,
		JuniorDiscount: reportJuniorDiscount,
		SeniorDiscount: reportSeniorDiscount,
	})
	fmt.Fprintf(w, "Revenue after discount: €%.2f.\n", discounted)
	fmt.Fprintf(w, "Percentual revenue increase after discount: %.2f%%.\n",
		(discounted-float64(total))/float64(total)*100)

	noWavy := analysis.SimulatedRevenue(records, analysis.PricingPolicy{
		Inflation:      reportInflation,
		JuniorDiscount: reportJuniorDiscount,
		SeniorDiscount: reportSeniorDiscount,
		JuniorExempt:   map[string]bool{"Wavy": true},
	})
	fmt.Fprintf(w, "Revenue after discount (no Wavy): €%.2f.\n", noWavy)

	section(w, "Milestone")
	if name, ok := analysis.FirstToReach(records, reportMilestone); ok {
		fmt.Fprintf(w, "Reached revenue of €%.2f. %s is the lucky one!\n", reportMilestone, name)
	} else {
		fmt.Fprintf(w, "Revenue never reached €%.2f.\n", reportMilestone)
	}
}

func printOrder(w io.Writer, r salondata.Record) {
	fmt.Fprintf(w, "Customer %s got the haircut %s on %s for €%.2f.\n",
		r.Name, r.Hairstyle, r.Date.Format(salondata.DateLayout), float64(r.Price))
}

func section(w io.Writer, header string) {
	fmt.Fprintf(w, "\n%s\n%s\n", header, strings.Repeat("=", len(header)))
}
