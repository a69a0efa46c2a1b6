package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"finplan/internal/cli"
	"finplan/internal/pipeline"
)

var flagCatMonths int

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Spending by category with monthly trend",
	RunE:  runCategories,
}

func init() {
	categoriesCmd.Flags().IntVarP(&flagCatMonths, "months", "n", 6, "Time window in months (0 = all)")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	cfg := loadAppConfig()
	result, err := loadTransactions(cfg)
	if err != nil {
		return err
	}

	if len(result.Transactions) == 0 {
		fmt.Println("\n  No transactions found.")
		return nil
	}

	var since time.Time
	if flagCatMonths > 0 {
		since = time.Now().AddDate(0, -flagCatMonths, 0)
	}

	cats := pipeline.AggregateCategories(result.Transactions, since, time.Time{})
	if len(cats) == 0 {
		fmt.Println("\n  No expenses in the selected window.")
		return nil
	}

	maxTotal, _ := cats[0].Total.Float64()
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		total, _ := c.Total.Float64()
		rows = append(rows, []string{
			c.Category,
			cli.RenderHorizontalBar(total, maxTotal, 20),
			cli.FormatDecimal(c.Total),
			fmt.Sprintf("%.1f%%", c.SharePercent),
			cli.FormatNumber(int64(c.Transactions)),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Spending by Category",
		Headers: []string{"Category", "", "Total", "Share", "Txns"},
		Rows:    rows,
	}))

	// Monthly expense trend under the table.
	months := pipeline.AggregateMonths(result.Transactions, since, time.Time{})
	if len(months) > 1 {
		// Oldest to newest, left to right.
		values := make([]float64, len(months))
		for i, m := range months {
			v, _ := m.Expenses.Float64()
			values[len(months)-1-i] = v
		}
		fmt.Printf("\n  Monthly spend  %s\n", cli.RenderSparkline(values))

		avg := pipeline.AverageMonthlyExpenses(result.Transactions)
		fmt.Printf("  Average %s/month across %d months\n",
			cli.FormatMoney(avg, cfg.General.Currency), len(months))
	}
	fmt.Println()
	return nil
}
