package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"finplan/internal/cli"
	"finplan/internal/pipeline"
)

var (
	flagTxLimit    int
	flagTxCategory string
	flagTxBank     string
	flagTxMonths   int
)

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"tx"},
	Short:   "List parsed bank transactions",
	RunE:    runTransactions,
}

func init() {
	transactionsCmd.Flags().IntVarP(&flagTxLimit, "limit", "l", 25, "Max rows to show")
	transactionsCmd.Flags().StringVarP(&flagTxCategory, "category", "c", "", "Filter to category (substring match)")
	transactionsCmd.Flags().StringVarP(&flagTxBank, "bank", "b", "", "Filter to bank")
	transactionsCmd.Flags().IntVarP(&flagTxMonths, "months", "n", 0, "Only the last N months (0 = all)")
	rootCmd.AddCommand(transactionsCmd)
}

func runTransactions(_ *cobra.Command, _ []string) error {
	cfg := loadAppConfig()
	result, err := loadTransactions(cfg)
	if err != nil {
		return err
	}

	txs := result.Transactions
	if flagTxMonths > 0 {
		since := time.Now().AddDate(0, -flagTxMonths, 0)
		txs = pipeline.FilterByTime(txs, since, time.Time{})
	}
	txs = pipeline.FilterByCategory(txs, flagTxCategory)
	txs = pipeline.FilterByBank(txs, flagTxBank)

	if len(txs) == 0 {
		fmt.Println("\n  No transactions found.")
		return nil
	}

	shown := txs
	if flagTxLimit > 0 && len(shown) > flagTxLimit {
		shown = shown[:flagTxLimit]
	}

	rows := make([][]string, 0, len(shown))
	for _, t := range shown {
		date := t.Status
		if !t.Date.IsZero() {
			date = t.Date.Format("2006-01-02")
		}
		desc := truncate(t.Description, 40)
		rows = append(rows, []string{
			date, t.Bank, desc, cli.FormatDecimal(t.Amount), t.Category,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Bank", "Description", "Amount", "Category"},
		Rows:    rows,
	}))
	if len(txs) > len(shown) {
		fmt.Printf("  ... and %d more (use --limit)\n", len(txs)-len(shown))
	}
	fmt.Println()
	return nil
}
