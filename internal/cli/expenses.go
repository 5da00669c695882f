package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"gasplit/internal/adapter/fs"
	"gasplit/internal/usecase"
)

var (
	expMonth int
	expYear  int
)

var expensesCmd = &cobra.Command{
	Use:   "expenses [root]",
	Short: "Aggregate statement CSVs into a monthly expense report",
	Long: `Expenses scans for bank statement exports under the given root
(include/exclude globs from config), filters transactions to one
calendar month, and sums completed card payments.

Examples:
  gasplit expenses -m 8 -y 2025
  gasplit expenses -m 8 -y 2025 ./exports`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExpenses,
}

func init() {
	rootCmd.AddCommand(expensesCmd)
	now := time.Now()
	expensesCmd.Flags().IntVarP(&expMonth, "month", "m", int(now.Month()), "report month (1-12)")
	expensesCmd.Flags().IntVarP(&expYear, "year", "y", now.Year(), "report year")
}

func runExpenses(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	root := GetRootDir()
	if len(args) > 0 {
		root = args[0]
	}
	if expMonth < 1 || expMonth > 12 {
		return fmt.Errorf("invalid month: %d", expMonth)
	}
	month := time.Month(expMonth)

	walker := fs.NewWalker(cfg.Expenses.Includes, cfg.Expenses.Excludes)
	uc := usecase.NewExpensesUseCase(walker, cfg.Expenses.MatchType, cfg.Expenses.MatchState)

	var bar *progressbar.ProgressBar
	progress := func(processed, total int, currentFile string) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Statements[reset]"),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(processed)
	}

	rep, err := uc.Analyze(root, month, expYear, progress)
	if err != nil {
		return err
	}

	renderExpenseReport(os.Stdout, rep, cfg.Expenses.MatchType)

	if rep.SkippedRows > 0 {
		fmt.Fprintf(os.Stderr, "\nWarning: %d statement row(s) could not be parsed and were skipped\n", rep.SkippedRows)
	}
	return nil
}
