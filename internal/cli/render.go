package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"gasplit/internal/domain"
)

// trimDisplay trims whitespace and cuts a line to a display width,
// keeping multibyte text aligned.
func trimDisplay(s string, width int) string {
	return runewidth.Truncate(strings.TrimSpace(s), width, "")
}

// renderExpenseReport prints the monthly report the way the manual
// statement review did: totals, matched transactions, then the
// per-type tabulation.
func renderExpenseReport(w io.Writer, rep *domain.ExpenseReport, matchType string) {
	fmt.Fprintf(w, "=== %s %d ===\n", strings.ToUpper(rep.Month.String()), rep.Year)
	fmt.Fprintf(w, "Total %s expenses: $%.2f\n", matchType, rep.Total)
	fmt.Fprintf(w, "Matched transactions: %d\n", len(rep.Matched))
	fmt.Fprintf(w, "Transactions in month: %d\n", rep.Transactions)

	if len(rep.Matched) > 0 {
		fmt.Fprintf(w, "\n=== TRANSACTION DETAILS ===\n")
		descWidth := 0
		for _, tx := range rep.Matched {
			if dw := runewidth.StringWidth(tx.Description); dw > descWidth {
				descWidth = dw
			}
		}
		if descWidth > 48 {
			descWidth = 48
		}
		for i, tx := range rep.Matched {
			desc := runewidth.FillRight(runewidth.Truncate(tx.Description, descWidth, "…"), descWidth)
			fmt.Fprintf(w, "%2d. %s - $%8.2f - %s\n", i+1, tx.Date.Format("01-02-2006"), -tx.Amount, desc)
		}
	}

	if len(rep.TypeCounts) > 0 {
		fmt.Fprintf(w, "\n=== TRANSACTION TYPES ===\n")
		typeWidth := 0
		for _, tc := range rep.TypeCounts {
			if tw := runewidth.StringWidth(tc.Type); tw > typeWidth {
				typeWidth = tw
			}
		}
		for _, tc := range rep.TypeCounts {
			fmt.Fprintf(w, "%s: %d transactions\n", runewidth.FillRight(tc.Type, typeWidth), tc.Count)
		}
	}
}
