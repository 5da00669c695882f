package ledger

import (
	"sort"
	"time"

	"gasplit/internal/domain"
)

// BuildReport aggregates transactions for one calendar month. Matched
// expenses are rows of the configured type and state with a negative
// amount, summed as absolute values; every in-month row contributes to
// the per-type tabulation. Transactions keep their input order.
func BuildReport(txs []domain.Transaction, month time.Month, year int, matchType, matchState string) *domain.ExpenseReport {
	rep := &domain.ExpenseReport{Month: month, Year: year}

	counts := make(map[string]int)
	for _, tx := range txs {
		if tx.Date.Month() != month || tx.Date.Year() != year {
			continue
		}
		rep.Transactions++
		counts[tx.Type]++

		if tx.Type == matchType && tx.State == matchState && tx.Amount < 0 {
			rep.Total += -tx.Amount
			rep.Matched = append(rep.Matched, tx)
		}
	}

	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		rep.TypeCounts = append(rep.TypeCounts, domain.TypeCount{Type: t, Count: counts[t]})
	}

	return rep
}

// MergeReports folds several per-file reports for the same month into
// one. Matched transactions and counts concatenate in input order.
func MergeReports(reports []*domain.ExpenseReport) *domain.ExpenseReport {
	if len(reports) == 0 {
		return &domain.ExpenseReport{}
	}

	merged := &domain.ExpenseReport{
		Month: reports[0].Month,
		Year:  reports[0].Year,
	}
	counts := make(map[string]int)
	for _, rep := range reports {
		merged.Total += rep.Total
		merged.Transactions += rep.Transactions
		merged.SkippedRows += rep.SkippedRows
		merged.Matched = append(merged.Matched, rep.Matched...)
		for _, tc := range rep.TypeCounts {
			counts[tc.Type] += tc.Count
		}
	}

	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		merged.TypeCounts = append(merged.TypeCounts, domain.TypeCount{Type: t, Count: counts[t]})
	}

	return merged
}
