package usecase

import (
	"fmt"
	"time"

	"gasplit/internal/adapter/ledger"
	"gasplit/internal/domain"
	"gasplit/internal/port"
)

// ProgressFunc reports statement-processing progress to the caller.
type ProgressFunc func(processed, total int, currentFile string)

// ExpensesUseCase aggregates bank statement exports into one monthly
// expense report.
type ExpensesUseCase struct {
	walker     port.FileWalker
	matchType  string
	matchState string
}

func NewExpensesUseCase(walker port.FileWalker, matchType, matchState string) *ExpensesUseCase {
	return &ExpensesUseCase{
		walker:     walker,
		matchType:  matchType,
		matchState: matchState,
	}
}

// Analyze discovers statement files under root and folds them into a
// single report for the given month. A statement that fails to parse
// fails the run; rows inside a statement that fail to parse only count
// as skipped.
func (u *ExpensesUseCase) Analyze(root string, month time.Month, year int, progress ProgressFunc) (*domain.ExpenseReport, error) {
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for statements: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no statement files found under %s", root)
	}

	reports := make([]*domain.ExpenseReport, 0, len(files))
	for i, file := range files {
		txs, skipped, err := ledger.ParseStatementFile(file.Path)
		if err != nil {
			return nil, fmt.Errorf("statement %s: %w", file.Path, err)
		}

		rep := ledger.BuildReport(txs, month, year, u.matchType, u.matchState)
		rep.SkippedRows = skipped
		reports = append(reports, rep)

		if progress != nil {
			progress(i+1, len(files), file.Path)
		}
	}

	return ledger.MergeReports(reports), nil
}
