package usecase

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gasplit/internal/adapter/fs"
)

func writeStatement(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestExpensesAnalyze(t *testing.T) {
	dir := t.TempDir()
	writeStatement(t, dir, "jul-aug.csv",
		"Date completed (UTC),Type,State,Amount,Description,ID\n"+
			"08-05-2025,CARD_PAYMENT,COMPLETED,-42.50,Office supplies,tx1\n"+
			"07-20-2025,CARD_PAYMENT,COMPLETED,-7.00,July charge,tx2\n")
	writeStatement(t, dir, "aug.csv",
		"Date completed (UTC),Type,State,Amount,Description,ID\n"+
			"08-12-2025,CARD_PAYMENT,COMPLETED,-10.00,Coffee,tx3\n"+
			"08-13-2025,DEPOSIT,COMPLETED,100.00,Incoming,tx4\n")

	walker := fs.NewWalker([]string{"**/*.csv"}, nil)
	uc := NewExpensesUseCase(walker, "CARD_PAYMENT", "COMPLETED")

	var calls int
	rep, err := uc.Analyze(dir, time.August, 2025, func(processed, total int, file string) {
		calls++
		if total != 2 {
			t.Errorf("expected total 2, got %d", total)
		}
	})
	if err != nil {
		t.Fatal(err)
	}

	if calls != 2 {
		t.Errorf("expected 2 progress calls, got %d", calls)
	}
	if math.Abs(rep.Total-52.50) > 1e-9 {
		t.Errorf("expected total 52.50, got %f", rep.Total)
	}
	if len(rep.Matched) != 2 {
		t.Errorf("expected 2 matched transactions, got %d", len(rep.Matched))
	}
	if rep.Transactions != 3 {
		t.Errorf("expected 3 in-month transactions, got %d", rep.Transactions)
	}
}

func TestExpensesAnalyzeNoStatements(t *testing.T) {
	walker := fs.NewWalker([]string{"**/*.csv"}, nil)
	uc := NewExpensesUseCase(walker, "CARD_PAYMENT", "COMPLETED")

	if _, err := uc.Analyze(t.TempDir(), time.August, 2025, nil); err == nil {
		t.Error("expected error when no statements are found")
	}
}
