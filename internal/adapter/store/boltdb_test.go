package store

import (
	"path/filepath"
	"testing"
	"time"

	"gasplit/internal/domain"
)

func openTestStore(t *testing.T) *BoltStore {
	t.Helper()
	st, err := NewBoltStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestPutAndListRuns(t *testing.T) {
	st := openTestStore(t)

	first := domain.RunRecord{
		Time:   time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC),
		Source: "gs_torx_main.gs",
		Summary: domain.Summary{
			TotalLines: 100,
			Consumed:   80,
			Header:     5,
			Unmatched:  15,
		},
		Modules: []domain.ModuleCount{{File: "utils.gs", Units: 3, Lines: 40}},
	}
	second := domain.RunRecord{
		Time:   time.Date(2025, 8, 2, 12, 0, 0, 0, time.UTC),
		Source: "gs_torx_main.gs",
	}

	if err := st.PutRun(first); err != nil {
		t.Fatal(err)
	}
	if err := st.PutRun(second); err != nil {
		t.Fatal(err)
	}

	runs, err := st.ListRuns()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if !runs[0].Time.Before(runs[1].Time) {
		t.Error("runs must list in chronological order")
	}
	if runs[0].ID == "" || runs[0].ID == runs[1].ID {
		t.Errorf("runs must get distinct generated IDs, got %q and %q", runs[0].ID, runs[1].ID)
	}
	if runs[0].Summary.TotalLines != 100 || len(runs[0].Modules) != 1 {
		t.Errorf("run record did not round-trip: %+v", runs[0])
	}
}

func TestListRunsEmpty(t *testing.T) {
	st := openTestStore(t)

	runs, err := st.ListRuns()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
