package usecase

import (
	"fmt"
	"time"

	"gasplit/internal/adapter/fs"
	"gasplit/internal/adapter/splitter"
	"gasplit/internal/domain"
	"gasplit/internal/port"
)

// SplitUseCase runs one end-to-end split: read the monolith, scan it
// against the catalog, derive coverage, emit module files, and record
// the run in history.
type SplitUseCase struct {
	catalog *splitter.Catalog
	emitter port.Emitter
	store   port.RunStore // nil when history is disabled
}

func NewSplitUseCase(catalog *splitter.Catalog, emitter port.Emitter, store port.RunStore) *SplitUseCase {
	return &SplitUseCase{
		catalog: catalog,
		emitter: emitter,
		store:   store,
	}
}

// SplitResult contains the outcome of one split run.
type SplitResult struct {
	Source   string
	Modules  []domain.ModuleCount
	Report   domain.CoverageReport
	Warnings []string
}

// Split processes one source file. An unreadable source is the only
// fatal condition; unbalanced declarations and unmatched lines flow
// into the coverage report, and a history write failure degrades to a
// warning.
func (u *SplitUseCase) Split(sourcePath string) (*SplitResult, error) {
	lines, err := fs.ReadLines(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}

	scan := splitter.NewScanner(u.catalog).Scan(lines)
	report := splitter.Analyze(lines, scan.Consumed, scan.TruncatedUnits)

	modules, err := u.emitter.Emit(scan.Categories)
	if err != nil {
		return nil, fmt.Errorf("failed to emit modules: %w", err)
	}

	result := &SplitResult{
		Source:  sourcePath,
		Modules: modules,
		Report:  report,
	}

	if u.store != nil {
		rec := domain.RunRecord{
			Time:    time.Now(),
			Source:  sourcePath,
			Summary: report.Summary,
			Modules: modules,
		}
		if err := u.store.PutRun(rec); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("failed to record run history: %v", err))
		}
	}

	return result, nil
}
