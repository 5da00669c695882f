package usecase

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gasplit/internal/adapter/emitter"
	"gasplit/internal/adapter/splitter"
	"gasplit/internal/adapter/store"
	"gasplit/internal/domain"
)

const sampleSource = `// Monolithic script
// maintained by hand for years

var LIMIT = 5;

function nowStamp_() {
  return new Date();
}

function unknownThing_() {
  return 42;
}
`

func sampleCatalog(t *testing.T) *splitter.Catalog {
	t.Helper()
	cat, err := splitter.NewCatalog([]domain.Category{
		{File: "config.gs", Description: "Constants", Patterns: []string{`^var LIMIT\s*=`}},
		{File: "utils.gs", Description: "Utilities", Patterns: []string{`^function nowStamp_\(`}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func TestSplitEndToEnd(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "main.gs")
	if err := os.WriteFile(srcPath, []byte(sampleSource), 0644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "src")

	st, err := store.NewBoltStore(filepath.Join(dir, "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	uc := NewSplitUseCase(sampleCatalog(t), emitter.NewModuleEmitter(outDir), st)
	result, err := uc.Split(srcPath)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Modules) != 2 {
		t.Fatalf("expected 2 emitted modules, got %d", len(result.Modules))
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "utils.gs"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "function nowStamp_() {") {
		t.Error("utils.gs missing extracted function")
	}

	sum := result.Report.Summary
	if !sum.Reconciles() {
		t.Errorf("summary does not reconcile: %+v", sum)
	}
	// unknownThing_ spans 3 lines, all unmatched; plus the blank line
	// between declarations and the trailing blank after it.
	if sum.Consumed != 4 {
		t.Errorf("expected 4 consumed lines, got %d", sum.Consumed)
	}
	if len(result.Report.Unmatched) == 0 {
		t.Error("expected unmatched lines for unknownThing_")
	}

	runs, err := st.ListRuns()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Source != srcPath {
		t.Errorf("expected one recorded run for %s, got %+v", srcPath, runs)
	}
}

func TestSplitMissingInput(t *testing.T) {
	uc := NewSplitUseCase(sampleCatalog(t), emitter.NewModuleEmitter(t.TempDir()), nil)
	if _, err := uc.Split(filepath.Join(t.TempDir(), "absent.gs")); err == nil {
		t.Error("expected error for missing source file")
	}
}

func TestSplitWithoutHistory(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "main.gs")
	if err := os.WriteFile(srcPath, []byte("var LIMIT = 5;\n"), 0644); err != nil {
		t.Fatal(err)
	}

	uc := NewSplitUseCase(sampleCatalog(t), emitter.NewModuleEmitter(filepath.Join(dir, "src")), nil)
	result, err := uc.Split(srcPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Modules) != 1 || result.Modules[0].File != "config.gs" {
		t.Errorf("expected config.gs module, got %+v", result.Modules)
	}
}
