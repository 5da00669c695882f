package emitter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gasplit/internal/domain"
)

func TestEmitWritesNonEmptyCategories(t *testing.T) {
	outDir := t.TempDir()
	em := NewModuleEmitter(outDir)

	categories := []domain.CategoryUnits{
		{
			Category: domain.Category{File: "utils.gs", Description: "Utilities"},
			Units: []domain.Unit{
				{Lines: []string{"function f_() {", "  return 1;", "}"}},
				{Lines: []string{"function g_() { return 2; }"}},
			},
		},
		{
			Category: domain.Category{File: "empty.gs", Description: "Nothing here"},
		},
	}

	written, err := em.Emit(categories)
	if err != nil {
		t.Fatal(err)
	}

	if len(written) != 1 {
		t.Fatalf("expected 1 written module, got %d", len(written))
	}
	if written[0].File != "utils.gs" || written[0].Units != 2 || written[0].Lines != 4 {
		t.Errorf("unexpected module count: %+v", written[0])
	}

	if _, err := os.Stat(filepath.Join(outDir, "empty.gs")); !os.IsNotExist(err) {
		t.Error("empty category must not produce a file")
	}

	data, err := os.ReadFile(filepath.Join(outDir, "utils.gs"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "/**\n * utils.gs\n *\n * Utilities\n */\n\n") {
		t.Errorf("missing banner comment:\n%s", content)
	}
	if !strings.Contains(content, "function f_() {\n  return 1;\n}\n\n") {
		t.Error("multi-line unit must be followed by a blank separator line")
	}
	if !strings.Contains(content, "function g_() { return 2; }") {
		t.Error("second unit missing from output")
	}
}

func TestEmitConstantUnitsStayContiguous(t *testing.T) {
	outDir := t.TempDir()
	em := NewModuleEmitter(outDir)

	categories := []domain.CategoryUnits{
		{
			Category: domain.Category{File: "config.gs", Description: "Constants"},
			Units: []domain.Unit{
				{Lines: []string{"var A = 1;"}},
				{Lines: []string{"var B = 2;"}},
			},
		},
	}

	if _, err := em.Emit(categories); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "config.gs"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "var A = 1;\nvar B = 2;\n") {
		t.Errorf("constant captures must not be separated:\n%s", data)
	}
}

func TestEmitCreatesOutputDir(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "src")
	em := NewModuleEmitter(outDir)

	categories := []domain.CategoryUnits{
		{
			Category: domain.Category{File: "main.gs", Description: "Entry point"},
			Units:    []domain.Unit{{Lines: []string{"function onOpen() {", "}"}}},
		},
	}

	if _, err := em.Emit(categories); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "main.gs")); err != nil {
		t.Errorf("expected emitted file in created directory: %v", err)
	}
}
