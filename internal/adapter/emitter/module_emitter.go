package emitter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gasplit/internal/domain"
)

// ModuleEmitter writes each non-empty category to its own file under
// an output directory, with a banner comment naming the module.
type ModuleEmitter struct {
	outDir string
}

func NewModuleEmitter(outDir string) *ModuleEmitter {
	return &ModuleEmitter{outDir: outDir}
}

// Emit writes one file per category that received units, in catalog
// order. Units appear in scan order; a blank line separates multi-line
// units while single-line constant captures stay contiguous.
func (e *ModuleEmitter) Emit(categories []domain.CategoryUnits) ([]domain.ModuleCount, error) {
	if err := os.MkdirAll(e.outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []domain.ModuleCount
	for _, cu := range categories {
		if len(cu.Units) == 0 {
			continue
		}

		var b strings.Builder
		b.WriteString(fmt.Sprintf("/**\n * %s\n *\n * %s\n */\n\n", cu.Category.File, cu.Category.Description))

		lineCount := 0
		for _, u := range cu.Units {
			for _, line := range u.Lines {
				b.WriteString(line)
				b.WriteByte('\n')
				lineCount++
			}
			if len(u.Lines) > 1 {
				b.WriteByte('\n')
			}
		}

		path := filepath.Join(e.outDir, cu.Category.File)
		if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}

		written = append(written, domain.ModuleCount{
			File:  cu.Category.File,
			Units: len(cu.Units),
			Lines: lineCount,
		})
	}

	return written, nil
}
