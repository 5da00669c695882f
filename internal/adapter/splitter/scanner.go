package splitter

import (
	"strings"

	"gasplit/internal/domain"
)

// Scanner classifies declarations in a monolithic source against a
// catalog. A Scanner holds no scan state; every Scan call starts from
// fresh accumulators and its result is owned solely by the caller.
type Scanner struct {
	catalog *Catalog
}

// NewScanner creates a scanner over the given catalog.
func NewScanner(catalog *Catalog) *Scanner {
	return &Scanner{catalog: catalog}
}

// ScanResult is the outcome of one scan: per-category units in catalog
// order, the set of consumed line indices, and how many units were cut
// short by end-of-input.
type ScanResult struct {
	Categories     []domain.CategoryUnits
	Consumed       domain.IndexSet
	TruncatedUnits int
}

// Scan walks the source once with a forward-only cursor. Each cursor
// position is classified as function-shaped, constant-shaped, or
// neither; shaped lines that match a category are extracted and their
// index range consumed, everything else is left for the coverage pass.
func (s *Scanner) Scan(lines []string) *ScanResult {
	cats := s.catalog.Categories()
	units := make([][]domain.Unit, len(cats))
	order := make(map[*Category]int, len(cats))
	for i, cat := range cats {
		order[cat] = i
	}

	consumed := make(domain.IndexSet)
	truncated := 0

	i := 0
	for i < len(lines) {
		line := lines[i]

		switch {
		case isFunctionShaped(line):
			cat, ok := s.catalog.FirstMatch(line)
			if !ok || !strings.Contains(line, "{") {
				// No category, or a signature without a body opener
				// (forward-declaration shape): leave it unconsumed.
				i++
				continue
			}
			unitLines, end, cut := Extract(lines, i)
			unit := domain.Unit{
				Category:  cat.Def.File,
				Start:     i,
				End:       end,
				Lines:     unitLines,
				Truncated: cut,
			}
			idx := order[cat]
			units[idx] = append(units[idx], unit)
			for j := i; j < end; j++ {
				consumed.Add(j)
			}
			if cut {
				truncated++
			}
			i = end

		case isConstantShaped(line):
			cat, ok := s.catalog.FirstMatch(line)
			if !ok {
				i++
				continue
			}
			unit := domain.Unit{
				Category: cat.Def.File,
				Start:    i,
				End:      i + 1,
				Lines:    lines[i : i+1],
			}
			idx := order[cat]
			units[idx] = append(units[idx], unit)
			consumed.Add(i)
			i++

		default:
			i++
		}
	}

	result := &ScanResult{
		Consumed:       consumed,
		TruncatedUnits: truncated,
	}
	for idx, cat := range cats {
		result.Categories = append(result.Categories, domain.CategoryUnits{
			Category: cat.Def,
			Units:    units[idx],
		})
	}
	return result
}

// isFunctionShaped reports whether the line begins a function
// declaration once indentation is ignored.
func isFunctionShaped(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "function ")
}

// isConstantShaped reports whether the line is a top-level var/const
// declaration, which is always captured as a single line.
func isConstantShaped(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "var ")
}
