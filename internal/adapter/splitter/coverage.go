package splitter

import "gasplit/internal/domain"

// Analyze partitions every line the scan did not consume into header
// material and unmatched lines. It is a pure read over the final
// consumed set: it never reclassifies or consumes anything itself.
//
// A line counts as header while the walk has not yet hit a consumed
// index and the line is not function-shaped; the first violation of
// either condition ends header accumulation for good. The resulting
// partitions satisfy total == consumed + header + unmatched.
func Analyze(lines []string, consumed domain.IndexSet, truncatedUnits int) domain.CoverageReport {
	var header, unmatched []domain.SourceLine

	inHeader := true
	for i, line := range lines {
		if consumed.Has(i) {
			inHeader = false
			continue
		}
		if inHeader && !isFunctionShaped(line) {
			header = append(header, domain.SourceLine{Index: i, Text: line})
			continue
		}
		inHeader = false
		unmatched = append(unmatched, domain.SourceLine{Index: i, Text: line})
	}

	return domain.CoverageReport{
		Header:    header,
		Unmatched: unmatched,
		Summary: domain.Summary{
			TotalLines:     len(lines),
			Consumed:       consumed.Len(),
			Header:         len(header),
			Unmatched:      len(unmatched),
			TruncatedUnits: truncatedUnits,
		},
	}
}
