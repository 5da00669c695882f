package splitter

import "strings"

// Extract collects the contiguous run of lines forming one complete
// function declaration starting at start, by tracking brace depth.
// Braces are counted per character occurrence with no awareness of
// strings or comments; a brace inside a string literal shifts the
// depth just like a structural one. That is an accepted limitation of
// the format, not something to repair with a real parser.
//
// The returned end index is one past the last line of the unit. When
// the input ends before the depth returns to zero, everything from
// start onward is returned and truncated is true so the caller can
// surface the unbalanced declaration.
func Extract(lines []string, start int) (unit []string, end int, truncated bool) {
	depth := 0
	opened := false

	for i := start; i < len(lines); i++ {
		line := lines[i]
		depth += strings.Count(line, "{")
		depth -= strings.Count(line, "}")
		if strings.Contains(line, "{") {
			opened = true
		}
		if opened && depth == 0 {
			return lines[start : i+1], i + 1, false
		}
	}

	return lines[start:], len(lines), true
}
