package domain

import "time"

// SourceLine is one line of the monolithic source together with its
// 0-based position in the original sequence.
type SourceLine struct {
	Index int
	Text  string
}

// Category is one logical grouping a declaration can be assigned to.
// File doubles as identity and output file name. Patterns are tried in
// order; catalog order across categories is the tie-break priority.
type Category struct {
	File        string   `yaml:"file"`
	Description string   `yaml:"description"`
	Patterns    []string `yaml:"patterns"`
}

// Unit is one extracted declaration: the contiguous lines from its
// signature through its closing delimiter, plus the half-open index
// range [Start, End) it occupied in the source.
type Unit struct {
	Category  string
	Start     int
	End       int
	Lines     []string
	Truncated bool
}

// CategoryUnits pairs a category with the units assigned to it, in
// scan order.
type CategoryUnits struct {
	Category Category
	Units    []Unit
}

// IndexSet is the set of source-line indices claimed by some unit.
type IndexSet map[int]struct{}

func (s IndexSet) Add(i int)      { s[i] = struct{}{} }
func (s IndexSet) Has(i int) bool { _, ok := s[i]; return ok }
func (s IndexSet) Len() int       { return len(s) }

// CoverageReport partitions everything the scan did not consume:
// header material before the first declaration, and unmatched lines
// for human review. Computed once after a scan, never mutated.
type CoverageReport struct {
	Header    []SourceLine
	Unmatched []SourceLine
	Summary   Summary
}

// Summary holds the reconciliation counts for one split run.
type Summary struct {
	TotalLines     int `json:"total_lines"`
	Consumed       int `json:"consumed"`
	Header         int `json:"header"`
	Unmatched      int `json:"unmatched"`
	TruncatedUnits int `json:"truncated_units"`
}

// Reconciles reports whether the three partitions cover the input
// exactly.
func (s Summary) Reconciles() bool {
	return s.TotalLines == s.Consumed+s.Header+s.Unmatched
}

// ModuleCount records how much of the source landed in one emitted
// module file.
type ModuleCount struct {
	File  string `json:"file"`
	Units int    `json:"units"`
	Lines int    `json:"lines"`
}

// RunRecord is one split run as persisted in the history store.
type RunRecord struct {
	ID      string        `json:"id"`
	Time    time.Time     `json:"time"`
	Source  string        `json:"source"`
	Summary Summary       `json:"summary"`
	Modules []ModuleCount `json:"modules"`
}

// Transaction is one row of a bank statement export.
type Transaction struct {
	ID          string
	Date        time.Time
	Type        string
	State       string
	Amount      float64
	Description string
}

// ExpenseReport aggregates one month of statement activity.
type ExpenseReport struct {
	Month        time.Month
	Year         int
	Total        float64
	Matched      []Transaction
	TypeCounts   []TypeCount
	Transactions int
	SkippedRows  int
}

// TypeCount tabulates how many transactions of one type fell in the
// reported month.
type TypeCount struct {
	Type  string
	Count int
}
