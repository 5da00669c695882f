package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gasplit/internal/domain"
)

// Statement dates arrive as MM-DD-YYYY.
const dateLayout = "01-02-2006"

// Column names as exported by the bank.
const (
	colDate        = "Date completed (UTC)"
	colType        = "Type"
	colState       = "State"
	colAmount      = "Amount"
	colDescription = "Description"
	colID          = "ID"
)

// ParseStatement reads one statement CSV. The first record is the
// header; columns are addressed by name so their order is free. Rows
// with an unparseable date or amount are skipped and counted, never
// fatal.
func ParseStatement(r io.Reader) ([]domain.Transaction, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read statement header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, required := range []string{colDate, colType, colState, colAmount} {
		if _, ok := idx[required]; !ok {
			return nil, 0, fmt.Errorf("statement is missing column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var txs []domain.Transaction
	skipped := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read statement row: %w", err)
		}

		date, err := time.Parse(dateLayout, field(record, colDate))
		if err != nil {
			skipped++
			continue
		}

		amount := 0.0
		if raw := field(record, colAmount); raw != "" {
			amount, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				skipped++
				continue
			}
		}

		txs = append(txs, domain.Transaction{
			ID:          field(record, colID),
			Date:        date,
			Type:        field(record, colType),
			State:       field(record, colState),
			Amount:      amount,
			Description: field(record, colDescription),
		})
	}

	return txs, skipped, nil
}

// ParseStatementFile reads a statement CSV from disk.
func ParseStatementFile(path string) ([]domain.Transaction, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open statement: %w", err)
	}
	defer f.Close()
	return ParseStatement(f)
}
