package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabapcia/walletsweep/internal/credential"
)

// ReadFile loads every data row of the CSV file at path.
//
// A missing file is reported as ErrFileNotFound. Any other open or parse
// failure is returned as is. Both are fatal for the run.
func ReadFile(path string) ([]WalletRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a two-column table of credentials.
//
// Rows may carry any number of cells; only the first two are used. Blank
// lines are ignored. The first row is dropped as a header when none of its
// cells looks like a private key.
func Parse(r io.Reader) ([]WalletRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	rows = dropBlank(rows)
	if len(rows) > 0 && isHeader(rows[0]) {
		rows = rows[1:]
	}

	records := make([]WalletRecord, 0, len(rows))
	for i, row := range rows {
		records = append(records, WalletRecord{
			Sender:   cell(row, 0),
			Receiver: cell(row, 1),
			Row:      i + 1,
		})
	}

	return records, nil
}

// cell returns the trimmed i-th cell of row, or "" when the row is shorter.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

func dropBlank(rows [][]string) [][]string {
	kept := rows[:0]
	for _, row := range rows {
		if cell(row, 0) == "" && cell(row, 1) == "" {
			continue
		}
		kept = append(kept, row)
	}

	return kept
}

func isHeader(row []string) bool {
	for i := range min(len(row), 2) {
		if credential.IsKeyShaped(row[i]) {
			return false
		}
	}

	return true
}
