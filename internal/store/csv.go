package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CSVStore is a Store backed by a directory of CSV files, one file per
// table. The file name is the table name plus ".csv". Writes rewrite the
// whole file through a temp file and rename, so a crashed write never
// leaves a half-written table behind.
type CSVStore struct {
	dir string
}

// NewCSVStore opens a CSV workbook directory, creating it if needed.
func NewCSVStore(dir string) (*CSVStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &CSVStore{dir: dir}, nil
}

func (s *CSVStore) path(table string) string {
	return filepath.Join(s.dir, table+".csv")
}

// readRecords loads all raw records of a table, including the header row.
func (s *CSVStore) readRecords(table string) ([][]string, error) {
	f, err := os.Open(s.path(table))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingTable, table)
		}
		return nil, fmt.Errorf("open table %s: %w", table, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // sheets are ragged; tolerate short rows
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", table, err)
	}
	return records, nil
}

// writeRecords atomically replaces a table's contents.
func (s *CSVStore) writeRecords(table string, records [][]string) error {
	tmp, err := os.CreateTemp(s.dir, table+".*.tmp")
	if err != nil {
		return fmt.Errorf("write table %s: %w", table, err)
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	if err := w.WriteAll(records); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write table %s: %w", table, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write table %s: %w", table, err)
	}
	if err := os.Rename(tmpName, s.path(table)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write table %s: %w", table, err)
	}
	return nil
}

// Read returns the named table as a Sheet.
func (s *CSVStore) Read(ctx context.Context, table string) (*Sheet, error) {
	records, err := s.readRecords(table)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Sheet{Name: table}, nil
	}

	headers := trimHeaders(records[0])
	sheet := &Sheet{Name: table, Headers: headers, Rows: make([]Row, 0, len(records)-1)}
	for _, cells := range records[1:] {
		sheet.Rows = append(sheet.Rows, rowFromCells(headers, cells))
	}
	return sheet, nil
}

// SetCell updates a single cell addressed by data row index and column name.
func (s *CSVStore) SetCell(ctx context.Context, table string, rowIndex int, column, value string) error {
	records, err := s.readRecords(table)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("table %s has no header row", table)
	}

	headers := trimHeaders(records[0])
	col := ColumnIndex(headers, column)
	if col < 0 {
		return fmt.Errorf("table %s: column %q not found", table, column)
	}

	target := rowIndex + 1 // skip header
	if rowIndex < 0 || target >= len(records) {
		return fmt.Errorf("table %s: row %d out of range", table, rowIndex)
	}

	// Pad short rows out to the target column before writing into them.
	for len(records[target]) <= col {
		records[target] = append(records[target], "")
	}
	records[target][col] = value

	return s.writeRecords(table, records)
}

// Append writes a full row at the end of the named table.
func (s *CSVStore) Append(ctx context.Context, table string, cells []string) error {
	records, err := s.readRecords(table)
	if err != nil {
		return err
	}
	records = append(records, cells)
	return s.writeRecords(table, records)
}

// Tables lists the table names present in the workbook directory.
func (s *CSVStore) Tables() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".csv"))
	}
	return names, nil
}
