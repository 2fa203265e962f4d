package store

import (
	"context"
	"fmt"
	"sync"
)

// MemStore is an in-process Store used by tests and local development.
// Tables are raw record grids, header row included, mirroring what the
// CSV and Postgres backends persist.
type MemStore struct {
	mu     sync.RWMutex
	tables map[string][][]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{tables: make(map[string][][]string)}
}

// SetTable replaces a table's full contents, header row first.
func (s *MemStore) SetTable(table string, records [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([][]string, len(records))
	for i, r := range records {
		copied[i] = append([]string(nil), r...)
	}
	s.tables[table] = copied
}

// DropTable removes a table entirely.
func (s *MemStore) DropTable(table string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tables, table)
}

// Records returns a copy of the raw record grid for a table, header included.
func (s *MemStore) Records(table string) [][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := s.tables[table]
	copied := make([][]string, len(records))
	for i, r := range records {
		copied[i] = append([]string(nil), r...)
	}
	return copied
}

// Read returns the named table as a Sheet.
func (s *MemStore) Read(ctx context.Context, table string) (*Sheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, ok := s.tables[table]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingTable, table)
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
func (s *MemStore) SetCell(ctx context.Context, table string, rowIndex int, column, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok := s.tables[table]
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingTable, table)
	}
	if len(records) == 0 {
		return fmt.Errorf("table %s has no header row", table)
	}

	col := ColumnIndex(trimHeaders(records[0]), column)
	if col < 0 {
		return fmt.Errorf("table %s: column %q not found", table, column)
	}
	target := rowIndex + 1
	if rowIndex < 0 || target >= len(records) {
		return fmt.Errorf("table %s: row %d out of range", table, rowIndex)
	}

	for len(records[target]) <= col {
		records[target] = append(records[target], "")
	}
	records[target][col] = value
	return nil
}

// Append writes a full row at the end of the named table.
func (s *MemStore) Append(ctx context.Context, table string, cells []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok := s.tables[table]
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingTable, table)
	}
	s.tables[table] = append(records, append([]string(nil), cells...))
	return nil
}
