// Package store provides access to named tabular sheets: two-dimensional
// tables whose first row is a header defining field names and whose
// remaining rows are data. Three backends share the same semantics: a CSV
// workbook directory, a Postgres relation, and an in-memory store for tests.
package store

import (
	"context"
	"errors"
	"strings"
)

// ErrMissingTable is returned when the named table does not exist in the store.
var ErrMissingTable = errors.New("missing table")

// Row is a single data row keyed by the trimmed header column names.
type Row map[string]string

// Sheet holds one table read in full: the trimmed header row and the data
// rows in sheet order. Data row i corresponds to sheet row i+2.
type Sheet struct {
	Name    string
	Headers []string
	Rows    []Row
}

// Store reads and writes named tables.
//
// SetCell addresses a single cell by 0-based data row index and column name;
// Append writes a full row at the end of the table in header-column order.
type Store interface {
	Read(ctx context.Context, table string) (*Sheet, error)
	SetCell(ctx context.Context, table string, rowIndex int, column, value string) error
	Append(ctx context.Context, table string, cells []string) error
}

// ColumnIndex locates a column in the header slice. It tries an exact-case
// match first, then falls back to an upper-cased match to tolerate header
// casing drift. Returns -1 if the column is not present.
func ColumnIndex(headers []string, column string) int {
	for i, h := range headers {
		if h == column {
			return i
		}
	}
	upper := strings.ToUpper(column)
	for i, h := range headers {
		if strings.ToUpper(h) == upper {
			return i
		}
	}
	return -1
}

// Column resolves a column name against the sheet header with the same
// exact-then-uppercase tolerance as ColumnIndex, returning the header name
// actually present. Use the returned name to index into Rows.
func (s *Sheet) Column(name string) (string, bool) {
	i := ColumnIndex(s.Headers, name)
	if i < 0 {
		return "", false
	}
	return s.Headers[i], true
}

// HasColumns reports whether every named column resolves in the header.
func HasColumns(headers []string, columns ...string) bool {
	for _, c := range columns {
		if ColumnIndex(headers, c) < 0 {
			return false
		}
	}
	return true
}

// rowFromCells builds a Row from raw cells using the trimmed header names.
// Cells beyond the header width are dropped; short rows yield empty fields.
func rowFromCells(headers, cells []string) Row {
	row := make(Row, len(headers))
	for i, h := range headers {
		if i < len(cells) {
			row[h] = cells[i]
		} else {
			row[h] = ""
		}
	}
	return row
}

// trimHeaders returns the header cells with surrounding whitespace removed.
func trimHeaders(cells []string) []string {
	headers := make([]string, len(cells))
	for i, c := range cells {
		headers[i] = strings.TrimSpace(c)
	}
	return headers
}
