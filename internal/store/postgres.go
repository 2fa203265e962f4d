package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// PGStore is a Store backed by a single generic Postgres relation. Each
// sheet row is one record of sheet_rows keyed by (tab, row_num), with the
// cells kept as a text array; row_num 1 is the header row. This preserves
// sheet semantics (positional rows, header-defined fields) while letting
// the board tables live in Postgres.
type PGStore struct {
	db DBTX
}

// Schema is the relation PGStore operates on. Applied by the operator or
// at startup via EnsureSchema.
const Schema = `
CREATE TABLE IF NOT EXISTS sheet_rows (
    tab     text    NOT NULL,
    row_num integer NOT NULL,
    cells   text[]  NOT NULL,
    PRIMARY KEY (tab, row_num)
)`

// NewPGStore creates a Store over an existing connection pool.
func NewPGStore(db DBTX) *PGStore {
	return &PGStore{db: db}
}

// EnsureSchema creates the sheet_rows relation if it does not exist.
func (s *PGStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Read returns the named table as a Sheet.
func (s *PGStore) Read(ctx context.Context, table string) (*Sheet, error) {
	rows, err := s.db.Query(ctx,
		`SELECT cells FROM sheet_rows WHERE tab = $1 ORDER BY row_num`, table)
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", table, err)
	}
	defer rows.Close()

	var records [][]string
	for rows.Next() {
		var cells []string
		if err := rows.Scan(&cells); err != nil {
			return nil, fmt.Errorf("read table %s: %w", table, err)
		}
		records = append(records, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read table %s: %w", table, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingTable, table)
	}

	headers := trimHeaders(records[0])
	sheet := &Sheet{Name: table, Headers: headers, Rows: make([]Row, 0, len(records)-1)}
	for _, cells := range records[1:] {
		sheet.Rows = append(sheet.Rows, rowFromCells(headers, cells))
	}
	return sheet, nil
}

// SetCell updates a single cell addressed by data row index and column name.
func (s *PGStore) SetCell(ctx context.Context, table string, rowIndex int, column, value string) error {
	headers, err := s.headerRow(ctx, table)
	if err != nil {
		return err
	}
	col := ColumnIndex(headers, column)
	if col < 0 {
		return fmt.Errorf("table %s: column %q not found", table, column)
	}

	rowNum := rowIndex + 2 // header is row 1
	var cells []string
	err = s.db.QueryRow(ctx,
		`SELECT cells FROM sheet_rows WHERE tab = $1 AND row_num = $2`,
		table, rowNum).Scan(&cells)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("table %s: row %d out of range", table, rowIndex)
		}
		return fmt.Errorf("read row %s/%d: %w", table, rowNum, err)
	}

	for len(cells) <= col {
		cells = append(cells, "")
	}
	cells[col] = value

	_, err = s.db.Exec(ctx,
		`UPDATE sheet_rows SET cells = $3 WHERE tab = $1 AND row_num = $2`,
		table, rowNum, cells)
	if err != nil {
		return fmt.Errorf("write cell %s/%d: %w", table, rowNum, err)
	}
	return nil
}

// Append writes a full row at the end of the named table.
func (s *PGStore) Append(ctx context.Context, table string, cells []string) error {
	if _, err := s.headerRow(ctx, table); err != nil {
		return err
	}
	_, err := s.db.Exec(ctx,
		`INSERT INTO sheet_rows (tab, row_num, cells)
		 SELECT $1, COALESCE(MAX(row_num), 0) + 1, $2
		 FROM sheet_rows WHERE tab = $1`,
		table, cells)
	if err != nil {
		return fmt.Errorf("append to %s: %w", table, err)
	}
	return nil
}

// headerRow fetches the trimmed header row, mapping absence to ErrMissingTable.
func (s *PGStore) headerRow(ctx context.Context, table string) ([]string, error) {
	var cells []string
	err := s.db.QueryRow(ctx,
		`SELECT cells FROM sheet_rows WHERE tab = $1 AND row_num = 1`,
		table).Scan(&cells)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("%w: %s", ErrMissingTable, table)
		}
		return nil, fmt.Errorf("read header %s: %w", table, err)
	}
	return trimHeaders(cells), nil
}
