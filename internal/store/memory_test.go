package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemStore()
	m.SetTable("CPU", [][]string{
		{"SKU", "QTY"},
		{"A1", "5"},
	})

	sheet, err := m.Read(ctx, "CPU")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(sheet.Rows) != 1 || sheet.Rows[0]["SKU"] != "A1" {
		t.Fatalf("rows = %v", sheet.Rows)
	}

	// Mutating the returned sheet must not leak back into the store.
	sheet.Rows[0]["SKU"] = "tampered"
	again, _ := m.Read(ctx, "CPU")
	if again.Rows[0]["SKU"] != "A1" {
		t.Error("Read must return copies")
	}

	if err := m.SetCell(ctx, "CPU", 0, "QTY", "8"); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	if err := m.Append(ctx, "CPU", []string{"A2", "3"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	records := m.Records("CPU")
	if len(records) != 3 {
		t.Fatalf("records = %d rows, want 3", len(records))
	}
	if records[1][1] != "8" || records[2][0] != "A2" {
		t.Errorf("records = %v", records)
	}

	m.DropTable("CPU")
	if _, err := m.Read(ctx, "CPU"); !errors.Is(err, ErrMissingTable) {
		t.Fatalf("err after drop = %v, want ErrMissingTable", err)
	}
}

func TestSheetColumn(t *testing.T) {
	sheet := &Sheet{Headers: []string{"Email", "SKU"}}

	if name, ok := sheet.Column("EMAIL"); !ok || name != "Email" {
		t.Errorf("Column(EMAIL) = %q, %v", name, ok)
	}
	if _, ok := sheet.Column("FAVORITE"); ok {
		t.Error("Column(FAVORITE) must not resolve")
	}
}
