package core

import (
	"errors"
	"reflect"
	"testing"

	"github.com/asredigitalgroup-rgb/disti-board/internal/store"
)

func auditRows(board *store.MemStore) [][]string {
	return board.Records("AUDIT_LOG")[1:]
}

func TestUpdateProduct(t *testing.T) {
	svc, products, board := newTestService()

	result, err := svc.UpdateProduct(asUser("editor@example.com"), UpdatePayload{
		Tab:        "CPU",
		Sku:        "A2",
		SalesPrice: "۳۳۰", // 330 in Persian digits
		Qty:        float64(7),
		Note:       "promo",
	})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}

	wantUpdated := map[string]bool{FieldSalesPrice: true, FieldQty: true, FieldNote: true}
	if len(result.Updated) != len(wantUpdated) {
		t.Fatalf("updated = %v, want salesPrice, qty, note", result.Updated)
	}
	for _, f := range result.Updated {
		if !wantUpdated[f] {
			t.Errorf("unexpected updated field %q", f)
		}
	}

	rows := products.Records("CPU")
	a2 := rows[2] // header + A1 precede it
	if a2[4] != "330" {
		t.Errorf("SALES PRICE cell = %q, want 330", a2[4])
	}
	if a2[5] != "7" {
		t.Errorf("QTY cell = %q, want 7", a2[5])
	}
	if a2[9] != "promo" {
		t.Errorf("NOTE cell = %q, want promo", a2[9])
	}
	// Fields absent from the payload stay untouched.
	if a2[7] != "340" {
		t.Errorf("RETAIL cell = %q, want untouched 340", a2[7])
	}

	audits := auditRows(board)
	if len(audits) != 1 {
		t.Fatalf("audit rows = %d, want 1", len(audits))
	}
	entry := audits[0]
	if entry[1] != "editor@example.com" || entry[2] != ActionUpdateProduct || entry[3] != "CPU" || entry[4] != "A2" {
		t.Errorf("audit entry = %v", entry)
	}
	if len(entry) != 7 {
		t.Errorf("audit entry has %d cells, want 7", len(entry))
	}
}

func TestUpdateProductAuthorization(t *testing.T) {
	svc, products, board := newTestService()
	before := products.Records("CPU")

	for _, email := range []string{"viewer@example.com", "stranger@example.com", ""} {
		_, err := svc.UpdateProduct(asUser(email), UpdatePayload{
			Tab: "CPU", Sku: "A1", Qty: float64(99),
		})
		var aErr *AuthorizationError
		if !errors.As(err, &aErr) {
			t.Fatalf("%q: err = %v, want AuthorizationError", email, err)
		}
	}

	if !reflect.DeepEqual(before, products.Records("CPU")) {
		t.Error("denied update must perform zero writes")
	}
	if len(auditRows(board)) != 0 {
		t.Error("denied update must not be audited")
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	svc, products, _ := newTestService()
	before := products.Records("CPU")

	_, err := svc.UpdateProduct(asUser("admin@example.com"), UpdatePayload{
		Tab: "CPU", Sku: "ZZ9", Qty: float64(1),
	})
	var nErr *NotFoundError
	if !errors.As(err, &nErr) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if !reflect.DeepEqual(before, products.Records("CPU")) {
		t.Error("failed lookup must perform zero writes")
	}
}

func TestUpdateProductValidation(t *testing.T) {
	svc, _, _ := newTestService()

	for _, payload := range []UpdatePayload{
		{Tab: "", Sku: "A1"},
		{Tab: "CPU", Sku: "  "},
	} {
		_, err := svc.UpdateProduct(asUser("admin@example.com"), payload)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("payload %+v: err = %v, want ValidationError", payload, err)
		}
	}
}

func TestUpdateProductMissingSkuColumn(t *testing.T) {
	svc, products, _ := newTestService()
	products.SetTable("RAW", [][]string{
		{"NAME", "QTY"},
		{"thing", "1"},
	})

	_, err := svc.UpdateProduct(asUser("admin@example.com"), UpdatePayload{
		Tab: "RAW", Sku: "A1", Qty: float64(2),
	})
	var sErr *StoreError
	if !errors.As(err, &sErr) {
		t.Fatalf("err = %v, want StoreError", err)
	}
}

func TestUpdateProductSkipsUnknownColumns(t *testing.T) {
	svc, products, _ := newTestService()
	products.SetTable("LITE", [][]string{
		{"SKU", "QTY"},
		{"L1", "4"},
	})

	result, err := svc.UpdateProduct(asUser("admin@example.com"), UpdatePayload{
		Tab: "LITE", Sku: "L1", Qty: float64(6), Note: "no note column here",
	})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if len(result.Updated) != 1 || result.Updated[0] != FieldQty {
		t.Errorf("updated = %v, want [qty] only", result.Updated)
	}
}

func TestSetFavoriteUpsert(t *testing.T) {
	svc, _, board := newTestService()
	ctx := asUser("viewer@example.com")

	countRows := func() int {
		n := 0
		for _, row := range board.Records("PREFS_FAV")[1:] {
			if row[0] == "viewer@example.com" && row[1] == "B7" {
				n++
			}
		}
		return n
	}

	res, err := svc.SetFavorite(ctx, "B7", true)
	if err != nil {
		t.Fatalf("SetFavorite(true): %v", err)
	}
	if !res.Favorite || res.Sku != "B7" {
		t.Errorf("result = %+v, want favorite B7", res)
	}
	if countRows() != 1 {
		t.Fatalf("rows after first toggle = %d, want 1", countRows())
	}

	res, err = svc.SetFavorite(ctx, "B7", false)
	if err != nil {
		t.Fatalf("SetFavorite(false): %v", err)
	}
	if res.Favorite {
		t.Error("result.Favorite = true, want false")
	}
	if countRows() != 1 {
		t.Fatalf("rows after second toggle = %d, want exactly 1", countRows())
	}

	for _, row := range board.Records("PREFS_FAV")[1:] {
		if row[0] == "viewer@example.com" && row[1] == "B7" && row[2] != "FALSE" {
			t.Errorf("FAVORITE cell = %q, want FALSE", row[2])
		}
	}

	if got := len(auditRows(board)); got != 2 {
		t.Errorf("audit rows = %d, want 2", got)
	}
}

func TestSetFavoriteLooseBoolean(t *testing.T) {
	svc, _, board := newTestService()

	res, err := svc.SetFavorite(asUser("viewer@example.com"), "C1", "yes")
	if err != nil {
		t.Fatalf("SetFavorite: %v", err)
	}
	if !res.Favorite {
		t.Error("favorite = false, want true for token yes")
	}

	// The stored cell round-trips through the boolean parser.
	for _, row := range board.Records("PREFS_FAV")[1:] {
		if row[1] == "C1" && !ParseBool(row[2]) {
			t.Errorf("stored cell %q does not parse as true", row[2])
		}
	}
}

func TestSetFavoriteErrors(t *testing.T) {
	svc, _, board := newTestService()

	_, err := svc.SetFavorite(asUser("viewer@example.com"), "  ", true)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("blank sku err = %v, want ValidationError", err)
	}

	_, err = svc.SetFavorite(asUser(""), "A1", true)
	var aErr *AuthorizationError
	if !errors.As(err, &aErr) {
		t.Fatalf("anonymous err = %v, want AuthorizationError", err)
	}

	board.SetTable("PREFS_FAV", [][]string{
		{"EMAIL", "SKU"}, // FAVORITE column missing
	})
	_, err = svc.SetFavorite(asUser("viewer@example.com"), "A1", true)
	var cErr *ConfigError
	if !errors.As(err, &cErr) {
		t.Fatalf("malformed table err = %v, want ConfigError", err)
	}
}
