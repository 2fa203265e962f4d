package core

import (
	"context"
	"testing"
)

func TestListCategories(t *testing.T) {
	svc, _, board := newTestService()
	ctx := context.Background()

	t.Run("configured table, ordered, empty tab dropped", func(t *testing.T) {
		cats := svc.ListCategories(ctx)
		if len(cats) != 2 {
			t.Fatalf("got %d categories, want 2", len(cats))
		}
		if cats[0].Tab != "CPU" || cats[1].Tab != "VGA" {
			t.Errorf("order = [%s, %s], want [CPU, VGA]", cats[0].Tab, cats[1].Tab)
		}
		if cats[0].Title != "Processors" {
			t.Errorf("title = %q, want Processors", cats[0].Title)
		}
		if cats[1].GroupBy != "gpu" {
			t.Errorf("groupBy = %q, want gpu", cats[1].GroupBy)
		}
	})

	t.Run("title falls back to tab", func(t *testing.T) {
		board.SetTable("SYNC_CATEGORIES", [][]string{
			{"TAB", "TITLE", "GROUP_BY", "ORDER"},
			{"SSD", "", "", ""},
		})
		cats := svc.ListCategories(ctx)
		if len(cats) != 1 || cats[0].Title != "SSD" {
			t.Fatalf("got %+v, want single SSD category titled SSD", cats)
		}
	})

	t.Run("empty table falls back to static list", func(t *testing.T) {
		board.SetTable("SYNC_CATEGORIES", [][]string{
			{"TAB", "TITLE", "GROUP_BY", "ORDER"},
		})
		assertFallback(t, svc.ListCategories(ctx))
	})

	t.Run("missing table falls back to static list", func(t *testing.T) {
		board.DropTable("SYNC_CATEGORIES")
		assertFallback(t, svc.ListCategories(ctx))
	})
}

func assertFallback(t *testing.T, cats []Category) {
	t.Helper()
	want := testConfig().Inventory.FallbackTabs
	if len(cats) != len(want) {
		t.Fatalf("got %d categories, want the %d fallback tabs", len(cats), len(want))
	}
	for i, tab := range want {
		if cats[i].Tab != tab {
			t.Errorf("cats[%d].Tab = %q, want %q", i, cats[i].Tab, tab)
		}
		if cats[i].Title != tab {
			t.Errorf("cats[%d].Title = %q, want %q", i, cats[i].Title, tab)
		}
		if cats[i].GroupBy != "" {
			t.Errorf("cats[%d].GroupBy = %q, want empty", i, cats[i].GroupBy)
		}
	}
}
