package core

// helpers_test.go holds the shared fixtures: an in-memory pair of stores
// seeded with the board tables and a small product tab.

import (
	"context"

	"github.com/asredigitalgroup-rgb/disti-board/internal/config"
	"github.com/asredigitalgroup-rgb/disti-board/internal/store"
)

func testConfig() *config.Config {
	return &config.Config{
		Board: config.BoardConfig{
			UsersTable:      "USERS",
			FavoritesTable:  "PREFS_FAV",
			AuditTable:      "AUDIT_LOG",
			CategoriesTable: "SYNC_CATEGORIES",
			Timezone:        "UTC",
		},
		Inventory: config.InventoryConfig{
			QtyGreen:     10,
			QtyYellow:    3,
			FallbackTabs: []string{"CPU", "MAINBOARD", "VGA", "RAM"},
			Locale:       "fa",
		},
	}
}

// newTestStores seeds a products store with a CPU tab and a board store
// with the standard tables.
func newTestStores() (products, board *store.MemStore) {
	products = store.NewMemStore()
	products.SetTable("CPU", [][]string{
		{"SKU", "BRAND", "SERIES", "MODEL", "SALES PRICE", "QTY", "MARKET", "RETAIL", "GUARANTEE", "NOTE", "Active"},
		{"A1", "Intel", "Core i5", "12400F", "185", "12", "190", "199", "Sazgar", "", ""},
		{"A2", "Intel", "Core i7", "12700K", "320", "5", "", "340", "Sazgar", "tray", "yes"},
		{"A3", "AMD", "Ryzen 5", "5600X", "things", "0", "160", "", "Avajang", "", "TRUE"},
		{"A4", "AMD", "Ryzen 7", "5800X", "250", "2", "255", "", "Avajang", "", "no"},
		{"", "Ghost", "", "", "1", "1", "", "", "", "", ""},
	})

	board = store.NewMemStore()
	board.SetTable("USERS", [][]string{
		{"EMAIL", "ROLE", "NAME", "AVATAR"},
		{"admin@example.com", "admin", "Admin", ""},
		{"Editor@Example.com", "editor", "Edit Or", "e.png"},
		{"viewer@example.com", "viewer", "View Er", ""},
	})
	board.SetTable("PREFS_FAV", [][]string{
		{"EMAIL", "SKU", "FAVORITE"},
		{"editor@example.com", "A1", "TRUE"},
		{"admin@example.com", "A2", "1"},
	})
	board.SetTable("AUDIT_LOG", [][]string{
		{"TIMESTAMP", "ACTOR", "ACTION", "TAB", "SKU", "DETAIL", "TZ"},
	})
	board.SetTable("SYNC_CATEGORIES", [][]string{
		{"TAB", "TITLE", "GROUP_BY", "ORDER"},
		{"VGA", "Graphics", "gpu", "2"},
		{"CPU", "Processors", "", "1"},
		{"", "No tab", "", "0"},
	})
	return products, board
}

func newTestService() (*Service, *store.MemStore, *store.MemStore) {
	products, board := newTestStores()
	return NewService(products, board, testConfig()), products, board
}

func asUser(email string) context.Context {
	return ContextWithEmail(context.Background(), email)
}
