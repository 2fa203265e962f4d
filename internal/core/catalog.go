package core

// catalog.go resolves the product category list from the board's
// configuration table, falling back to the static list when the table is
// missing, unreadable or empty. The catalog is never empty and never
// reports a table-read error to its caller.

import (
	"context"
	"sort"
	"strings"

	"github.com/asredigitalgroup-rgb/disti-board/internal/logging"
)

// Category configuration table columns.
const (
	colCatTab     = "TAB"
	colCatTitle   = "TITLE"
	colCatGroupBy = "GROUP_BY"
	colCatOrder   = "ORDER"
)

// ListCategories returns the ordered category list.
func (s *Service) ListCategories(ctx context.Context) []Category {
	sheet, err := s.board.Read(ctx, s.cfg.Board.CategoriesTable)
	if err != nil {
		logging.FromContext(ctx).Warn("categories table unreadable, using fallback",
			"table", s.cfg.Board.CategoriesTable, "error", err)
		return s.fallbackCategories()
	}

	type ordered struct {
		cat   Category
		order float64
	}
	var cats []ordered
	for _, row := range sheet.Rows {
		tab := strings.TrimSpace(row[colCatTab])
		if tab == "" {
			continue
		}
		title := strings.TrimSpace(row[colCatTitle])
		if title == "" {
			title = tab
		}
		order := 0.0
		if n := ParseNumber(row[colCatOrder]); n.Valid {
			order = n.Value
		}
		cats = append(cats, ordered{
			cat:   Category{Tab: tab, Title: title, GroupBy: strings.TrimSpace(row[colCatGroupBy])},
			order: order,
		})
	}

	if len(cats) == 0 {
		return s.fallbackCategories()
	}

	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].order < cats[j].order
	})

	out := make([]Category, len(cats))
	for i, c := range cats {
		out[i] = c.cat
	}
	return out
}

// fallbackCategories maps the configured static tab list verbatim.
func (s *Service) fallbackCategories() []Category {
	out := make([]Category, len(s.cfg.Inventory.FallbackTabs))
	for i, tab := range s.cfg.Inventory.FallbackTabs {
		out[i] = Category{Tab: tab, Title: tab}
	}
	return out
}
