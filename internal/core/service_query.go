package core

// service_query.go loads, filters, sorts and annotates product rows for a
// single category tab. Every query re-reads the store; freshness is traded
// for latency by design.

import (
	"context"
	"sort"
	"strings"

	"github.com/asredigitalgroup-rgb/disti-board/internal/logging"
	"github.com/asredigitalgroup-rgb/disti-board/internal/store"
)

// Favorites table columns.
const (
	colFavEmail = "EMAIL"
	colFavSku   = "SKU"
	colFavFlag  = "FAVORITE"
)

// ListProducts returns the filtered, sorted product rows of a category tab.
func (s *Service) ListProducts(ctx context.Context, tab string, opts ListOptions) (*ProductList, error) {
	tab = strings.TrimSpace(tab)
	if tab == "" {
		return nil, errValidation("tab is required")
	}

	sheet, err := s.products.Read(ctx, tab)
	if err != nil {
		return nil, errStore(err, "read table %s: %v", tab, err)
	}
	fields := resolveFields(sheet.Headers)

	// Favorites are a side path: if the lookup fails the listing proceeds
	// with an empty set rather than failing the whole query.
	favorites, ok := s.favoriteSet(ctx)
	if !ok {
		favorites = map[string]bool{}
	}

	products := make([]Product, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		if !activeRow(fields, row) {
			continue
		}
		p := fields.project(row)
		if p.Sku == "" {
			continue
		}
		p.Favorite = favorites[p.Sku]
		p.QtyLevel = s.qtyLevel(p.Qty)
		products = append(products, p)
	}

	if q := strings.TrimSpace(opts.Search); q != "" {
		products = searchProducts(products, q)
	}
	if opts.OnlyFavorites {
		kept := products[:0]
		for _, p := range products {
			if p.Favorite {
				kept = append(kept, p)
			}
		}
		products = kept
	}
	if opts.Sort != nil && opts.Sort.Field != "" {
		s.sortProducts(products, *opts.Sort)
	}

	return &ProductList{Tab: tab, Count: len(products), Products: products}, nil
}

// activeRow applies the Active-type column filter: rows are kept when the
// column is missing, the cell is empty, or the cell parses as true.
func activeRow(fields fieldMap, row store.Row) bool {
	if !fields.has(FieldActive) {
		return true
	}
	cell := strings.TrimSpace(fields.cell(row, FieldActive))
	if cell == "" {
		return true
	}
	return ParseBool(cell)
}

// searchProducts keeps rows whose sku, brand, series or model contains the
// query, case-insensitively.
func searchProducts(products []Product, query string) []Product {
	q := strings.ToLower(query)
	kept := products[:0]
	for _, p := range products {
		if containsFold(p.Sku, q) || containsFold(p.Brand, q) ||
			containsFold(p.Series, q) || containsFold(p.Model, q) {
			kept = append(kept, p)
		}
	}
	return kept
}

func containsFold(s, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(s), loweredQuery)
}

// sortProducts orders products by the named field, ascending unless the
// direction is "desc". Numbers compare numerically, everything else as
// locale-aware text. Rows missing the sort field sort after rows that have
// it, regardless of direction; two missing values are equal.
func (s *Service) sortProducts(products []Product, spec SortSpec) {
	desc := strings.EqualFold(strings.TrimSpace(spec.Direction), "desc")
	numeric := numericFields[spec.Field]

	sort.SliceStable(products, func(i, j int) bool {
		if numeric {
			a, b := numericKey(products[i], spec.Field), numericKey(products[j], spec.Field)
			if a.Valid != b.Valid {
				return a.Valid
			}
			if !a.Valid {
				return false
			}
			if desc {
				return a.Value > b.Value
			}
			return a.Value < b.Value
		}

		a, b := textKey(products[i], spec.Field), textKey(products[j], spec.Field)
		if (a == "") != (b == "") {
			return a != ""
		}
		if a == "" {
			return false
		}
		c := s.collator.CompareString(a, b)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func numericKey(p Product, field string) Number {
	switch field {
	case FieldSalesPrice:
		return p.SalesPrice
	case FieldQty:
		return p.Qty
	case FieldMarket:
		return p.Market
	case FieldRetail:
		return p.Retail
	default:
		return Number{}
	}
}

func textKey(p Product, field string) string {
	switch field {
	case FieldSku:
		return p.Sku
	case FieldBrand:
		return p.Brand
	case FieldSeries:
		return p.Series
	case FieldModel:
		return p.Model
	case FieldGuarantee:
		return p.Guarantee
	case FieldGrntDu:
		return p.GrntDu
	case FieldNote:
		return p.Note
	default:
		return ""
	}
}

// favoriteSet loads the acting user's favorite skus. The second return
// reports availability: (nil, false) means the favorites table could not
// be used and the caller should degrade to an empty set.
func (s *Service) favoriteSet(ctx context.Context) (map[string]bool, bool) {
	email := strings.ToLower(strings.TrimSpace(EmailFromContext(ctx)))
	if email == "" {
		return map[string]bool{}, true
	}

	sheet, err := s.board.Read(ctx, s.cfg.Board.FavoritesTable)
	if err != nil {
		logging.FromContext(ctx).Warn("favorites unavailable",
			"table", s.cfg.Board.FavoritesTable, "error", err)
		return nil, false
	}

	emailCol, _ := sheet.Column(colFavEmail)
	skuCol, _ := sheet.Column(colFavSku)
	flagCol, _ := sheet.Column(colFavFlag)

	set := make(map[string]bool)
	for _, row := range sheet.Rows {
		if strings.ToLower(strings.TrimSpace(row[emailCol])) != email {
			continue
		}
		sku := strings.TrimSpace(row[skuCol])
		if sku == "" {
			continue
		}
		// Later rows override earlier ones, so an upsert that flipped the
		// flag wins over any stale duplicate.
		if ParseBool(row[flagCol]) {
			set[sku] = true
		} else {
			delete(set, sku)
		}
	}
	return set, true
}
