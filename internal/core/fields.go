package core

// fields.go declares the tolerated header spellings for each logical
// product field as data. A sheet's header row is resolved against the
// alias lists once per load, producing a fixed field-to-column mapping
// that every row projection then reuses.

import (
	"strings"

	"github.com/asredigitalgroup-rgb/disti-board/internal/store"
)

// Logical field names. These match the JSON names of Product.
const (
	FieldSku        = "sku"
	FieldBrand      = "brand"
	FieldSeries     = "series"
	FieldModel      = "model"
	FieldSalesPrice = "salesPrice"
	FieldQty        = "qty"
	FieldMarket     = "market"
	FieldRetail     = "retail"
	FieldGuarantee  = "guarantee"
	FieldGrntDu     = "grntDu"
	FieldNote       = "note"
	FieldActive     = "active"
)

// productAliases lists the accepted header spellings per logical field,
// in priority order: the first alias found in the sheet header wins.
var productAliases = map[string][]string{
	FieldSku:        {"SKU", "PART NUMBER", "CODE"},
	FieldBrand:      {"BRAND"},
	FieldSeries:     {"SERIES"},
	FieldModel:      {"MODEL"},
	FieldSalesPrice: {"SALES PRICE", "SALES", "SELL"},
	FieldQty:        {"QTY", "QUANTITY", "STOCK"},
	FieldMarket:     {"MARKET", "MARKET PRICE"},
	FieldRetail:     {"RETAIL", "RETAIL PRICE"},
	FieldGuarantee:  {"GUARANTEE", "WARRANTY"},
	FieldGrntDu:     {"GRNT DU", "GUARANTEE DURATION", "WARRANTY DURATION"},
	FieldNote:       {"NOTE", "NOTES"},
	FieldActive:     {"Active", "ACTIVE"},
}

// numericFields are the product fields parsed through the number normalizer.
var numericFields = map[string]bool{
	FieldSalesPrice: true,
	FieldQty:        true,
	FieldMarket:     true,
	FieldRetail:     true,
}

// fieldMap maps logical field names to the header column actually present
// in a sheet. Fields whose aliases all miss are simply absent.
type fieldMap map[string]string

// resolveFields matches the alias lists against a sheet header. Each alias
// is tried exact-case first across the header; a case-insensitive pass
// follows, tolerating the same casing drift the store accessor does.
func resolveFields(headers []string) fieldMap {
	fm := make(fieldMap, len(productAliases))
	for field, aliases := range productAliases {
		if col, ok := matchAlias(headers, aliases); ok {
			fm[field] = col
		}
	}
	return fm
}

func matchAlias(headers []string, aliases []string) (string, bool) {
	for _, alias := range aliases {
		for _, h := range headers {
			if h == alias {
				return h, true
			}
		}
	}
	for _, alias := range aliases {
		for _, h := range headers {
			if strings.EqualFold(h, alias) {
				return h, true
			}
		}
	}
	return "", false
}

// cell returns the raw cell text for a logical field, or "" when the
// field has no resolved column.
func (fm fieldMap) cell(row store.Row, field string) string {
	col, ok := fm[field]
	if !ok {
		return ""
	}
	return row[col]
}

// has reports whether the logical field resolved to a sheet column.
func (fm fieldMap) has(field string) bool {
	_, ok := fm[field]
	return ok
}

// project maps one sheet row into a Product. The favorite flag and stock
// level are attached by the caller.
func (fm fieldMap) project(row store.Row) Product {
	return Product{
		Sku:        strings.TrimSpace(fm.cell(row, FieldSku)),
		Brand:      strings.TrimSpace(fm.cell(row, FieldBrand)),
		Series:     strings.TrimSpace(fm.cell(row, FieldSeries)),
		Model:      strings.TrimSpace(fm.cell(row, FieldModel)),
		SalesPrice: ParseNumber(fm.cell(row, FieldSalesPrice)),
		Qty:        ParseNumber(fm.cell(row, FieldQty)),
		Market:     ParseNumber(fm.cell(row, FieldMarket)),
		Retail:     ParseNumber(fm.cell(row, FieldRetail)),
		Guarantee:  strings.TrimSpace(fm.cell(row, FieldGuarantee)),
		GrntDu:     strings.TrimSpace(fm.cell(row, FieldGrntDu)),
		Note:       strings.TrimSpace(fm.cell(row, FieldNote)),
	}
}
