package core

// service_mutations.go holds the two mutating operations: role-gated
// partial product updates and per-user favorite toggles. Row lookup is a
// linear scan; at dashboard table sizes an index would not pay for itself.

import (
	"context"
	"fmt"
	"strings"
)

// updatableFields lists the product fields a partial update may write, in
// the order they are applied.
var updatableFields = []string{
	FieldSalesPrice,
	FieldQty,
	FieldMarket,
	FieldRetail,
	FieldNote,
}

// UpdateProduct applies a partial update to a single product row located
// by (tab, sku). Only editors and admins may update; fields absent from
// the payload are left untouched; unknown target columns are skipped.
func (s *Service) UpdateProduct(ctx context.Context, payload UpdatePayload) (*UpdateResult, error) {
	user := s.ResolveUser(ctx)
	if !user.Role.AtLeast(RoleEditor) {
		return nil, errAuthorization("updating products requires the %s role", RoleEditor)
	}

	tab := strings.TrimSpace(payload.Tab)
	sku := strings.TrimSpace(payload.Sku)
	if tab == "" || sku == "" {
		return nil, errValidation("tab and sku are required")
	}

	sheet, err := s.products.Read(ctx, tab)
	if err != nil {
		return nil, errStore(err, "read table %s: %v", tab, err)
	}
	fields := resolveFields(sheet.Headers)
	if !fields.has(FieldSku) {
		return nil, &StoreError{Msg: fmt.Sprintf("table %s has no SKU column", tab)}
	}

	rowIndex := -1
	for i, row := range sheet.Rows {
		if strings.TrimSpace(fields.cell(row, FieldSku)) == sku {
			rowIndex = i
			break
		}
	}
	if rowIndex < 0 {
		return nil, errNotFound("sku %s not found in %s", sku, tab)
	}

	changes := buildChanges(payload)

	var updated []string
	for _, field := range updatableFields {
		value, present := changes[field]
		if !present {
			continue
		}
		column, ok := fields[field]
		if !ok {
			continue // target column absent in this tab
		}
		if err := s.products.SetCell(ctx, tab, rowIndex, column, value); err != nil {
			return nil, errStore(err, "write %s.%s: %v", tab, column, err)
		}
		updated = append(updated, field)
	}

	s.logAudit(ctx, ActionUpdateProduct, tab, sku, changes)

	return &UpdateResult{Tab: tab, Sku: sku, Updated: updated}, nil
}

// buildChanges restricts the payload to the allowed fields and normalizes
// each present value into cell text. An unparseable numeric value becomes
// an empty cell, clearing the previous one.
func buildChanges(payload UpdatePayload) map[string]string {
	present := map[string]any{
		FieldSalesPrice: payload.SalesPrice,
		FieldQty:        payload.Qty,
		FieldMarket:     payload.Market,
		FieldRetail:     payload.Retail,
		FieldNote:       payload.Note,
	}

	changes := make(map[string]string)
	for field, value := range present {
		if value == nil {
			continue
		}
		if numericFields[field] {
			changes[field] = formatNumber(NormalizeNumber(value))
		} else {
			changes[field] = fmt.Sprint(value)
		}
	}
	return changes
}

// SetFavorite upserts the acting user's favorite flag for a product. No
// role is required; every authenticated user owns their own preferences.
func (s *Service) SetFavorite(ctx context.Context, sku string, favorite any) (*FavoriteResult, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, errValidation("sku is required")
	}
	email := strings.TrimSpace(EmailFromContext(ctx))
	if email == "" {
		return nil, errAuthorization("favorites require an authenticated user")
	}
	fav := NormalizeBool(favorite)

	table := s.cfg.Board.FavoritesTable
	sheet, err := s.board.Read(ctx, table)
	if err != nil {
		return nil, errStore(err, "read table %s: %v", table, err)
	}
	emailCol, okEmail := sheet.Column(colFavEmail)
	skuCol, okSku := sheet.Column(colFavSku)
	flagCol, okFlag := sheet.Column(colFavFlag)
	if !okEmail || !okSku || !okFlag {
		return nil, errConfig("table %s must have %s, %s and %s columns",
			table, colFavEmail, colFavSku, colFavFlag)
	}

	cellValue := "FALSE"
	if fav {
		cellValue = "TRUE"
	}

	needle := strings.ToLower(email)
	rowIndex := -1
	for i, row := range sheet.Rows {
		if strings.ToLower(strings.TrimSpace(row[emailCol])) == needle &&
			strings.TrimSpace(row[skuCol]) == sku {
			rowIndex = i
			break
		}
	}

	if rowIndex >= 0 {
		if err := s.board.SetCell(ctx, table, rowIndex, flagCol, cellValue); err != nil {
			return nil, errStore(err, "write %s.%s: %v", table, flagCol, err)
		}
	} else {
		cells := make([]string, len(sheet.Headers))
		for i, h := range sheet.Headers {
			switch h {
			case emailCol:
				cells[i] = email
			case skuCol:
				cells[i] = sku
			case flagCol:
				cells[i] = cellValue
			}
		}
		if err := s.board.Append(ctx, table, cells); err != nil {
			return nil, errStore(err, "append to %s: %v", table, err)
		}
	}

	s.logAudit(ctx, ActionSetFavorite, "", sku, map[string]bool{"favorite": fav})

	return &FavoriteResult{Sku: sku, Favorite: fav}, nil
}
