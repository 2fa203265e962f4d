package core

// audit.go appends one row to the audit log for every successful mutating
// action. Auditing is best-effort: a failed append is logged and swallowed
// so it can never fail the primary operation.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/asredigitalgroup-rgb/disti-board/internal/logging"
)

// Audit action names.
const (
	ActionUpdateProduct = "updateProduct"
	ActionSetFavorite   = "setFavorite"
)

// AuditEntry is one appended audit row. The sheet keeps the seven
// positional columns; the id exists only for log correlation.
type AuditEntry struct {
	ID        string
	Timestamp time.Time
	Actor     string
	Action    string
	Tab       string
	Sku       string
	Detail    string
	Timezone  string
}

// logAudit appends an audit entry recording the actor and change detail.
// The timestamp is rendered in the configured board timezone; if that
// timezone cannot be loaded the entry falls back to UTC.
func (s *Service) logAudit(ctx context.Context, action, tab, sku string, detail any) {
	logger := logging.FromContext(ctx)

	detailJSON, err := json.Marshal(detail)
	if err != nil {
		detailJSON = []byte("{}")
	}

	tz := s.cfg.Board.Timezone
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
		tz = "UTC"
	}

	entry := AuditEntry{
		ID:        uuid.New().String(),
		Timestamp: time.Now().In(loc),
		Actor:     EmailFromContext(ctx),
		Action:    action,
		Tab:       tab,
		Sku:       sku,
		Detail:    string(detailJSON),
		Timezone:  tz,
	}

	cells := []string{
		entry.Timestamp.Format(time.RFC3339),
		entry.Actor,
		entry.Action,
		entry.Tab,
		entry.Sku,
		entry.Detail,
		entry.Timezone,
	}

	if err := s.board.Append(ctx, s.cfg.Board.AuditTable, cells); err != nil {
		logger.Warn("audit append failed",
			"audit_id", entry.ID, "action", action, "error", err)
		return
	}

	logger.Debug("audit entry appended",
		"audit_id", entry.ID, "action", action, "tab", tab, "sku", sku)
}
