package core

// identity.go resolves the externally authenticated email to a role
// record. The proxy in front of the service has already verified the
// identity; this layer only maps it to dashboard privileges.

import (
	"context"
	"strings"

	"github.com/asredigitalgroup-rgb/disti-board/internal/logging"
)

// Users table columns.
const (
	colUserEmail  = "EMAIL"
	colUserRole   = "ROLE"
	colUserName   = "NAME"
	colUserAvatar = "AVATAR"
)

// ResolveUser maps the acting email to its role record by case-insensitive
// exact match in the users table. When the table is unreadable or the email
// is absent, it returns a viewer with empty display fields. It never fails:
// every request gets a usable User.
func (s *Service) ResolveUser(ctx context.Context) User {
	email := EmailFromContext(ctx)
	user := User{Email: email, Role: RoleViewer}

	sheet, err := s.board.Read(ctx, s.cfg.Board.UsersTable)
	if err != nil {
		logging.FromContext(ctx).Warn("users table unreadable, defaulting to viewer",
			"table", s.cfg.Board.UsersTable, "error", err)
		return user
	}

	needle := strings.ToLower(strings.TrimSpace(email))
	if needle == "" {
		return user
	}

	for _, row := range sheet.Rows {
		if strings.ToLower(strings.TrimSpace(row[colUserEmail])) != needle {
			continue
		}
		user.Role = ParseRole(strings.TrimSpace(row[colUserRole]))
		user.DisplayName = strings.TrimSpace(row[colUserName])
		user.Avatar = strings.TrimSpace(row[colUserAvatar])
		return user
	}
	return user
}
