package core

import (
	"context"
	"testing"
)

func TestResolveUser(t *testing.T) {
	svc, _, board := newTestService()

	tests := []struct {
		name     string
		email    string
		wantRole Role
		wantName string
	}{
		{
			name:     "known admin",
			email:    "admin@example.com",
			wantRole: RoleAdmin,
			wantName: "Admin",
		},
		{
			name:     "case-insensitive match",
			email:    "EDITOR@example.COM",
			wantRole: RoleEditor,
			wantName: "Edit Or",
		},
		{
			name:     "unknown email defaults to viewer",
			email:    "stranger@example.com",
			wantRole: RoleViewer,
			wantName: "",
		},
		{
			name:     "anonymous defaults to viewer",
			email:    "",
			wantRole: RoleViewer,
			wantName: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := svc.ResolveUser(asUser(tt.email))
			if user.Role != tt.wantRole {
				t.Errorf("role = %q, want %q", user.Role, tt.wantRole)
			}
			if user.DisplayName != tt.wantName {
				t.Errorf("displayName = %q, want %q", user.DisplayName, tt.wantName)
			}
			if user.Email != tt.email {
				t.Errorf("email = %q, want %q", user.Email, tt.email)
			}
		})
	}

	t.Run("missing users table never fails", func(t *testing.T) {
		board.DropTable("USERS")
		user := svc.ResolveUser(asUser("admin@example.com"))
		if user.Role != RoleViewer {
			t.Errorf("role = %q, want viewer when table unreadable", user.Role)
		}
	})
}

func TestEmailFromContext(t *testing.T) {
	if got := EmailFromContext(context.Background()); got != "" {
		t.Errorf("bare context email = %q, want empty", got)
	}
	if got := EmailFromContext(asUser("a@b.c")); got != "a@b.c" {
		t.Errorf("email = %q, want a@b.c", got)
	}
}
