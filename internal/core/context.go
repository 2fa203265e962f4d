package core

import "context"

type contextKey string

const emailKey contextKey = "actor_email"

// ContextWithEmail stores the externally verified actor email for the
// duration of a request.
func ContextWithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// EmailFromContext returns the actor email, or "" for anonymous requests.
func EmailFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(emailKey).(string); ok {
		return v
	}
	return ""
}
