// Package requestctx carries per-request identity through context.
package requestctx

import (
	"context"

	"mvp90terminal/internal/intel"
)

type sessionContextKey struct{}

// Session is the caller identity resolved from the session token.
type Session struct {
	ID       string
	Username string
	Role     intel.Role
}

// WithSession stores the caller's session in context.
func WithSession(ctx context.Context, s Session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionContextKey{}, s)
}

// SessionFromContext returns the session stored in context.
func SessionFromContext(ctx context.Context) (Session, bool) {
	if ctx == nil {
		return Session{}, false
	}
	s, ok := ctx.Value(sessionContextKey{}).(Session)
	return s, ok
}

// RoleFromContext returns the caller's role. Callers without a session are
// Viewers.
func RoleFromContext(ctx context.Context) intel.Role {
	s, ok := SessionFromContext(ctx)
	if !ok || s.Role == "" {
		return intel.RoleViewer
	}
	return s.Role
}
