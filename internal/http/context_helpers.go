package httpx

import (
	"context"

	"github.com/codemates/website/internal/service"
)

// authorizedKey is an unexported context key type to avoid collisions across
// packages. Centralized in this file so all handlers/middleware use the same key.
type authorizedKey struct{}

// SetAuthorizedInContext returns a child context that carries the admin the
// request is acting as. If authorized is nil, the original ctx is returned
// unchanged.
func SetAuthorizedInContext(ctx context.Context, authorized *service.Authorized) context.Context {
	if authorized == nil {
		return ctx
	}
	return context.WithValue(ctx, authorizedKey{}, authorized)
}

// AuthorizedFromContext returns the authorized admin from context and a
// boolean indicating presence.
func AuthorizedFromContext(ctx context.Context) (*service.Authorized, bool) {
	if a, ok := ctx.Value(authorizedKey{}).(*service.Authorized); ok && a != nil {
		return a, true
	}
	return nil, false
}
