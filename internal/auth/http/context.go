// Package http provides the bearer authentication middleware, the role gate and the
// per-principal rate limiter.
package http

import (
	"context"

	authDomain "github.com/allisson/custody/internal/auth/domain"
)

// principalKey is a context key type for storing the authenticated principal.
type principalKey struct{}

// WithPrincipal stores an authenticated principal in the context.
// This is called by AuthenticationMiddleware after the token has been verified.
func WithPrincipal(ctx context.Context, principal *authDomain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipal retrieves the authenticated principal from the context.
// Returns (principal, true) if present, or (nil, false) otherwise.
func GetPrincipal(ctx context.Context) (*authDomain.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*authDomain.Principal)
	return principal, ok && principal != nil
}
