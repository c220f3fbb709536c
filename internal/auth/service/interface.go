// Package service provides bearer token verification and issuance.
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/custody/internal/auth/internal/claims"
)

// TokenService verifies bearer tokens for the HTTP boundary and issues them for operators.
// It satisfies domain.TokenVerifier and is the only verifier wired outside internal/auth.
type TokenService interface {
	// Verify checks signature, expiry and issuer and returns the token claims.
	Verify(ctx context.Context, token string) (claims.Verified, error)

	// Issue signs a token for subject carrying roles.
	Issue(subject uuid.UUID, roles []string) (string, error)
}
