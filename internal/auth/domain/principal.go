package domain

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/custody/internal/auth/internal/claims"
	apperrors "github.com/allisson/custody/internal/errors"
)

// PrincipalID identifies an authenticated principal. Its value is only reachable from a
// Principal, so a directory lookup keyed by PrincipalID cannot be made for an arbitrary id.
type PrincipalID struct {
	value uuid.UUID
}

// UUID returns the underlying identifier for storage and logging.
func (id PrincipalID) UUID() uuid.UUID {
	return id.value
}

// String returns the canonical UUID text.
func (id PrincipalID) String() string {
	return id.value.String()
}

// TokenVerifier checks a bearer token and returns its claims. The result type is only
// constructible under internal/auth, so the JWT token service is the implementation callers
// outside that tree can pass.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (claims.Verified, error)
}

// Principal is an authenticated caller. It is immutable.
type Principal struct {
	id    PrincipalID
	roles []Role
}

// Authenticate verifies token and builds the principal it identifies.
// It is the only way to obtain a Principal. Unknown role names are dropped.
func Authenticate(ctx context.Context, verifier TokenVerifier, token string) (*Principal, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrAuthFailure
	}

	verified, err := verifier.Verify(ctx, token)
	if err != nil {
		return nil, apperrors.Join(ErrAuthFailure, err)
	}
	if verified.Subject() == uuid.Nil {
		return nil, apperrors.Wrap(ErrAuthFailure, "token has no subject")
	}

	names := verified.Roles()
	roles := make([]Role, 0, len(names))
	for _, name := range names {
		if role, ok := ParseRole(name); ok && !slices.Contains(roles, role) {
			roles = append(roles, role)
		}
	}
	slices.Sort(roles)

	return &Principal{
		id:    PrincipalID{value: verified.Subject()},
		roles: roles,
	}, nil
}

// ID returns the principal identity.
func (p *Principal) ID() PrincipalID {
	return p.id
}

// Roles returns a sorted copy of the principal's roles.
func (p *Principal) Roles() []Role {
	return slices.Clone(p.roles)
}

// HasRole reports whether the principal carries role.
func (p *Principal) HasRole(role Role) bool {
	return slices.Contains(p.roles, role)
}

// HasAnyRole reports whether the principal carries at least one of roles.
func (p *Principal) HasAnyRole(roles ...Role) bool {
	return slices.ContainsFunc(roles, p.HasRole)
}
