// Package claims carries the identity extracted from a token whose signature has been checked.
// It can only be imported from internal/auth, so only verifiers there can hand claims to
// domain.Authenticate.
package claims

import (
	"slices"

	"github.com/google/uuid"
)

// Verified is the subject and role names of a verified token.
type Verified struct {
	subject uuid.UUID
	roles   []string
}

// New returns verified claims for subject carrying roles.
func New(subject uuid.UUID, roles []string) Verified {
	return Verified{subject: subject, roles: slices.Clone(roles)}
}

// Subject returns the token subject.
func (v Verified) Subject() uuid.UUID {
	return v.subject
}

// Roles returns a copy of the raw role names.
func (v Verified) Roles() []string {
	return slices.Clone(v.roles)
}
