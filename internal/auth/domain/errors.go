package domain

import (
	"github.com/allisson/custody/internal/errors"
)

// Authentication and authorization errors.
var (
	// ErrAuthFailure indicates a missing, malformed, expired or otherwise unverifiable token.
	ErrAuthFailure = errors.Wrap(errors.ErrUnauthorized, "authentication failed")

	// ErrNoProjectPermission indicates the principal's roles grant no project permission.
	ErrNoProjectPermission = errors.Wrap(errors.ErrForbidden, "no project permission")

	// ErrProjectNotFound indicates a project, or a managed project for a manager, does not exist.
	ErrProjectNotFound = errors.Wrap(errors.ErrNotFound, "project not found")

	// ErrMissingRole indicates the principal lacks every role a route requires.
	ErrMissingRole = errors.Wrap(errors.ErrForbidden, "missing required role")

	// ErrInvalidProject indicates invalid project attributes.
	ErrInvalidProject = errors.Wrap(errors.ErrInvalidInput, "invalid project")
)
