package domain

import (
	"context"

	apperrors "github.com/allisson/custody/internal/errors"
)

// Profile is what a principal may read about itself.
type Profile struct {
	PrincipalID PrincipalID
	Roles       []Role

	// Project is the project the principal manages, or nil.
	Project *Project
}

// Profile returns the principal's own data. The directory is keyed by the principal's id, so
// there is no way to read another principal's profile through it. A projectManager without a
// project gets a nil Project.
func (p *Principal) Profile(ctx context.Context, directory ProjectDirectory) (*Profile, error) {
	profile := &Profile{
		PrincipalID: p.id,
		Roles:       p.Roles(),
	}
	if !p.HasRole(RoleProjectManager) {
		return profile, nil
	}

	project, err := directory.ProjectManagedBy(ctx, p.id)
	switch {
	case apperrors.Is(err, ErrProjectNotFound):
		return profile, nil
	case err != nil:
		return nil, err
	}
	profile.Project = project
	return profile, nil
}
