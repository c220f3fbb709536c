// Package dto holds the JSON shapes of the auth endpoints.
package dto

import (
	"github.com/allisson/custody/internal/auth/domain"
)

// ProjectResponse represents a managed project.
type ProjectResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProfileResponse represents the caller's own data.
type ProfileResponse struct {
	ID      string           `json:"id"`
	Roles   []string         `json:"roles"`
	Project *ProjectResponse `json:"project"`
}

// MapProfileToResponse converts a profile to an API response.
func MapProfileToResponse(profile *domain.Profile) ProfileResponse {
	roles := make([]string, 0, len(profile.Roles))
	for _, role := range profile.Roles {
		roles = append(roles, string(role))
	}

	response := ProfileResponse{
		ID:    profile.PrincipalID.String(),
		Roles: roles,
	}
	if profile.Project != nil {
		response.Project = &ProjectResponse{
			ID:   profile.Project.ID.String(),
			Name: profile.Project.Name,
		}
	}
	return response
}
