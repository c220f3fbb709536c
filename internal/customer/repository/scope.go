// Package repository implements the customer accessor. Every read takes a project permission and
// derives its project filter from it; there is no way to pass a raw project id or role.
package repository

import (
	"strings"

	"github.com/google/uuid"

	authDomain "github.com/allisson/custody/internal/auth/domain"
)

// projectScope is the filter a permission translates into.
type projectScope struct {
	restricted bool
	projectID  uuid.UUID
}

func (s *projectScope) AllProjects() {
	s.restricted = false
}

func (s *projectScope) SingleProject(projectID uuid.UUID) {
	s.restricted = true
	s.projectID = projectID
}

// scopeOf translates perm into a filter. A nil or underived permission is a denial.
func scopeOf(perm *authDomain.ProjectPermission) (projectScope, error) {
	var scope projectScope
	if err := perm.Visit(&scope); err != nil {
		return projectScope{}, err
	}
	return scope, nil
}

// likePattern builds a substring LIKE pattern with the wildcard characters in s escaped.
func likePattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(s) + "%"
}
