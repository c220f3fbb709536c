package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) ProjectManagedBy(ctx context.Context, managerID PrincipalID) (*Project, error) {
	args := m.Called(ctx, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Project), args.Error(1)
}

// scopeRecorder captures which variant a permission visited.
type scopeRecorder struct {
	all     int
	project []uuid.UUID
}

func (r *scopeRecorder) AllProjects() {
	r.all++
}

func (r *scopeRecorder) SingleProject(projectID uuid.UUID) {
	r.project = append(r.project, projectID)
}

func TestPrincipal_ProjectPermission(t *testing.T) {
	ctx := context.Background()
	p7 := uuid.Must(uuid.NewV7())

	tests := []struct {
		name        string
		roles       []string
		directory   func(d *mockDirectory)
		expectAll   bool
		expectScope uuid.UUID
		expectErr   error
	}{
		{
			name:      "admin and projectManager yields all projects",
			roles:     []string{"admin", "projectManager"},
			expectAll: true,
		},
		{
			name:      "admin alone yields all projects",
			roles:     []string{"admin"},
			expectAll: true,
		},
		{
			name:  "projectManager yields managed project",
			roles: []string{"projectManager"},
			directory: func(d *mockDirectory) {
				d.On("ProjectManagedBy", ctx, mock.Anything).Return(&Project{ID: p7}, nil).Once()
			},
			expectScope: p7,
		},
		{
			name:  "projectManager without a project is not found",
			roles: []string{"projectManager"},
			directory: func(d *mockDirectory) {
				d.On("ProjectManagedBy", ctx, mock.Anything).Return(nil, ErrProjectNotFound).Once()
			},
			expectErr: ErrProjectNotFound,
		},
		{
			name:  "projectManager with a nil project id is rejected",
			roles: []string{"projectManager"},
			directory: func(d *mockDirectory) {
				d.On("ProjectManagedBy", ctx, mock.Anything).Return(&Project{}, nil).Once()
			},
			expectErr: ErrInvalidProject,
		},
		{
			name:      "no roles is absence",
			roles:     nil,
			expectErr: ErrNoProjectPermission,
		},
		{
			name:      "accountant is absence",
			roles:     []string{"accountant"},
			expectErr: ErrNoProjectPermission,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directory := &mockDirectory{}
			if tt.directory != nil {
				tt.directory(directory)
			}
			principal := authenticateWith(t, uuid.Must(uuid.NewV7()), tt.roles...)

			perm, err := principal.ProjectPermission(ctx, directory)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, perm)
				directory.AssertExpectations(t)
				return
			}

			require.NoError(t, err)
			recorder := &scopeRecorder{}
			require.NoError(t, perm.Visit(recorder))
			if tt.expectAll {
				assert.Equal(t, 1, recorder.all)
				assert.Empty(t, recorder.project)
				assert.Equal(t, "all", perm.String())
			} else {
				assert.Zero(t, recorder.all)
				assert.Equal(t, []uuid.UUID{tt.expectScope}, recorder.project)
				assert.Equal(t, "project:"+tt.expectScope.String(), perm.String())
			}
			directory.AssertExpectations(t)
		})
	}
}

func TestPrincipal_ProjectPermission_DirectoryKeyedByPrincipal(t *testing.T) {
	ctx := context.Background()
	subject := uuid.Must(uuid.NewV7())
	principal := authenticateWith(t, subject, "projectManager")

	directory := &mockDirectory{}
	directory.On("ProjectManagedBy", ctx, mock.MatchedBy(func(id PrincipalID) bool {
		return id.UUID() == subject
	})).Return(&Project{ID: uuid.Must(uuid.NewV7())}, nil).Once()

	_, err := principal.ProjectPermission(ctx, directory)

	require.NoError(t, err)
	directory.AssertExpectations(t)
}

func TestProjectPermission_Allows(t *testing.T) {
	p7 := uuid.Must(uuid.NewV7())
	other := uuid.Must(uuid.NewV7())

	all := &ProjectPermission{kind: permissionAll}
	scoped, err := newSingleProject(p7)
	require.NoError(t, err)

	assert.True(t, all.Allows(p7))
	assert.True(t, all.Allows(other))
	assert.True(t, scoped.Allows(p7))
	assert.False(t, scoped.Allows(other))
	assert.False(t, scoped.Allows(uuid.Nil))

	_, err = newSingleProject(uuid.Nil)
	assert.True(t, errors.Is(err, ErrInvalidProject))
}

func TestProjectPermission_UnderivedGrantsNothing(t *testing.T) {
	p7 := uuid.Must(uuid.NewV7())

	tests := []struct {
		name string
		perm *ProjectPermission
	}{
		{name: "nil", perm: nil},
		{name: "zero value", perm: &ProjectPermission{}},
		{name: "single project without id", perm: &ProjectPermission{kind: permissionSingle}},
		{name: "unknown kind", perm: &ProjectPermission{kind: permissionKind(99), projectID: p7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &scopeRecorder{}

			err := tt.perm.Visit(recorder)

			assert.ErrorIs(t, err, ErrNoProjectPermission)
			assert.Zero(t, recorder.all)
			assert.Empty(t, recorder.project)
			assert.False(t, tt.perm.Allows(p7))
			assert.Equal(t, "none", tt.perm.String())
		})
	}
}

func TestNewProject(t *testing.T) {
	manager := uuid.Must(uuid.NewV7())

	project, err := NewProject("  Apollo ", manager)
	require.NoError(t, err)
	assert.Equal(t, "Apollo", project.Name)
	assert.Equal(t, manager, project.ManagerID)
	assert.NotEqual(t, uuid.Nil, project.ID)

	_, err = NewProject("", manager)
	assert.ErrorIs(t, err, ErrInvalidProject)

	_, err = NewProject("Apollo", uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidProject)
}
