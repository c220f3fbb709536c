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

func TestPrincipal_Profile(t *testing.T) {
	ctx := context.Background()
	subject := uuid.Must(uuid.NewV7())

	t.Run("Success_ManagerSeesOwnProject", func(t *testing.T) {
		project := &Project{ID: uuid.Must(uuid.NewV7()), Name: "P7", ManagerID: subject}
		directory := &mockDirectory{}
		directory.On("ProjectManagedBy", ctx, mock.MatchedBy(func(id PrincipalID) bool {
			return id.UUID() == subject
		})).Return(project, nil).Once()

		profile, err := authenticateWith(t, subject, "projectManager", "accountant").Profile(ctx, directory)

		require.NoError(t, err)
		assert.Equal(t, subject, profile.PrincipalID.UUID())
		assert.Equal(t, []Role{RoleAccountant, RoleProjectManager}, profile.Roles)
		assert.Equal(t, project, profile.Project)
		directory.AssertExpectations(t)
	})

	t.Run("Success_ManagerWithoutProject", func(t *testing.T) {
		directory := &mockDirectory{}
		directory.On("ProjectManagedBy", ctx, mock.Anything).Return(nil, ErrProjectNotFound).Once()

		profile, err := authenticateWith(t, subject, "projectManager").Profile(ctx, directory)

		require.NoError(t, err)
		assert.Nil(t, profile.Project)
	})

	t.Run("Success_OtherRolesSkipDirectory", func(t *testing.T) {
		directory := &mockDirectory{}

		profile, err := authenticateWith(t, subject, "admin").Profile(ctx, directory)

		require.NoError(t, err)
		assert.Equal(t, []Role{RoleAdmin}, profile.Roles)
		assert.Nil(t, profile.Project)
		directory.AssertNotCalled(t, "ProjectManagedBy", mock.Anything, mock.Anything)
	})

	t.Run("Error_DirectoryFailure", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		directory := &mockDirectory{}
		directory.On("ProjectManagedBy", ctx, mock.Anything).Return(nil, dbErr).Once()

		profile, err := authenticateWith(t, subject, "projectManager").Profile(ctx, directory)

		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, profile)
	})
}
