package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/custody/internal/auth/domain"
	authTesting "github.com/allisson/custody/internal/auth/testing"
)

func TestScopeOf(t *testing.T) {
	p7 := uuid.Must(uuid.NewV7())

	t.Run("Success_AllProjectsUnrestricted", func(t *testing.T) {
		scope, err := scopeOf(authTesting.AllProjects(t))

		require.NoError(t, err)
		assert.False(t, scope.restricted)
	})

	t.Run("Success_SingleProjectRestricted", func(t *testing.T) {
		scope, err := scopeOf(authTesting.SingleProject(t, p7))

		require.NoError(t, err)
		assert.True(t, scope.restricted)
		assert.Equal(t, p7, scope.projectID)
	})

	t.Run("Error_NilAndZeroDenied", func(t *testing.T) {
		_, err := scopeOf(nil)
		assert.ErrorIs(t, err, authDomain.ErrNoProjectPermission)

		_, err = scopeOf(&authDomain.ProjectPermission{})
		assert.ErrorIs(t, err, authDomain.ErrNoProjectPermission)
	})
}

func TestLikePattern(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "ada", expected: "%ada%"},
		{input: "50%_off", expected: `%50\%\_off%`},
		{input: `a\b`, expected: `%a\\b%`},
		{input: "", expected: "%%"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, likePattern(tt.input))
		})
	}
}
