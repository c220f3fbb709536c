package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/custody/internal/errors"
)

func TestNewCustomer(t *testing.T) {
	projectID := uuid.Must(uuid.NewV7())

	t.Run("Success_NormalizesFields", func(t *testing.T) {
		customer, err := NewCustomer(&CreateCustomerInput{
			ProjectID: projectID,
			Name:      "  Ada Lovelace ",
			Email:     "Ada@Example.COM",
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, customer.ID)
		assert.Equal(t, projectID, customer.ProjectID)
		assert.Equal(t, "Ada Lovelace", customer.Name)
		assert.Equal(t, "ada@example.com", customer.Email)
		assert.False(t, customer.CreatedAt.IsZero())
	})

	tests := []struct {
		name  string
		input CreateCustomerInput
	}{
		{"Error_MissingProject", CreateCustomerInput{Name: "Ada", Email: "ada@example.com"}},
		{"Error_BlankName", CreateCustomerInput{ProjectID: projectID, Name: " ", Email: "ada@example.com"}},
		{"Error_BadEmail", CreateCustomerInput{ProjectID: projectID, Name: "Ada", Email: "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCustomer(&tt.input)

			assert.ErrorIs(t, err, ErrInvalidCustomer)
			assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		})
	}
}
