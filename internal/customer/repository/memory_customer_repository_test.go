package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/custody/internal/auth/domain"
	authTesting "github.com/allisson/custody/internal/auth/testing"
	"github.com/allisson/custody/internal/customer/domain"
)

// widened overrides Visit on an embedded permission. The accessor only takes the concrete
// permission, so the override is never consulted.
type widened struct {
	*authDomain.ProjectPermission
}

func (widened) Visit(v authDomain.PermissionVisitor) error {
	v.AllProjects()
	return nil
}

func seedCustomers(t *testing.T, repo *MemoryCustomerRepository, projectID uuid.UUID, names ...string) {
	t.Helper()
	base := time.Now().UTC()
	for i, name := range names {
		customer, err := domain.NewCustomer(&domain.CreateCustomerInput{
			ProjectID: projectID,
			Name:      name,
			Email:     name + "@example.com",
		})
		require.NoError(t, err)
		customer.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.Create(context.Background(), customer))
	}
}

func TestMemoryCustomerRepository_List(t *testing.T) {
	ctx := context.Background()
	p7 := uuid.Must(uuid.NewV7())
	p8 := uuid.Must(uuid.NewV7())
	repo := NewMemoryCustomerRepository()
	seedCustomers(t, repo, p7, "ada", "grace", "alan")
	seedCustomers(t, repo, p8, "edsger")

	names := func(customers []*domain.Customer) []string {
		return lo.Map(customers, func(c *domain.Customer, _ int) string { return c.Name })
	}

	t.Run("Success_SingleProjectFilters", func(t *testing.T) {
		customers, err := repo.List(ctx, authTesting.SingleProject(t, p7), domain.ListCustomersParams{Limit: 50})

		require.NoError(t, err)
		assert.Equal(t, []string{"alan", "grace", "ada"}, names(customers))
	})

	t.Run("Success_AllProjectsSeesEverything", func(t *testing.T) {
		customers, err := repo.List(ctx, authTesting.AllProjects(t), domain.ListCustomersParams{Limit: 50})

		require.NoError(t, err)
		assert.Len(t, customers, 4)
	})

	t.Run("Success_NameAndPagination", func(t *testing.T) {
		customers, err := repo.List(ctx, authTesting.SingleProject(t, p7), domain.ListCustomersParams{
			Offset:       1,
			Limit:        1,
			NameContains: "A",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"grace"}, names(customers))
	})

	t.Run("Success_OffsetPastEnd", func(t *testing.T) {
		customers, err := repo.List(ctx, authTesting.AllProjects(t), domain.ListCustomersParams{Offset: 10, Limit: 5})

		require.NoError(t, err)
		assert.Empty(t, customers)
	})

	t.Run("Error_NilPermission", func(t *testing.T) {
		_, err := repo.List(ctx, nil, domain.ListCustomersParams{Limit: 50})

		assert.ErrorIs(t, err, authDomain.ErrNoProjectPermission)
	})

	t.Run("Error_UnderivedPermissionSeesNothing", func(t *testing.T) {
		customers, err := repo.List(ctx, &authDomain.ProjectPermission{}, domain.ListCustomersParams{Limit: 50})

		assert.ErrorIs(t, err, authDomain.ErrNoProjectPermission)
		assert.Nil(t, customers)
	})

	t.Run("Success_WrappedPermissionKeepsDerivedScope", func(t *testing.T) {
		wrapped := widened{ProjectPermission: authTesting.SingleProject(t, p7)}

		customers, err := repo.List(ctx, wrapped.ProjectPermission, domain.ListCustomersParams{Limit: 50})

		require.NoError(t, err)
		assert.Equal(t, []string{"alan", "grace", "ada"}, names(customers))

		customers, err = repo.List(ctx, widened{}.ProjectPermission, domain.ListCustomersParams{Limit: 50})
		assert.ErrorIs(t, err, authDomain.ErrNoProjectPermission)
		assert.Nil(t, customers)
	})
}

func TestMemoryCustomerRepository_CreateDuplicate(t *testing.T) {
	repo := NewMemoryCustomerRepository()
	projectID := uuid.Must(uuid.NewV7())
	seedCustomers(t, repo, projectID, "ada")

	customer, err := domain.NewCustomer(&domain.CreateCustomerInput{
		ProjectID: projectID,
		Name:      "Ada Again",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Create(context.Background(), customer), domain.ErrCustomerAlreadyExists)
}
