package repository

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"

	authDomain "github.com/allisson/custody/internal/auth/domain"
	"github.com/allisson/custody/internal/customer/domain"
)

// MemoryCustomerRepository keeps customers in process memory. It backs the memory driver.
type MemoryCustomerRepository struct {
	mu        sync.RWMutex
	customers []domain.Customer
}

// NewMemoryCustomerRepository creates an empty in-memory customer repository.
func NewMemoryCustomerRepository() *MemoryCustomerRepository {
	return &MemoryCustomerRepository{}
}

// Create stores customer. Emails are unique per project.
func (m *MemoryCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	duplicate := lo.ContainsBy(m.customers, func(c domain.Customer) bool {
		return c.ProjectID == customer.ProjectID && c.Email == customer.Email
	})
	if duplicate {
		return domain.ErrCustomerAlreadyExists
	}

	m.customers = append(m.customers, *customer)
	return nil
}

// List returns the customers perm grants, ordered by creation time descending.
func (m *MemoryCustomerRepository) List(
	ctx context.Context,
	perm *authDomain.ProjectPermission,
	params domain.ListCustomersParams,
) ([]*domain.Customer, error) {
	scope, err := scopeOf(perm)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToLower(params.NameContains)
	matched := lo.Filter(m.customers, func(c domain.Customer, _ int) bool {
		if scope.restricted && c.ProjectID != scope.projectID {
			return false
		}
		return strings.Contains(strings.ToLower(c.Name), needle)
	})

	slices.SortFunc(matched, func(a, b domain.Customer) int {
		if n := b.CreatedAt.Compare(a.CreatedAt); n != 0 {
			return n
		}
		return cmp.Compare(b.ID.String(), a.ID.String())
	})

	page := lo.Slice(matched, params.Offset, params.Offset+params.Limit)
	return lo.Map(page, func(c domain.Customer, _ int) *domain.Customer {
		return &c
	}), nil
}
