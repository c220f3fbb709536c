package dto

import (
	"time"

	"github.com/allisson/custody/internal/customer/domain"
)

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ListCustomersResponse represents a paginated list of customers.
type ListCustomersResponse struct {
	Data []CustomerResponse `json:"data"`
}

// MapCustomerToResponse converts a customer to an API response.
func MapCustomerToResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID.String(),
		ProjectID: customer.ProjectID.String(),
		Name:      customer.Name,
		Email:     customer.Email,
		CreatedAt: customer.CreatedAt,
	}
}

// MapCustomersToListResponse converts customers to a list response.
func MapCustomersToListResponse(customers []*domain.Customer) ListCustomersResponse {
	data := make([]CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		data = append(data, MapCustomerToResponse(customer))
	}
	return ListCustomersResponse{Data: data}
}
