// Package dto provides data transfer objects for customer HTTP requests and responses.
package dto

import (
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/allisson/custody/internal/customer/domain"
	customValidation "github.com/allisson/custody/internal/validation"
)

// CreateCustomerRequest contains the parameters for registering a customer.
type CreateCustomerRequest struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// Validate checks if the create customer request is valid.
func (r *CreateCustomerRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ProjectID,
			validation.Required,
			customValidation.UUID,
		),
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
			validation.Length(3, 255),
		),
	)
}

// ToDomain converts the validated request.
func (r *CreateCustomerRequest) ToDomain() *domain.CreateCustomerInput {
	return &domain.CreateCustomerInput{
		ProjectID: uuid.MustParse(r.ProjectID),
		Name:      r.Name,
		Email:     r.Email,
	}
}
