// Package http provides HTTP handlers for customer reads and registration.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/custody/internal/auth/domain"
	authHTTP "github.com/allisson/custody/internal/auth/http"
	"github.com/allisson/custody/internal/customer/domain"
	"github.com/allisson/custody/internal/customer/http/dto"
	customerUseCase "github.com/allisson/custody/internal/customer/usecase"
	"github.com/allisson/custody/internal/httputil"
	customValidation "github.com/allisson/custody/internal/validation"
)

// CustomerHandler handles HTTP requests for customer operations.
type CustomerHandler struct {
	customerUseCase customerUseCase.CustomerUseCase
	logger          *slog.Logger
}

// NewCustomerHandler creates a new customer handler with required dependencies.
func NewCustomerHandler(customerUseCase customerUseCase.CustomerUseCase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerUseCase: customerUseCase,
		logger:          logger,
	}
}

// ListHandler returns the customers visible to the caller.
// GET /v1/customers?offset=0&limit=50&name=ada
// Returns 403 when the caller has no project permission.
func (h *CustomerHandler) ListHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrAuthFailure, h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	customers, err := h.customerUseCase.List(c.Request.Context(), principal, domain.ListCustomersParams{
		Offset:       offset,
		Limit:        limit,
		NameContains: c.Query("name"),
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCustomersToListResponse(customers))
}

// CreateHandler registers a customer in a permitted project.
// POST /v1/customers
func (h *CustomerHandler) CreateHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrAuthFailure, h.logger)
		return
	}

	var req dto.CreateCustomerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	customer, err := h.customerUseCase.Create(c.Request.Context(), principal, req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapCustomerToResponse(customer))
}
