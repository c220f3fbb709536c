// Package http provides HTTP handlers for account reads, withdrawals and account opening.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/custody/internal/account/http/dto"
	accountUseCase "github.com/allisson/custody/internal/account/usecase"
	"github.com/allisson/custody/internal/httputil"
	customValidation "github.com/allisson/custody/internal/validation"
)

// AccountHandler handles HTTP requests for account operations.
type AccountHandler struct {
	accountUseCase accountUseCase.AccountUseCase
	logger         *slog.Logger
}

// NewAccountHandler creates a new account handler with required dependencies.
func NewAccountHandler(accountUseCase accountUseCase.AccountUseCase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

// GetHandler returns an account snapshot.
// GET /v1/accounts/:id
func (h *AccountHandler) GetHandler(c *gin.Context) {
	view, err := h.accountUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAccountToResponse(view))
}

// WithdrawHandler debits an account under its lock.
// POST /v1/accounts/:id/withdraw
// Returns 422 on insufficient funds and 423 when another request holds the account.
func (h *AccountHandler) WithdrawHandler(c *gin.Context) {
	var req dto.WithdrawRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	view, err := h.accountUseCase.Withdraw(c.Request.Context(), c.Param("id"), req.AmountDecimal())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAccountToResponse(view))
}

// OpenHandler opens a new account.
// POST /v1/accounts
func (h *AccountHandler) OpenHandler(c *gin.Context) {
	var req dto.OpenAccountRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	view, err := h.accountUseCase.Open(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapAccountToResponse(view))
}

// ListEntriesHandler returns ledger entries, newest first.
// GET /v1/accounts/:id/entries?offset=0&limit=50
func (h *AccountHandler) ListEntriesHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	entries, err := h.accountUseCase.ListEntries(c.Request.Context(), c.Param("id"), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEntriesToListResponse(entries))
}
