package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/custody/internal/auth/domain"
	"github.com/allisson/custody/internal/auth/http/dto"
	authUseCase "github.com/allisson/custody/internal/auth/usecase"
	"github.com/allisson/custody/internal/httputil"
)

// ProfileHandler serves the caller's own data.
type ProfileHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(authUseCase authUseCase.AuthUseCase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// GetHandler returns the authenticated principal's roles and managed project.
// GET /v1/me
func (h *ProfileHandler) GetHandler(c *gin.Context) {
	principal, ok := GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrAuthFailure, h.logger)
		return
	}

	profile, err := h.authUseCase.Profile(c.Request.Context(), principal)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProfileToResponse(profile))
}
