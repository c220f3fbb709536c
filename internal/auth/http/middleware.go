package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/custody/internal/auth/domain"
	authUseCase "github.com/allisson/custody/internal/auth/usecase"
	"github.com/allisson/custody/internal/httputil"
)

const bearerPrefix = "bearer "

// AuthenticationMiddleware authenticates the Bearer token in the Authorization header.
//
// The prefix is matched case-insensitively. On success the *Principal is stored in the request
// context and is available to handlers through GetPrincipal. A missing, malformed or rejected
// token aborts the request with 401.
//
// Usage:
//
//	v1 := router.Group("/v1")
//	v1.Use(AuthenticationMiddleware(authUseCase, logger))
func AuthenticationMiddleware(authUC authUseCase.AuthUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			logger.Debug("authentication failed: missing or malformed authorization header")
			httputil.HandleErrorGin(c, authDomain.ErrAuthFailure, logger)
			c.Abort()
			return
		}

		principal, err := authUC.Authenticate(c.Request.Context(), token)
		if err != nil {
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))

		logger.Debug("authentication successful",
			slog.String("principal_id", principal.ID().String()),
			slog.Any("roles", principal.Roles()))

		c.Next()
	}
}

// RequireRole admits principals holding at least one of roles.
//
// Must run after AuthenticationMiddleware. Without a principal the request is rejected with 401,
// without a matching role with 403.
func RequireRole(logger *slog.Logger, roles ...authDomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok {
			logger.Error("role gate: no authenticated principal in context")
			httputil.HandleErrorGin(c, authDomain.ErrAuthFailure, logger)
			c.Abort()
			return
		}

		if !principal.HasAnyRole(roles...) {
			logger.Debug("authorization failed: missing role",
				slog.String("principal_id", principal.ID().String()),
				slog.Any("required", roles))
			httputil.HandleErrorGin(c, authDomain.ErrMissingRole, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
