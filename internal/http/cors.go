package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// createCORSMiddleware admits browser calls from the configured back-office origins.
// It returns nil when CORS is off or the origin list is empty after parsing.
// A "*" entry is dropped because the middleware allows credentials.
func createCORSMiddleware(enabled bool, allowOriginsStr string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := parseOrigins(allowOriginsStr)
	if lo.Contains(origins, "*") {
		logger.Warn("ignoring wildcard CORS origin")
		origins = lo.Without(origins, "*")
	}
	if len(origins) == 0 {
		logger.Warn("CORS enabled without usable origins; not applied")
		return nil
	}

	logger.Info("CORS enabled", slog.Any("origins", origins))

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"X-Request-Id", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// parseOrigins splits a comma-separated origin list, dropping blanks and duplicates.
func parseOrigins(originsStr string) []string {
	if originsStr == "" {
		return nil
	}

	trimmed := lo.Map(strings.Split(originsStr, ","), func(origin string, _ int) string {
		return strings.TrimSpace(origin)
	})
	return lo.Uniq(lo.Compact(trimmed))
}
