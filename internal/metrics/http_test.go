package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success_RecordRoutePattern", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, provider.Shutdown(context.Background()))
		}()

		router := gin.New()
		router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "test_app"))
		router.GET("/v1/accounts/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
		})
		router.POST("/v1/accounts/:id/withdraw", func(c *gin.Context) {
			c.JSON(http.StatusLocked, gin.H{"error": "locked"})
		})

		for _, id := range []string{"A1", "A2", "A3"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/accounts/"+id, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/accounts/A1/withdraw", nil))
		assert.Equal(t, http.StatusLocked, w.Code)

		output := scrape(t, provider)
		assertBizMetricLine(
			t,
			output,
			`test_app_http_requests_total`,
			`method="GET".*path="/v1/accounts/:id".*status_code="200"`,
			`3`,
		)
		assertBizMetricLine(
			t,
			output,
			`test_app_http_requests_total`,
			`method="POST".*path="/v1/accounts/:id/withdraw".*status_code="423"`,
			`1`,
		)
		assertBizMetricLine(t, output, `test_app_http_requests_in_flight`, ``, `0`)
	})

	t.Run("Success_UnmatchedRoute", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)

		router := gin.New()
		router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "test_app"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)

		assertBizMetricLine(
			t,
			scrape(t, provider),
			`test_app_http_requests_total`,
			`path="unknown".*status_code="404"`,
			`1`,
		)
	})
}

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "RoutePattern", input: "/v1/accounts/:id", expected: "/v1/accounts/:id"},
		{name: "EmptyPath", input: "", expected: "unknown"},
		{name: "RootPath", input: "/", expected: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizePath(tt.input))
		})
	}
}
