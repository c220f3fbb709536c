package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine checks that the Prometheus output contains a business metric
// matching the given name, partial label pattern, and value. Uses regex to handle
// extra OTel scope labels injected by the Prometheus exporter.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(w, req)
	return w.Body.String()
}

func TestNewBusinessMetrics(t *testing.T) {
	t.Run("Success_CreateBusinessMetrics", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)

		businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")

		require.NoError(t, err)
		assert.NotNil(t, businessMetrics)
	})
}

func TestBusinessMetrics_RecordOperation(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	bm.RecordOperation(context.Background(), "account", "account_withdraw", "success")
	bm.RecordOperation(context.Background(), "account", "account_withdraw", "error")
	bm.RecordOperation(context.Background(), "customer", "customer_list", "success")

	output := scrape(t, provider)
	assertBizMetricLine(
		t,
		output,
		`test_app_operations_total`,
		`domain="account".*operation="account_withdraw".*status="error"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`test_app_operations_total`,
		`domain="customer".*operation="customer_list".*status="success"`,
		`1`,
	)
}

func TestBusinessMetrics_RecordDuration(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	bm.RecordDuration(context.Background(), "account", "account_withdraw", 120*time.Millisecond, "success")
	bm.RecordDuration(context.Background(), "account", "account_withdraw", 80*time.Millisecond, "success")
	bm.RecordDuration(context.Background(), "auth", "auth_permission", 5*time.Millisecond, "error")

	output := scrape(t, provider)
	assertBizMetricLine(
		t,
		output,
		`test_app_operation_duration_seconds_count`,
		`domain="account".*operation="account_withdraw".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`test_app_operation_duration_seconds_count`,
		`domain="auth".*operation="auth_permission".*status="error"`,
		`1`,
	)
}

func TestBusinessMetrics_RecordLockEvent(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordLockEvent(ctx, "account", "forgotten_release")
	bm.RecordLockEvent(ctx, "account", "contention")
	bm.RecordLockEvent(ctx, "account", "contention")
	bm.RecordLockEvent(ctx, "account", "contention")

	output := scrape(t, provider)
	assertBizMetricLine(t, output, `test_app_lock_events_total`, `domain="account".*kind="contention"`, `3`)
	assertBizMetricLine(t, output, `test_app_lock_events_total`, `domain="account".*kind="forgotten_release"`, `1`)
}

func TestNewNoOpBusinessMetrics(t *testing.T) {
	noOpMetrics := NewNoOpBusinessMetrics()

	assert.NotNil(t, noOpMetrics)
	assert.IsType(t, &NoOpBusinessMetrics{}, noOpMetrics)

	t.Run("NoOp_RecordDoesNotPanic", func(t *testing.T) {
		ctx := context.Background()
		noOpMetrics.RecordOperation(ctx, "account", "account_get", "success")
		noOpMetrics.RecordDuration(ctx, "account", "account_get", 100*time.Millisecond, "success")
		noOpMetrics.RecordLockEvent(ctx, "account", "stale_capability")
	})
}
