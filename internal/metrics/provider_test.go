package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Run("Success_CreateProviderWithNamespace", func(t *testing.T) {
		provider, err := NewProvider("custody")

		require.NoError(t, err)
		assert.NotNil(t, provider.meterProvider)
		assert.NotNil(t, provider.exporter)
		assert.NotNil(t, provider.registry)
		assert.NotNil(t, provider.Handler())
		assert.NotNil(t, provider.MeterProvider())
	})

	t.Run("Success_WithRuntimeCollectors", func(t *testing.T) {
		provider, err := NewProvider("custody", WithRuntimeCollectors())
		require.NoError(t, err)

		assert.Contains(t, scrape(t, provider), "go_goroutines")
	})

	t.Run("Success_TargetInfoCarriesServiceName", func(t *testing.T) {
		provider, err := NewProvider("custody")
		require.NoError(t, err)

		bm, err := NewBusinessMetrics(provider.MeterProvider(), "custody")
		require.NoError(t, err)
		bm.RecordOperation(context.Background(), "account", "account_get", "success")

		assert.Contains(t, scrape(t, provider), `service_name="custody"`)
	})

	t.Run("Error_DuplicateCollectors", func(t *testing.T) {
		_, err := NewProvider("custody", WithRuntimeCollectors(), WithRuntimeCollectors())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to configure metrics registry")
	})
}

func TestProvider_Shutdown(t *testing.T) {
	t.Run("Success_ShutdownProvider", func(t *testing.T) {
		provider, err := NewProvider("custody")
		require.NoError(t, err)

		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	t.Run("Success_ShutdownNilProvider", func(t *testing.T) {
		provider := &Provider{meterProvider: nil}

		assert.NoError(t, provider.Shutdown(context.Background()))
	})
}
