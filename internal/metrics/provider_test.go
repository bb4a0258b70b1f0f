package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Run("Success_WithNamespace", func(t *testing.T) {
		provider, err := NewProvider("linkcodec")

		require.NoError(t, err)
		assert.Equal(t, "linkcodec", provider.Namespace())
		assert.NotNil(t, provider.MeterProvider())
		assert.NotNil(t, provider.Handler())
	})

	t.Run("Success_IsolatedRegistries", func(t *testing.T) {
		first, err := NewProvider("iso")
		require.NoError(t, err)
		second, err := NewProvider("iso")
		require.NoError(t, err)

		bm, err := NewBusinessMetrics(first.MeterProvider(), "iso")
		require.NoError(t, err)
		bm.RecordOperation(context.Background(), "codec", "encode", "success")

		assert.Contains(t, scrape(t, first), "iso_operations_total")
		assert.NotContains(t, scrape(t, second), "iso_operations_total")
	})
}

func TestNewProvider_DurationBuckets(t *testing.T) {
	provider, err := NewProvider("buckets")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "buckets")
	require.NoError(t, err)
	bm.RecordDuration(context.Background(), "codec", "decode", 30*time.Microsecond, "success")

	output := scrape(t, provider)
	assert.Regexp(t, `buckets_operation_duration_seconds_bucket\{[^}]*le="0.0001"[^}]*\} 1`, output)
	assert.NotContains(t, output, "otel_scope_name")
}

func TestProvider_Shutdown(t *testing.T) {
	t.Run("Success_ShutdownProvider", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)

		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	t.Run("Success_ShutdownNilProvider", func(t *testing.T) {
		provider := &Provider{}

		assert.NoError(t, provider.Shutdown(context.Background()))
	})
}
