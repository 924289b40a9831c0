package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("signup")

	require.NoError(t, err)
	assert.NotNil(t, provider.MeterProvider())
	assert.NotNil(t, provider.Handler())
	assert.NotNil(t, provider.registry)
}

func TestProvider_Shutdown(t *testing.T) {
	t.Run("Success_ShutdownProvider", func(t *testing.T) {
		provider, err := NewProvider("signup")
		require.NoError(t, err)

		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	t.Run("Success_ShutdownWithoutMeterProvider", func(t *testing.T) {
		provider := &Provider{}

		assert.NoError(t, provider.Shutdown(context.Background()))
	})
}

func TestProvider_ServiceNameResource(t *testing.T) {
	provider, err := NewProvider("provider_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	counter, err := provider.MeterProvider().Meter("test").Int64Counter("provider_test_events_total")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	output := scrape(t, provider)

	assert.Contains(t, output, `service_name="provider_test"`)
}
