package metrics

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("messaging")
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	assert.NotNil(t, provider.MeterProvider())
	assert.NotNil(t, provider.Handler())
}

func TestBusinessMetricsRecordsWithoutError(t *testing.T) {
	provider, err := NewProvider("messaging")
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	business, err := NewBusinessMetrics(provider.MeterProvider(), "messaging")
	require.NoError(t, err)

	ctx := context.Background()
	business.RecordOperation(ctx, "auth", "login", "success")
	business.RecordDuration(ctx, "auth", "login", 25*time.Millisecond, "success")

	// The exporter should serve the recorded metrics.
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/metrics", nil)
	provider.Handler().ServeHTTP(recorder, request)

	assert.Equal(t, 200, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "messaging_operations_total")
}

func TestNoOpBusinessMetrics(t *testing.T) {
	business := NewNoOpBusinessMetrics()

	// Must not panic.
	business.RecordOperation(context.Background(), "auth", "login", "success")
	business.RecordDuration(context.Background(), "auth", "login", time.Second, "error")
}
