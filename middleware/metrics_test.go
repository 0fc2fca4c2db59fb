package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-pathway/pathway"
)

func TestMetrics_CountsByStatus(t *testing.T) {
	t.Parallel()

	m := NewServiceMetrics(prometheus.NewRegistry())
	svc := Metrics(m)(okService("ok"))

	for i := 0; i < 2; i++ {
		_, err := svc.Call(context.Background(), testRequest())
		require.NoError(t, err)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "200")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.requestsInFlight))
}

func TestMetrics_CountsErrors(t *testing.T) {
	t.Parallel()

	m := NewServiceMetrics(prometheus.NewRegistry())
	svc := Metrics(m)(errService(assert.AnError))

	_, err := svc.Call(context.Background(), testRequest())
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, statusError)))
}

func TestMetrics_InFlightDuringCall(t *testing.T) {
	t.Parallel()

	m := NewServiceMetrics(prometheus.NewRegistry())

	var inFlight float64
	inner := &stubService{ready: true}
	inner.call = func(_ context.Context, _ *pathway.Request) (*pathway.Response, error) {
		inFlight = testutil.ToFloat64(m.requestsInFlight)
		return nil, assert.AnError
	}

	svc := Metrics(m)(inner)
	_, _ = svc.Call(context.Background(), testRequest())

	assert.Equal(t, float64(1), inFlight, "gauge is held for the duration of the call")
	assert.Equal(t, float64(0), testutil.ToFloat64(m.requestsInFlight))
}

func TestNewServiceMetrics_RegistersCollectors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewServiceMetrics(reg)
	svc := Metrics(m)(okService("ok"))

	_, err := svc.Call(context.Background(), testRequest())
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "pathway_service_requests_total")
	assert.Contains(t, names, "pathway_service_request_duration_seconds")
	assert.Contains(t, names, "pathway_service_requests_in_flight")
}
