package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountersAndGauge(t *testing.T) {
	m := New()

	m.IncConversion("MYR", "USD")
	m.IncConversion("MYR", "USD")
	m.IncGeoLookup(GeoResultFallback)
	m.IncRefresh(RefreshSuccess)
	m.SetCurrencies(31)
	m.ObserveHTTP(http.MethodGet, "/api/rates", http.StatusOK, 5*time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.conversions.WithLabelValues("MYR", "USD")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.geoLookups.WithLabelValues(GeoResultFallback)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.refreshes.WithLabelValues(RefreshSuccess)))
	require.Equal(t, 31.0, testutil.ToFloat64(m.currencies))
	require.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/rates", "200")))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	// Two instances must not collide on registration.
	a := New()
	b := New()
	a.IncRefresh(RefreshError)

	require.Equal(t, 1.0, testutil.ToFloat64(a.refreshes.WithLabelValues(RefreshError)))
	require.Equal(t, 0.0, testutil.ToFloat64(b.refreshes.WithLabelValues(RefreshError)))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.IncConversion("A", "B")
		m.IncGeoLookup(GeoResultOK)
		m.IncRefresh(RefreshSuccess)
		m.SetCurrencies(1)
		m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Second)
	})
}

func TestMetrics_HandlerExposesCollectors(t *testing.T) {
	m := New()
	m.SetCurrencies(3)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "fx_rates_currencies 3")
}
