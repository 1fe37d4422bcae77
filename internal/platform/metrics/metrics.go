package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	GeoResultOK       = "ok"
	GeoResultCached   = "cached"
	GeoResultFallback = "fallback"

	RefreshSuccess = "success"
	RefreshError   = "error"
)

// Metrics holds the service collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	conversions  *prometheus.CounterVec
	geoLookups   *prometheus.CounterVec
	refreshes    *prometheus.CounterVec
	currencies   prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fx_http_requests_total",
				Help: "Total number of handled HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fx_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		conversions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fx_conversions_total",
				Help: "Successful conversions by currency pair",
			},
			[]string{"from", "to"},
		),
		geoLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fx_geolocation_lookups_total",
				Help: "Country lookups by outcome",
			},
			[]string{"result"},
		),
		refreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fx_rates_refresh_total",
				Help: "Rate snapshot loads by outcome",
			},
			[]string{"status"},
		),
		currencies: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "fx_rates_currencies",
				Help: "Number of currencies in the active snapshot",
			},
		),
	}
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTP(method, route string, status int, took time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(took.Seconds())
}

func (m *Metrics) IncConversion(from, to string) {
	if m == nil {
		return
	}
	m.conversions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) IncGeoLookup(result string) {
	if m == nil {
		return
	}
	m.geoLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) IncRefresh(status string) {
	if m == nil {
		return
	}
	m.refreshes.WithLabelValues(status).Inc()
}

func (m *Metrics) SetCurrencies(n int) {
	if m == nil {
		return
	}
	m.currencies.Set(float64(n))
}
