package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeInvalid  = "invalid_amount"
	OutcomeIdentity = "identity"
	OutcomeStale    = "stale"
)

// Metrics holds the converter's Prometheus collectors.
type Metrics struct {
	catalogLoads     *prometheus.CounterVec
	conversions      *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		catalogLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "currency_converter",
			Name:      "catalog_loads_total",
			Help:      "Currency list loads by outcome.",
		}, []string{"outcome"}),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "currency_converter",
			Name:      "conversions_total",
			Help:      "Conversions by outcome.",
		}, []string{"outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "currency_converter",
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of exchange-rate API requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint", "status"}),
	}
	reg.MustRegister(m.catalogLoads, m.conversions, m.upstreamDuration)
	return m
}

// CatalogLoaded counts a finished currency list load.
func (m *Metrics) CatalogLoaded(outcome string) {
	m.catalogLoads.WithLabelValues(outcome).Inc()
}

// ConversionFinished counts a finished conversion.
func (m *Metrics) ConversionFinished(outcome string) {
	m.conversions.WithLabelValues(outcome).Inc()
}

// ObserveUpstream records one upstream request. status is 0 when no
// response was received.
func (m *Metrics) ObserveUpstream(endpoint string, status int, elapsed time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.upstreamDuration.WithLabelValues(endpoint, label).Observe(elapsed.Seconds())
}
