package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	PermitsProcessed *prometheus.CounterVec
	ProviderErrors   prometheus.Counter
	ResolveSeconds   *prometheus.HistogramVec
	ActiveWorkers    prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		PermitsProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "permit_geocoder_permits_processed_total",
			Help: "Total number of processed permits by outcome (matched, fallback, miss, failure).",
		}, []string{"result"}),
		ProviderErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "permit_geocoder_provider_api_errors_total",
			Help: "Total number of errors received from the fallback geocoding provider API.",
		}),
		ResolveSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "permit_geocoder_resolve_duration_seconds",
			Help:    "Duration of address resolution by source (lookup or fallback provider).",
			Buckets: prometheus.DefBuckets,
		}, []string{"source"}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "permit_geocoder_active_workers",
			Help: "Current number of active workers processing permits.",
		}),
	}
}
