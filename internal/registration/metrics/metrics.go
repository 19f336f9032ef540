package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the registration resolution module.
type Metrics struct {
	// Resolutions by final status code
	ResolutionsTotal *prometheus.CounterVec

	// External authority call latency
	AuthorityLatency prometheus.Histogram

	// Resolutions answered from the stored status without a lookup
	CacheServed prometheus.Counter
}

// New creates and registers all registration metrics.
func New() *Metrics {
	return &Metrics{
		ResolutionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "votercheck_registration_resolutions_total",
			Help: "Total registration resolutions by resulting status code",
		}, []string{"code"}),

		AuthorityLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "votercheck_registration_authority_duration_seconds",
			Help:    "Duration of external registration authority lookups",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		CacheServed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "votercheck_registration_cache_served_total",
			Help: "Resolutions served from the stored status without a fresh lookup",
		}),
	}
}

// IncResolution records a completed resolution by status code.
func (m *Metrics) IncResolution(code string) {
	if m != nil {
		m.ResolutionsTotal.WithLabelValues(code).Inc()
	}
}

// ObserveAuthorityLatency records the duration of one authority lookup.
func (m *Metrics) ObserveAuthorityLatency(d time.Duration) {
	if m != nil {
		m.AuthorityLatency.Observe(d.Seconds())
	}
}

// IncCacheServed records a resolution answered from cache.
func (m *Metrics) IncCacheServed() {
	if m != nil {
		m.CacheServed.Inc()
	}
}
