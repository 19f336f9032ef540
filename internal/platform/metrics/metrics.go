package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds application-level Prometheus metrics. Module-specific metrics
// (registration resolution) live next to their module.
type Metrics struct {
	VotersCreated    prometheus.Counter
	LoginEmailsSent  prometheus.Counter
	LoginEmailFailed prometheus.Counter
	LoginsCompleted  prometheus.Counter
}

// New creates and registers all application metrics.
func New() *Metrics {
	return &Metrics{
		VotersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "votercheck_voters_created_total",
			Help: "Total number of voter profiles created",
		}),
		LoginEmailsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "votercheck_login_emails_sent_total",
			Help: "Total number of login link emails sent",
		}),
		LoginEmailFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "votercheck_login_emails_failed_total",
			Help: "Total number of login link emails that could not be sent",
		}),
		LoginsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "votercheck_logins_completed_total",
			Help: "Total number of login tokens successfully consumed",
		}),
	}
}

// IncVotersCreated increments the voters created counter by 1.
func (m *Metrics) IncVotersCreated() {
	if m != nil {
		m.VotersCreated.Inc()
	}
}

// IncLoginEmailsSent increments the sent counter by 1.
func (m *Metrics) IncLoginEmailsSent() {
	if m != nil {
		m.LoginEmailsSent.Inc()
	}
}

// IncLoginEmailFailed increments the failed counter by 1.
func (m *Metrics) IncLoginEmailFailed() {
	if m != nil {
		m.LoginEmailFailed.Inc()
	}
}

// IncLoginsCompleted increments the completed logins counter by 1.
func (m *Metrics) IncLoginsCompleted() {
	if m != nil {
		m.LoginsCompleted.Inc()
	}
}
