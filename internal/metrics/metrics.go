package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for signups.
type Metrics struct {
	// Signup outcomes: accepted, rejected, failed
	Outcomes *prometheus.CounterVec

	// Rejections by error code
	Rejections *prometheus.CounterVec

	Duration prometheus.Histogram
}

// New creates the signup metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Outcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "signup_outcomes_total",
			Help: "Total signup attempts by outcome",
		}, []string{"outcome"}),

		Rejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "signup_rejections_total",
			Help: "Total rejected signups by error code",
		}, []string{"code"}),

		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "signup_duration_seconds",
			Help:    "Duration of a signup including storage round trips",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// ObserveSignup records one signup. code is only meaningful for rejections.
func (m *Metrics) ObserveSignup(outcome string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.Outcomes.WithLabelValues(outcome).Inc()
	if outcome == "rejected" {
		m.Rejections.WithLabelValues(strconv.Itoa(code)).Inc()
	}
	m.Duration.Observe(d.Seconds())
}
