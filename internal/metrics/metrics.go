package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cinescene"

// Tier attempt outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeSkipped = "skipped"
	OutcomeFailure = "failure"
	OutcomePanic   = "panic"
)

// Metrics records tier selection and remote call latency. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	tierAttempts   *prometheus.CounterVec
	sceneTier      *prometheus.CounterVec
	remoteDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		tierAttempts: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tier_attempts_total",
				Help:      "Extraction tier attempts by outcome.",
			},
			[]string{"tier", "outcome"},
		),
		sceneTier: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "scenes_total",
				Help:      "Scenes returned, labelled by the tier that produced them.",
			},
			[]string{"tier"},
		),
		remoteDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "remote_request_duration_seconds",
				Help:      "Latency of remote semantic parser calls.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"model", "status"},
		),
	}
}

func (m *Metrics) TierAttempt(tier, outcome string) {
	if m == nil {
		return
	}
	m.tierAttempts.WithLabelValues(tier, outcome).Inc()
}

func (m *Metrics) SceneProduced(tier string) {
	if m == nil {
		return
	}
	m.sceneTier.WithLabelValues(tier).Inc()
}

func (m *Metrics) RemoteRequest(model, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.remoteDuration.WithLabelValues(model, status).Observe(d.Seconds())
}
