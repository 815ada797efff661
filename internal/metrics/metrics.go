package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"NewswireNotifier/internal/domain"
	"NewswireNotifier/internal/ports"
)

// Metrics records bulletin outcomes as Prometheus collectors.
type Metrics struct {
	bulletins   *prometheus.CounterVec
	attachments *prometheus.CounterVec
	duration    prometheus.Histogram
}

var _ ports.Recorder = (*Metrics)(nil)

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		bulletins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "newswire",
			Name:      "bulletins_total",
			Help:      "Bulletins processed, by dialect and outcome.",
		}, []string{"dialect", "outcome"}),
		attachments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "newswire",
			Name:      "attachments_total",
			Help:      "Attachments assembled, by dialect.",
		}, []string{"dialect"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "newswire",
			Name:      "bulletin_duration_seconds",
			Help:      "Time spent transforming and delivering one bulletin.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}
	reg.MustRegister(m.bulletins, m.attachments, m.duration)
	return m
}

// Observe implements ports.Recorder.
func (m *Metrics) Observe(dialect domain.Dialect, outcome domain.Outcome, articles int, elapsed time.Duration) {
	label := string(dialect)
	if label == "" {
		label = "unknown"
	}
	m.bulletins.WithLabelValues(label, string(outcome)).Inc()
	m.attachments.WithLabelValues(label).Add(float64(articles))
	m.duration.Observe(elapsed.Seconds())
}
