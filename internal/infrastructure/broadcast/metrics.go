package broadcast

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/riskibarqy/fantasy-draft/internal/domain/draft"
)

const (
	metricsNamespace = "fantasy_draft"
	metricsSubsystem = "broadcast"
)

// Metrics tracks draft fan-out health. A nil *Metrics records nothing.
type Metrics struct {
	subscribers prometheus.Gauge
	published   *prometheus.CounterVec
	dropped     prometheus.Counter
	bridged     *prometheus.CounterVec
}

func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	auto := promauto.With(registry)

	return &Metrics{
		subscribers: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "active_subscribers",
			Help:      "Number of live draft event subscribers across all leagues",
		}),
		published: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "events_published_total",
			Help:      "Draft events fanned out to local subscribers by event type",
		}, []string{"type"}),
		dropped: auto.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "subscribers_dropped_total",
			Help:      "Subscribers removed because a send timed out",
		}),
		bridged: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "bridge_messages_total",
			Help:      "Draft events exchanged with other instances by direction and result",
		}, []string{"direction", "result"}),
	}
}

func (m *Metrics) subscriberAdded() {
	if m != nil {
		m.subscribers.Inc()
	}
}

func (m *Metrics) subscriberRemoved() {
	if m != nil {
		m.subscribers.Dec()
	}
}

func (m *Metrics) eventPublished(eventType draft.EventType) {
	if m != nil {
		m.published.WithLabelValues(string(eventType)).Inc()
	}
}

func (m *Metrics) subscriberDropped() {
	if m != nil {
		m.dropped.Inc()
	}
}

func (m *Metrics) bridgeMessage(direction, result string) {
	if m != nil {
		m.bridged.WithLabelValues(direction, result).Inc()
	}
}
