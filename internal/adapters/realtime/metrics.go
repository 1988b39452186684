package realtime

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts connection lifecycle events. The zero value is usable and records nothing
// until Register is called.
type Metrics struct {
	registerOnce sync.Once
	lifecycle    *prometheus.CounterVec
	dispatched   *prometheus.CounterVec
	connected    prometheus.Gauge
}

// Register registers the collectors with registry. A nil registry is a no-op and
// repeated calls after the first are ignored.
func (m *Metrics) Register(registry prometheus.Registerer) {
	if m == nil || registry == nil {
		return
	}

	m.registerOnce.Do(func() {
		factory := promauto.With(registry)

		m.lifecycle = factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cw_realtime_lifecycle_events_total",
			Help: "Total number of realtime connection lifecycle events by kind",
		}, []string{"event"})

		m.dispatched = factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cw_realtime_events_dispatched_total",
			Help: "Total number of named realtime events delivered to handlers",
		}, []string{"event"})

		m.connected = factory.NewGauge(prometheus.GaugeOpts{
			Name: "cw_realtime_connected",
			Help: "Number of realtime connections currently established",
		})
	})
}

func (m *Metrics) observeLifecycle(event string) {
	if m == nil || m.lifecycle == nil {
		return
	}
	m.lifecycle.WithLabelValues(event).Inc()
}

func (m *Metrics) observeDispatch(event string) {
	if m == nil || m.dispatched == nil {
		return
	}
	m.dispatched.WithLabelValues(event).Inc()
}

func (m *Metrics) setConnected(delta float64) {
	if m == nil || m.connected == nil {
		return
	}
	m.connected.Add(delta)
}
