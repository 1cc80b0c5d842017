// Package metrics exposes waitlist and session gauges to prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics groups the service collectors. Each instance owns its registry so
// tests can build as many as they like.
type Metrics struct {
	Registry   *prometheus.Registry
	Entries    *prometheus.GaugeVec
	Players    prometheus.Gauge
	Exempt     prometheus.Gauge
	Operations *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "waitlist_entries",
			Help: "Waitlist entries by derived status.",
		}, []string{"status"}),
		Players: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "session_players",
			Help: "Players currently recorded inside the live session.",
		}),
		Exempt: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "exempt_users",
			Help: "Names on the exempt list.",
		}),
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "waitlist_operations_total",
			Help: "Waitlist and exempt operations by outcome.",
		}, []string{"op", "result"}),
	}
	m.Registry.MustRegister(m.Entries, m.Players, m.Exempt, m.Operations)
	m.Registry.MustRegister(collectors.NewGoCollector())
	return m
}

// SetWaitlist records the current active/waiting split.
func (m *Metrics) SetWaitlist(active, waiting int) {
	m.Entries.WithLabelValues("active").Set(float64(active))
	m.Entries.WithLabelValues("waiting").Set(float64(waiting))
}

// Observe counts one operation with its result ("ok" or an error code).
func (m *Metrics) Observe(op string, result string) {
	m.Operations.WithLabelValues(op, result).Inc()
}
