// Package metrics exposes prometheus instrumentation for game actions.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts game actions by outcome.
type Metrics struct {
	actionsTotal *prometheus.CounterVec
}

// New registers the game metrics on the given registerer. Tests pass a
// fresh registry so fixtures never collide.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		actionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rapmaster",
			Name:      "game_actions_total",
			Help:      "Game actions processed, partitioned by action and outcome.",
		}, []string{"action", "status"}),
	}
}

// NewDefault registers the game metrics on the default prometheus registry.
func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}

// ObserveAction records one processed action.
func (m *Metrics) ObserveAction(action string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.actionsTotal.WithLabelValues(action, status).Inc()
}
