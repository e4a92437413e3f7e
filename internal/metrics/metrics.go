package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Fit)
	prometheus.MustRegister(Observer.prometheus.Steepest)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// IncrementFit counts one finished training run for the given strategy.
func (m *Metrics) IncrementFit(strategy string) {
	m.prometheus.Fit.WithLabelValues(strategy).Inc()
}

// IncrementSteepest counts one finished steepest descent run with the given outcome.
func (m *Metrics) IncrementSteepest(outcome string) {
	m.prometheus.Steepest.WithLabelValues(outcome).Inc()
}
