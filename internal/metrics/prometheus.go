package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Fit      *prometheus.CounterVec
	Steepest *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Fit: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "descent",
				Name:      "fit_runs",
			}, []string{"strategy"}),
		Steepest: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "descent",
				Name:      "steepest_runs",
			}, []string{"outcome"}),
	}
}
