package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus holds the collectors of the classifier.
type Prometheus struct {
	Classifications *prometheus.CounterVec
	Errors          *prometheus.CounterVec
}

// NewPrometheusMetrics creates the collectors.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Classifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "iris",
				Name:      "classifications_total",
				Help:      "classified points per engine and label",
			}, []string{"engine", "label"}),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "iris",
				Name:      "errors_total",
				Help:      "errors per kind",
			}, []string{"kind"}),
	}
}
