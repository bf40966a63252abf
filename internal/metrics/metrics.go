package metrics

import (
	"errors"
	"net/http"

	"github.com/drakos74/iris-knn/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	IOKind              = "io"
	ParseKind           = "parse"
	InvalidArgumentKind = "invalid_argument"
	OtherKind           = "other"
)

// Observer is the default metrics instance.
var Observer = New()

// Metrics records classifications and errors on its own registry.
type Metrics struct {
	registry   *prometheus.Registry
	prometheus Prometheus
}

// New creates metrics with a dedicated registry.
func New() *Metrics {
	p := NewPrometheusMetrics()
	registry := prometheus.NewRegistry()
	registry.MustRegister(p.Classifications, p.Errors)
	return &Metrics{
		registry:   registry,
		prometheus: p,
	}
}

// Classified counts a classification.
func (m *Metrics) Classified(engine, label string) {
	m.prometheus.Classifications.WithLabelValues(engine, label).Inc()
}

// Failed counts an error by its kind.
func (m *Metrics) Failed(err error) {
	if err == nil {
		return
	}
	m.prometheus.Errors.WithLabelValues(Kind(err)).Inc()
}

// Handler exposes the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Kind maps an error to its metric label.
func Kind(err error) string {
	switch {
	case errors.Is(err, model.IOErr):
		return IOKind
	case errors.Is(err, model.ParseErr):
		return ParseKind
	case errors.Is(err, model.InvalidArgumentErr):
		return InvalidArgumentKind
	}
	return OtherKind
}
