package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Observer is the process wide training metrics sink.
var Observer = &Metrics{
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.collectors()...)
}

type Metrics struct {
	prometheus Prometheus
}

// Epoch records a finished epoch of the given run.
func (m *Metrics) Epoch(run string, loss, gradNorm float64) {
	m.prometheus.Epochs.WithLabelValues(run).Inc()
	m.prometheus.Loss.WithLabelValues(run).Set(loss)
	m.prometheus.GradNorm.WithLabelValues(run).Set(gradNorm)
}

// Forget drops the series of the given run.
func (m *Metrics) Forget(run string) {
	m.prometheus.Epochs.DeleteLabelValues(run)
	m.prometheus.Loss.DeleteLabelValues(run)
	m.prometheus.GradNorm.DeleteLabelValues(run)
}
