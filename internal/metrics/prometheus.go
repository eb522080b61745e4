package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus holds the training collectors.
type Prometheus struct {
	Epochs   *prometheus.CounterVec
	Loss     *prometheus.GaugeVec
	GradNorm *prometheus.GaugeVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Epochs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "grad",
				Subsystem: "train",
				Name:      "epochs_total",
			}, []string{"run"}),
		Loss: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "grad",
				Subsystem: "train",
				Name:      "loss",
			}, []string{"run"}),
		GradNorm: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "grad",
				Subsystem: "train",
				Name:      "grad_norm",
			}, []string{"run"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Epochs, p.Loss, p.GradNorm}
}
