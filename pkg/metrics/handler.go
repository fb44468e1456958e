package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type PrometheusMetricsHandler struct {
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
}

// NewPrometheusMetricsHandler serves the default registry, extended with the given collectors.
func NewPrometheusMetricsHandler(collectors ...prometheus.Collector) *PrometheusMetricsHandler {
	h := &PrometheusMetricsHandler{
		registerer: prometheus.DefaultRegisterer,
		gatherer:   prometheus.DefaultGatherer,
	}
	for _, c := range collectors {
		h.registerer.MustRegister(c)
	}
	return h
}

func (h *PrometheusMetricsHandler) Handler() http.Handler {
	return promhttp.InstrumentMetricHandler(
		h.registerer,
		promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}),
	)
}
