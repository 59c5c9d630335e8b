package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Generation outcomes
const (
	OutcomeSuccess  = "success"
	OutcomeDegraded = "degraded"
	OutcomeError    = "error"
)

// Metrics holds the document generation collectors. Each Metrics owns its registry so
// several instances can coexist in one process.
type Metrics struct {
	registry  *prometheus.Registry
	documents *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	pages     prometheus.Histogram
	fallbacks *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		documents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "resume_builder",
			Name:      "documents_generated_total",
			Help:      "Documents generated by template and outcome.",
		}, []string{"template", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "resume_builder",
			Name:      "generation_duration_seconds",
			Help:      "Time spent generating one document.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"template"}),
		pages: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "resume_builder",
			Name:      "document_pages",
			Help:      "Pages per generated document.",
			Buckets:   []float64{1, 2, 3, 4, 6, 10},
		}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "resume_builder",
			Name:      "fallback_documents_total",
			Help:      "Fallback error documents rendered after a failed generation.",
		}, []string{"template"}),
	}
	m.registry.MustRegister(m.documents, m.duration, m.pages, m.fallbacks)
	return m
}

// ObserveGeneration records one finished generate call
func (m *Metrics) ObserveGeneration(templateID, outcome string, took time.Duration, pages int) {
	if m == nil {
		return
	}
	m.documents.WithLabelValues(templateID, outcome).Inc()
	m.duration.WithLabelValues(templateID).Observe(took.Seconds())
	if pages > 0 {
		m.pages.Observe(float64(pages))
	}
	if outcome == OutcomeDegraded {
		m.fallbacks.WithLabelValues(templateID).Inc()
	}
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collectors in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
