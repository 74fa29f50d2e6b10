package extractor

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ExtractionMetricsRecorder abstracts metrics recording so that unit tests
// can inject a mock instead of Prometheus and so that every provider
// (Claude, OpenAI, future backends) records the same set of metrics.
type ExtractionMetricsRecorder interface {
	// RecordDuration records the time taken by one extraction API call.
	RecordDuration(duration time.Duration)

	// RecordFailure increments the failure counter for the given kind
	// (config, request, empty, parse, other).
	RecordFailure(kind string)

	// RecordImageInput increments the counter of requests that carried
	// an inline image.
	RecordImageInput()
}

// PrometheusExtractionMetrics implements ExtractionMetricsRecorder using
// Prometheus metrics. This is the production implementation.
type PrometheusExtractionMetrics struct {
	durationHistogram prometheus.Histogram
	failureCounter    *prometheus.CounterVec
	imageCounter      prometheus.Counter
}

var (
	prometheusMetricsInstance *PrometheusExtractionMetrics
	prometheusMetricsOnce     sync.Once
)

// NewPrometheusExtractionMetrics creates the Prometheus-based recorder.
// Uses a singleton to avoid duplicate metric registration in tests.
func NewPrometheusExtractionMetrics() *PrometheusExtractionMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusExtractionMetrics{
			durationHistogram: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "event_extraction_duration_seconds",
				Help:    "Time taken to extract an event via the model API",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			}),
			failureCounter: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "event_extraction_failures_total",
				Help: "Total number of failed extractions by failure kind",
			}, []string{"kind"}),
			imageCounter: promauto.NewCounter(prometheus.CounterOpts{
				Name: "event_extraction_image_inputs_total",
				Help: "Total number of extraction requests carrying an inline image",
			}),
		}
	})
	return prometheusMetricsInstance
}

// RecordDuration implements ExtractionMetricsRecorder.RecordDuration.
func (p *PrometheusExtractionMetrics) RecordDuration(duration time.Duration) {
	p.durationHistogram.Observe(duration.Seconds())
}

// RecordFailure implements ExtractionMetricsRecorder.RecordFailure.
func (p *PrometheusExtractionMetrics) RecordFailure(kind string) {
	p.failureCounter.WithLabelValues(kind).Inc()
}

// RecordImageInput implements ExtractionMetricsRecorder.RecordImageInput.
func (p *PrometheusExtractionMetrics) RecordImageInput() {
	p.imageCounter.Inc()
}

// NoopMetrics is an ExtractionMetricsRecorder that records nothing.
type NoopMetrics struct{}

// RecordDuration implements ExtractionMetricsRecorder.RecordDuration.
func (NoopMetrics) RecordDuration(time.Duration) {}

// RecordFailure implements ExtractionMetricsRecorder.RecordFailure.
func (NoopMetrics) RecordFailure(string) {}

// RecordImageInput implements ExtractionMetricsRecorder.RecordImageInput.
func (NoopMetrics) RecordImageInput() {}
