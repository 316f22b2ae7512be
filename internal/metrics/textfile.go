package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CountSample is the outcome of one timed algorithm run, as exported to
// Prometheus.
type CountSample struct {
	Algorithm string
	Count     int
	Duration  time.Duration
}

// CountCollector holds the gauges describing a counting run. Each collector
// owns its registry, so several can coexist in tests.
type CountCollector struct {
	registry  *prometheus.Registry
	duration  *prometheus.GaugeVec
	result    *prometheus.GaugeVec
	inputSize prometheus.Gauge
	threshold prometheus.Gauge
}

// NewCountCollector creates the gauges and registers them on a fresh registry.
func NewCountCollector() *CountCollector {
	c := &CountCollector{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "countnums",
			Name:      "count_duration_seconds",
			Help:      "Wall-clock duration of the last count, per algorithm.",
		}, []string{"algorithm"}),
		result: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "countnums",
			Name:      "count_result",
			Help:      "Number of elements greater than the threshold, per algorithm.",
		}, []string{"algorithm"}),
		inputSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "countnums",
			Name:      "input_size",
			Help:      "Number of elements in the loaded sequence.",
		}),
		threshold: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "countnums",
			Name:      "threshold",
			Help:      "Exclusive lower bound used by the count.",
		}),
	}
	c.registry.MustRegister(c.duration, c.result, c.inputSize, c.threshold)
	return c
}

// Observe records the input shape and one sample per algorithm.
func (c *CountCollector) Observe(size int, threshold uint64, samples []CountSample) {
	c.inputSize.Set(float64(size))
	c.threshold.Set(float64(threshold))
	for _, s := range samples {
		c.duration.WithLabelValues(s.Algorithm).Set(s.Duration.Seconds())
		c.result.WithLabelValues(s.Algorithm).Set(float64(s.Count))
	}
}

// Gatherer exposes the underlying registry.
func (c *CountCollector) Gatherer() prometheus.Gatherer {
	return c.registry
}

// WriteTextfile writes the collected metrics to path in the Prometheus text
// exposition format, as read by node_exporter's textfile collector.
func (c *CountCollector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
