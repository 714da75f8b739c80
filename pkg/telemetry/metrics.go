package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricOpts holds options for creating metrics
type MetricOpts struct {
	Name        string
	Description string
	Unit        string
}

// Counter wraps an OTel counter for easier use
type Counter struct {
	counter metric.Int64Counter
}

// NewCounter creates a new counter metric
func NewCounter(opts MetricOpts) (*Counter, error) {
	counter, err := GetMeter().Int64Counter(
		opts.Name,
		metric.WithDescription(opts.Description),
		metric.WithUnit(opts.Unit),
	)
	if err != nil {
		return nil, err
	}
	return &Counter{counter: counter}, nil
}

// Add increments the counter by the given value
func (c *Counter) Add(ctx context.Context, value int64, attrs ...attribute.KeyValue) {
	c.counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

// Inc increments the counter by 1
func (c *Counter) Inc(ctx context.Context, attrs ...attribute.KeyValue) {
	c.counter.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// Histogram wraps an OTel histogram for easier use
type Histogram struct {
	histogram metric.Float64Histogram
}

// NewHistogram creates a new histogram metric
func NewHistogram(opts MetricOpts) (*Histogram, error) {
	histogram, err := GetMeter().Float64Histogram(
		opts.Name,
		metric.WithDescription(opts.Description),
		metric.WithUnit(opts.Unit),
	)
	if err != nil {
		return nil, err
	}
	return &Histogram{histogram: histogram}, nil
}

// Record records a value in the histogram
func (h *Histogram) Record(ctx context.Context, value float64, attrs ...attribute.KeyValue) {
	h.histogram.Record(ctx, value, metric.WithAttributes(attrs...))
}

var (
	requestMetricsOnce sync.Once
	requestCounter     *Counter
	requestDuration    *Histogram
)

func initRequestMetrics() {
	requestMetricsOnce.Do(func() {
		requestCounter, _ = NewCounter(MetricOpts{
			Name:        "http.server.requests",
			Description: "Total HTTP requests handled",
			Unit:        "{request}",
		})
		requestDuration, _ = NewHistogram(MetricOpts{
			Name:        "http.server.request.duration",
			Description: "HTTP request latency",
			Unit:        "s",
		})
	})
}

// RecordRequest records request count and latency for one handled request
func RecordRequest(ctx context.Context, method, route string, status int, latency time.Duration) {
	initRequestMetrics()

	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.status_code", status),
	}
	if requestCounter != nil {
		requestCounter.Inc(ctx, attrs...)
	}
	if requestDuration != nil {
		requestDuration.Record(ctx, latency.Seconds(), attrs...)
	}
}
