// Package metrics holds the application's OpenTelemetry instruments.
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60} //nolint: gochecknoglobals

// Instrument names use underscores so the Prometheus exporter serves them as
// classic metric names.
const (
	SubmissionsName      = "homefinder_submissions"
	ProviderDurationName = "homefinder_provider_duration"
)

const (
	ProviderSearch = "search"
	ProviderLLM    = "llm"

	// OutcomeError labels submissions that ended with an error.
	OutcomeError = "ERROR"
)

// Recorder records pipeline metrics. It is safe for concurrent use.
type Recorder struct {
	submissions      metric.Int64Counter
	providerDuration metric.Float64Histogram
}

// New creates the instruments on meter.
func New(meter metric.Meter) (*Recorder, error) {
	submissions, err := meter.Int64Counter(SubmissionsName,
		metric.WithDescription("Submissions processed, by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create submissions counter: %w", err)
	}

	providerDuration, err := meter.Float64Histogram(ProviderDurationName,
		metric.WithDescription("Latency of outbound provider calls"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create provider duration histogram: %w", err)
	}

	return &Recorder{submissions: submissions, providerDuration: providerDuration}, nil
}

// Noop returns a Recorder that discards everything.
func Noop() *Recorder {
	r, _ := New(noop.NewMeterProvider().Meter(""))

	return r
}

// Submission counts one finished submission.
func (r *Recorder) Submission(ctx context.Context, outcome string) {
	r.submissions.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// ProviderCall records the latency of one provider call started at start.
func (r *Recorder) ProviderCall(ctx context.Context, provider string, start time.Time, err error) {
	r.providerDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.Bool("error", err != nil),
	))
}
