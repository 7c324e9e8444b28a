// Package metrics holds the OpenTelemetry instruments recorded by the report
// pipeline. The API server wires the global meter provider to a Prometheus
// exporter, so everything recorded here ends up on /metrics.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Pipeline bundles the instruments recorded around every report run.
type Pipeline struct {
	runs        metric.Int64Counter
	runDuration metric.Float64Histogram
	fetched     metric.Int64Counter
}

// NewPipeline creates the pipeline instruments on the global meter. Instruments
// created before the meter provider is installed are bound retroactively by
// the otel global package, so construction order does not matter.
func NewPipeline() (*Pipeline, error) {
	meter := otel.Meter("userboard/report")

	runs, err := meter.Int64Counter("userboard_sync_runs_total",
		metric.WithDescription("Number of report pipeline runs by final status."))
	if err != nil {
		return nil, fmt.Errorf("could not create runs counter: %w", err)
	}

	runDuration, err := meter.Float64Histogram("userboard_sync_run_duration_seconds",
		metric.WithDescription("Wall-clock duration of report pipeline runs."),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create run duration histogram: %w", err)
	}

	fetched, err := meter.Int64Counter("userboard_fetched_records_total",
		metric.WithDescription("Number of user records fetched from the upstream API."))
	if err != nil {
		return nil, fmt.Errorf("could not create fetched records counter: %w", err)
	}

	return &Pipeline{
		runs:        runs,
		runDuration: runDuration,
		fetched:     fetched,
	}, nil
}

// RecordRun records one finished pipeline run with its final status and duration.
func (p *Pipeline) RecordRun(ctx context.Context, status string, seconds float64) {
	attrs := metric.WithAttributes(attribute.String("status", status))
	p.runs.Add(ctx, 1, attrs)
	p.runDuration.Record(ctx, seconds, attrs)
}

// RecordFetched records the size of a successfully fetched batch.
func (p *Pipeline) RecordFetched(ctx context.Context, n int) {
	p.fetched.Add(ctx, int64(n))
}
