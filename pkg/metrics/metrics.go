// Package metrics records decode outcomes through the OpenTelemetry metric API
// and exports them with a Prometheus registry. Since the decoder has no network
// surface, the registry is written out in the node-exporter textfile format.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const meterName = "idcode"

// Outcome labels for decoded codes.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)

// Recorder counts decoded codes and field failures and times batches.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry
	provider *sdkmetric.MeterProvider

	decoded       metric.Int64Counter
	fieldFailures metric.Int64Counter
	batchDuration metric.Float64Histogram
}

// New creates a Recorder backed by its own Prometheus registry.
func New() (*Recorder, error) {
	registry := prometheus.NewRegistry()

	exp, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	meter := provider.Meter(meterName)

	decoded, err := meter.Int64Counter("idcode_decoded",
		metric.WithDescription("Number of decoded personal codes by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create decoded counter: %w", err)
	}

	fieldFailures, err := meter.Int64Counter("idcode_field_failures",
		metric.WithDescription("Number of field decoding failures by error kind."))
	if err != nil {
		return nil, fmt.Errorf("could not create field failures counter: %w", err)
	}

	batchDuration, err := meter.Float64Histogram("idcode_batch_duration",
		metric.WithUnit("s"),
		metric.WithDescription("Time spent decoding one input source."),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create batch duration histogram: %w", err)
	}

	return &Recorder{
		registry:      registry,
		provider:      provider,
		decoded:       decoded,
		fieldFailures: fieldFailures,
		batchDuration: batchDuration,
	}, nil
}

// Decoded records one decoded code and the error kinds of its failed fields.
func (r *Recorder) Decoded(ctx context.Context, valid bool, failedKinds []string) {
	if r == nil {
		return
	}

	outcome := OutcomeInvalid
	if valid {
		outcome = OutcomeValid
	}
	r.decoded.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))

	for _, k := range failedKinds {
		r.fieldFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", k)))
	}
}

// Batch records the time spent decoding one input source.
func (r *Recorder) Batch(ctx context.Context, source string, d time.Duration) {
	if r == nil {
		return
	}

	r.batchDuration.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("source", source)))
}

// WriteTextfile gathers the registry and writes it atomically to path.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}

	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("could not write metrics textfile: %w", err)
	}

	return nil
}

// Shutdown flushes and stops the meter provider.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}

	if err := r.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not shut down meter provider: %w", err)
	}

	return nil
}
