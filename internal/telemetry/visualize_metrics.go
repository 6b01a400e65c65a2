package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	visualizeCounter  metric.Int64Counter
	visualizeDuration metric.Float64Histogram
	visualizeErrors   metric.Int64Counter
)

// InitVisualizeMetrics initializes visualization pipeline metrics.
func InitVisualizeMetrics() error {
	meter := otel.Meter("roomify.visualize")

	var err error

	visualizeCounter, err = meter.Int64Counter(
		"visualize.count",
		metric.WithDescription("Number of visualization runs"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return err
	}

	visualizeDuration, err = meter.Float64Histogram(
		"visualize.duration",
		metric.WithDescription("End-to-end duration of visualization runs"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	visualizeErrors, err = meter.Int64Counter(
		"visualize.errors",
		metric.WithDescription("Number of failed visualization runs"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return err
	}

	return nil
}

// RecordVisualizeSuccess records a completed visualization run.
func RecordVisualizeSuccess(ctx context.Context, durationMs float64) {
	if visualizeCounter != nil {
		visualizeCounter.Add(ctx, 1,
			metric.WithAttributes(attribute.String("status", "success")),
		)
	}
	if visualizeDuration != nil {
		visualizeDuration.Record(ctx, durationMs,
			metric.WithAttributes(attribute.String("status", "success")),
		)
	}
}

// RecordVisualizeFailure records a failed run with the stage that failed.
func RecordVisualizeFailure(ctx context.Context, stage string) {
	if visualizeCounter != nil {
		visualizeCounter.Add(ctx, 1,
			metric.WithAttributes(attribute.String("status", "failure")),
		)
	}
	if visualizeErrors != nil {
		visualizeErrors.Add(ctx, 1,
			metric.WithAttributes(attribute.String("stage", stage)),
		)
	}
}
