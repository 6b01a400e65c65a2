package telemetry

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/roomify-io/roomify-server/internal/config"
)

// serviceResource describes this process on every exported signal. Traces
// and metrics share it so signals correlate in the backend.
func serviceResource(cfg *config.Config) (*resource.Resource, error) {
	return resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(cfg.App.Name),
			semconv.ServiceVersion("0.0.1"),
			semconv.DeploymentEnvironment(cfg.App.Env),
		),
	)
}

// otlpTarget strips the URL scheme; the gRPC exporters expect host:port.
func otlpTarget(endpoint string) string {
	endpoint = strings.TrimPrefix(endpoint, "http://")
	return strings.TrimPrefix(endpoint, "https://")
}
