package otel

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Init initializes the OpenTelemetry tracer provider with an OTLP exporter.
// OTEL_SDK_DISABLED=true, or an exporter that cannot be built, leaves the
// global no-op provider in place; only the propagator is configured.
func Init(ctx context.Context, logger zerolog.Logger) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	if disabled, _ := strconv.ParseBool(os.Getenv("OTEL_SDK_DISABLED")); disabled {
		logger.Info().Bool("tracing_enabled", false).Msg("tracing_configured")
		return noopShutdown, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(getEnv("OTEL_SERVICE_NAME", "promoapi")),
		),
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	protocol := getEnv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc")
	exporter, err := newExporter(ctx, protocol)
	if err != nil {
		// Degrade gracefully: keep the no-op tracer provider
		logger.Error().Err(err).Msg("tracing_init_failed")
		return noopShutdown, nil
	}

	samplerType := getEnv("OTEL_TRACES_SAMPLER", "parentbased_traceidratio")
	samplerArg := getEnv("OTEL_TRACES_SAMPLER_ARG", "1.0")

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
		trace.WithSampler(getSampler(samplerType, samplerArg)),
	)
	otel.SetTracerProvider(tp)

	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT")
	if endpoint == "" {
		endpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}

	logger.Info().
		Bool("tracing_enabled", true).
		Str("otlp_protocol", protocol).
		Str("otlp_endpoint", endpoint).
		Str("sampler", samplerType).
		Str("sampler_arg", samplerArg).
		Msg("tracing_configured")

	return tp.Shutdown, nil
}

func newExporter(ctx context.Context, protocol string) (*otlptrace.Exporter, error) {
	switch protocol {
	case "grpc":
		return otlptracegrpc.New(ctx)
	case "http/protobuf":
		return otlptracehttp.New(ctx)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol: %s", protocol)
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getSampler(sampler, arg string) trace.Sampler {
	ratio := 1.0
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		ratio = f
	}

	switch sampler {
	case "always_on":
		return trace.AlwaysSample()
	case "always_off":
		return trace.NeverSample()
	case "traceidratio":
		return trace.TraceIDRatioBased(ratio)
	case "parentbased_always_on":
		return trace.ParentBased(trace.AlwaysSample())
	case "parentbased_always_off":
		return trace.ParentBased(trace.NeverSample())
	case "parentbased_traceidratio":
		return trace.ParentBased(trace.TraceIDRatioBased(ratio))
	default:
		return trace.ParentBased(trace.AlwaysSample())
	}
}
