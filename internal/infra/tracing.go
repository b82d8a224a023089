package infra

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
	"go.uber.org/zap"
	"wilayah/internal/config"
)

// InitTracing installs the global tracer provider. With tracing disabled it
// returns a no-op shutdown func.
func InitTracing(ctx context.Context, cfg *config.Config, logger *zap.Logger) (func(context.Context) error, error) {
	if !cfg.OtelEnabled {
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			attribute.String("deployment.environment", cfg.AppEnv),
		),
	)
	if err != nil {
		logger.Warn("otel resource init failed (continuing)", zap.Error(err))
	}

	exporter, err := buildTraceExporter(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.OtelSampleRatio))),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("otel tracing initialized",
		zap.String("service", cfg.ServiceName),
		zap.String("endpoint", cfg.OtelEndpoint))
	return tp.Shutdown, nil
}

func buildTraceExporter(ctx context.Context, cfg *config.Config, logger *zap.Logger) (sdktrace.SpanExporter, error) {
	if cfg.OtelEndpoint != "" {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.OtelEndpoint)}
		if cfg.OtelInsecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	}
	logger.Warn("otel using stdout exporter (no OTLP endpoint configured)")
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}
