package infra

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/tnqbao/gau-recipe-service/config"
)

// TelemetryClient owns the trace and metric providers. It is a no-op when
// no OTLP endpoint is configured.
type TelemetryClient struct {
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
}

func InitTelemetryClient(cfg *config.EnvConfig) *TelemetryClient {
	if cfg.Grafana.OTLPEndpoint == "" {
		return &TelemetryClient{}
	}

	ctx := context.Background()

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.Grafana.ServiceName),
		semconv.DeploymentEnvironment(cfg.Environment.Mode),
	))
	if err != nil {
		res = resource.Default()
	}

	traceExporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.Grafana.OTLPEndpoint),
	)
	if err != nil {
		log.Printf("Warning: OTLP trace exporter failed: %v", err)
		return &TelemetryClient{}
	}

	metricExporter, err := otlpmetrichttp.New(ctx,
		otlpmetrichttp.WithEndpoint(cfg.Grafana.OTLPEndpoint),
	)
	if err != nil {
		log.Printf("Warning: OTLP metric exporter failed: %v", err)
		return &TelemetryClient{}
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(30*time.Second))),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(meterProvider)

	if err := runtime.Start(runtime.WithMeterProvider(meterProvider)); err != nil {
		log.Printf("Warning: runtime instrumentation failed: %v", err)
	}

	return &TelemetryClient{
		tracerProvider: tracerProvider,
		meterProvider:  meterProvider,
	}
}

func (t *TelemetryClient) Shutdown(ctx context.Context) {
	if t.tracerProvider != nil {
		_ = t.tracerProvider.Shutdown(ctx)
	}
	if t.meterProvider != nil {
		_ = t.meterProvider.Shutdown(ctx)
	}
}
