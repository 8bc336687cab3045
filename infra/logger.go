package infra

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/tnqbao/gau-recipe-service/config"
)

// LoggerClient wraps slog. With an OTLP endpoint configured the records go
// through the otelslog bridge; otherwise they go to stdout as JSON.
type LoggerClient struct {
	logger   *slog.Logger
	provider *sdklog.LoggerProvider
}

func InitLoggerClient(cfg *config.EnvConfig) *LoggerClient {
	serviceName := cfg.Grafana.ServiceName

	if cfg.Grafana.OTLPEndpoint == "" {
		return &LoggerClient{
			logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		}
	}

	exporter, err := otlploghttp.New(context.Background(),
		otlploghttp.WithEndpoint(cfg.Grafana.OTLPEndpoint),
	)
	if err != nil {
		log.Printf("Warning: OTLP log exporter failed (%v), falling back to stdout", err)
		return &LoggerClient{
			logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		}
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.DeploymentEnvironment(cfg.Environment.Mode),
	))
	if err != nil {
		res = resource.Default()
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)

	return &LoggerClient{
		logger:   otelslog.NewLogger(serviceName, otelslog.WithLoggerProvider(provider)),
		provider: provider,
	}
}

func (l *LoggerClient) InfoWithContextf(ctx context.Context, format string, args ...interface{}) {
	l.logger.InfoContext(ctx, fmt.Sprintf(format, args...))
}

func (l *LoggerClient) WarningWithContextf(ctx context.Context, format string, args ...interface{}) {
	l.logger.WarnContext(ctx, fmt.Sprintf(format, args...))
}

func (l *LoggerClient) ErrorWithContextf(ctx context.Context, err error, format string, args ...interface{}) {
	if err != nil {
		l.logger.ErrorContext(ctx, fmt.Sprintf(format, args...), slog.Any("error", err))
		return
	}
	l.logger.ErrorContext(ctx, fmt.Sprintf(format, args...))
}

func (l *LoggerClient) Shutdown(ctx context.Context) error {
	if l.provider == nil {
		return nil
	}
	return l.provider.Shutdown(ctx)
}
