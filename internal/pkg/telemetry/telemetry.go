// Package telemetry wires the OpenTelemetry SDK for a walletsweep run: spans
// and counters from the batch processor and log records bridged from the
// logger, all exported over OTLP/gRPC.
//
// Every run is tagged with a run id resource attribute so the telemetry of
// one CSV batch can be told apart from the next one. Telemetry is opt-in;
// without Init the global no-op providers stay in place.
package telemetry

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// RunIDKey is the resource attribute holding the id of the run.
const RunIDKey = attribute.Key("walletsweep.run_id")

var (
	// loggerProvider is set by Init and read by the logger package.
	loggerProvider *sdklog.LoggerProvider
	providerMu     sync.RWMutex
)

// LoggerProvider returns the provider registered by Init, nil when telemetry is off.
func LoggerProvider() otellog.LoggerProvider {
	providerMu.RLock()
	defer providerMu.RUnlock()

	if loggerProvider == nil {
		return nil
	}

	return loggerProvider
}

func setLoggerProvider(lp *sdklog.LoggerProvider) {
	providerMu.Lock()
	loggerProvider = lp
	providerMu.Unlock()
}

// ShutdownFunc flushes pending telemetry and stops every provider.
type ShutdownFunc func(ctx context.Context) error

// config holds the resource settings of Init.
type config struct {
	version string
	runID   string
}

// Option customizes Init.
type Option func(*config)

// WithVersion sets the service.version attribute.
func WithVersion(v string) Option {
	return func(c *config) {
		c.version = v
	}
}

// WithRunID overrides the generated run id.
func WithRunID(id string) Option {
	return func(c *config) {
		c.runID = id
	}
}

func newResource(serviceName string, cfg config) (*sdkresource.Resource, error) {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(serviceName),
		RunIDKey.String(cfg.runID),
	}
	if cfg.version != "" {
		attrs = append(attrs, semconv.ServiceVersion(cfg.version))
	}

	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(semconv.SchemaURL, attrs...),
	)
}

// Init registers OTLP/gRPC meter, tracer and logger providers as the globals.
// Exporter endpoints come from the standard OTEL_EXPORTER_OTLP_* variables.
// It returns the run id tagged on every signal.
//
// Init must run before logger.Init for log records to be bridged. A run is
// short-lived, so the returned ShutdownFunc must be called before exit or
// the last batch of each signal is lost.
func Init(ctx context.Context, serviceName string, opts ...Option) (string, ShutdownFunc, error) {
	cfg := config{runID: uuid.NewString()}
	for _, opt := range opts {
		opt(&cfg)
	}

	res, err := newResource(serviceName, cfg)
	if err != nil {
		return "", nil, err
	}

	metricExporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return "", nil, err
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	traceExporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return "", nil, errors.Join(err, mp.Shutdown(ctx))
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)

	logExporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return "", nil, errors.Join(err, mp.Shutdown(ctx), tp.Shutdown(ctx))
	}
	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
		sdklog.WithResource(res),
	)

	otel.SetMeterProvider(mp)
	otel.SetTracerProvider(tp)
	global.SetLoggerProvider(lp)
	setLoggerProvider(lp)

	// Logs go last: spans and metrics may still log while shutting down.
	return cfg.runID, func(ctx context.Context) error {
		return errors.Join(
			tp.Shutdown(ctx),
			mp.Shutdown(ctx),
			lp.Shutdown(ctx),
		)
	}, nil
}
