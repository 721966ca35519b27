// Package logger provides a global, Sugared Zap logger with optional
// OpenTelemetry integration. It supports configuring log level and encoding
// via functional options, writes to stdout, and automatically adds an OTEL
// bridge core when a telemetry logger provider is available.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/gabapcia/walletsweep/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// EncodingConsole renders one human readable, timestamped line per entry.
	EncodingConsole = "console"

	// EncodingJSON renders one JSON object per entry.
	EncodingJSON = "json"
)

var (
	// logger is the global SugaredLogger instance. It discards everything
	// until Init is called.
	logger = zap.NewNop().Sugar()

	// initOnce ensures the logger is only configured a single time.
	initOnce sync.Once
)

// config holds configuration options for the logger.
type config struct {
	level    string    // the minimum log level (debug, info, warn, error, panic, fatal)
	encoding string    // console or json
	output   io.Writer // destination of the base core
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level for the global logger.
// Example levels: "debug", "info", "warn", "error", "panic", "fatal".
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithEncoding selects the entry encoding, EncodingConsole or EncodingJSON.
func WithEncoding(e string) Option {
	return func(c *config) {
		c.encoding = e
	}
}

// WithOutput redirects the base core. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// newEncoder builds the zap encoder for the configured encoding.
//
// The console encoder uses a short wall-clock timestamp so progress lines
// read like "[15:04:05] INFO message key=value".
func newEncoder(encoding string) zapcore.Encoder {
	if encoding == EncodingJSON {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("[15:04:05]")
	cfg.CallerKey = zapcore.OmitKey
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// Init configures the global logger. It accepts zero or more Option values to
// customize behavior (e.g. WithLevel). By default, it logs console lines to
// stdout at the "info" level. If an OpenTelemetry LoggerProvider is registered
// via telemetry.LoggerProvider(), this adds an OTEL bridge core to forward logs
// to the telemetry backend. Calling Init multiple times has no effect after the
// first successful initialization.
//
// Returns an error if parsing the log level fails.
func Init(opts ...Option) error {
	cfg := config{
		level:    "info",
		encoding: EncodingConsole,
		output:   os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Parse the configured log level.
	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	// Perform one-time setup.
	initOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(newEncoder(cfg.encoding), zapcore.AddSync(cfg.output), level),
		}

		// If telemetry is configured, add OTEL bridge core.
		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore("walletsweep", otelzap.WithLoggerProvider(lp)))
		}

		logger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return logger.Sync()
}

// withTrace appends the trace id of the span carried by ctx, if any.
func withTrace(ctx context.Context, keysAndValues []any) []any {
	if ctx == nil {
		return keysAndValues
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return keysAndValues
	}

	return append(keysAndValues, "trace_id", sc.TraceID().String())
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Debugw(msg, withTrace(ctx, keysAndValues)...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Infow(msg, withTrace(ctx, keysAndValues)...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Warnw(msg, withTrace(ctx, keysAndValues)...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Errorw(msg, withTrace(ctx, keysAndValues)...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Fatalw(msg, withTrace(ctx, keysAndValues)...)
}
