package batch

import (
	"context"
	"time"

	"github.com/gabapcia/walletsweep/internal/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/walletsweep/internal/batch"

// Worker performs the unit of work of a single job.
//
// A returned error is recorded as a failed Result and never stops the batch.
// Workers report skips through the returned Result instead.
type Worker interface {
	Process(ctx context.Context, job Job) (Result, error)
}

// Processor runs jobs through a Worker one at a time.
type Processor interface {
	// Run executes jobs in order and returns one Result per job.
	//
	// It stops early only when ctx is canceled, returning the results
	// gathered so far together with the context error.
	Run(ctx context.Context, jobs []Job) ([]Result, error)
}

// SleepFunc waits for d or until ctx is done, whichever happens first.
type SleepFunc func(ctx context.Context, d time.Duration) error

// config holds optional processor settings.
type config struct {
	delay time.Duration
	sleep SleepFunc
}

// Option customizes a Processor.
type Option func(*config)

// WithDelay sets the pause between two consecutive worker calls.
//
// Default: 5 seconds.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithSleep replaces the function used to wait between worker calls.
func WithSleep(fn SleepFunc) Option {
	return func(c *config) {
		c.sleep = fn
	}
}

// processor is the sequential Processor implementation.
type processor struct {
	worker Worker
	delay  time.Duration
	sleep  SleepFunc

	tracer  trace.Tracer
	jobsCnt metric.Int64Counter
}

var _ Processor = (*processor)(nil)

// New creates a Processor that hands every job to worker.
func New(worker Worker, opts ...Option) *processor {
	cfg := config{
		delay: 5 * time.Second,
		sleep: Sleep,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Instrument creation only fails on an invalid name.
	jobsCnt, _ := otel.Meter(instrumentationName).Int64Counter(
		"batch.jobs",
		metric.WithDescription("Jobs processed, by final status."),
	)

	return &processor{
		worker:  worker,
		delay:   cfg.delay,
		sleep:   cfg.sleep,
		tracer:  otel.Tracer(instrumentationName),
		jobsCnt: jobsCnt,
	}
}

// Sleep waits for d or until ctx is done. It is the default SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Run implements Processor.
//
// The delay is applied between worker calls only: never before the first one
// and never after the last. Jobs that carry an Err are recorded without
// calling the worker and without waiting.
func (p *processor) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, 0, len(jobs))
	called := false

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		if job.Err != nil {
			res := NewResult(job).Fail(job.Err)
			p.record(ctx, res)
			logger.Error(ctx, "row rejected", "row", job.Row, "error", job.Err)
			results = append(results, res)
			continue
		}

		if called {
			logger.Debug(ctx, "waiting before next job", "delay", p.delay)
			if err := p.sleep(ctx, p.delay); err != nil {
				return results, err
			}
		}
		called = true

		logger.Info(ctx, "processing job", "job", i+1, "total", len(jobs), "row", job.Row, "role", job.Role)

		res := p.process(ctx, job)
		results = append(results, res)

		if res.Status == StatusFailed && ctx.Err() != nil {
			return results, ctx.Err()
		}
	}

	return results, nil
}

// process runs a single job inside its own span and turns a worker error
// into a failed Result.
func (p *processor) process(ctx context.Context, job Job) Result {
	ctx, span := p.tracer.Start(ctx, "batch.job", trace.WithAttributes(
		attribute.Int("batch.row", job.Row),
		attribute.String("batch.role", string(job.Role)),
	))
	defer span.End()

	res, err := p.worker.Process(ctx, job)
	if res.Identifier == "" {
		res.Identifier = job.Identifier
		res.Role = job.Role
		res.Row = job.Row
	}
	if res.Status == "" {
		res.Status = StatusSucceeded
	}

	if err != nil {
		res = res.Fail(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	span.SetAttributes(
		attribute.String("batch.status", string(res.Status)),
		attribute.String("wallet.address", res.Address),
	)
	p.record(ctx, res)

	switch res.Status {
	case StatusFailed:
		logger.Error(ctx, "job failed", "row", res.Row, "address", res.Address, "reason", res.Reason)
	case StatusSkipped:
		logger.Warn(ctx, "job skipped", "row", res.Row, "address", res.Address, "reason", res.Reason)
	default:
		kv := []any{"row", res.Row, "address", res.Address}
		if res.Amount.Valid {
			kv = append(kv, "amount", res.Amount.Decimal.String())
		}
		if len(res.TxHashes) > 0 {
			kv = append(kv, "txs", res.TxHashes)
		}
		logger.Info(ctx, "job succeeded", kv...)
	}

	return res
}

func (p *processor) record(ctx context.Context, res Result) {
	if p.jobsCnt == nil {
		return
	}

	p.jobsCnt.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(res.Status))))
}
