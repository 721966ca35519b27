// Package retry repeats an operation until it succeeds, a non-retryable error
// is returned, the attempt budget is spent or the context is done. It is a
// small facade over avast/retry-go.
//
// Receipt polling, for instance, runs at a fixed cadence and only as long as
// the caller's context allows:
//
//	poller := retry.New(
//	    retry.WithAttempts(0),
//	    retry.WithDelay(2*time.Second),
//	    retry.WithFixedDelay(),
//	    retry.WithRetryIf(func(err error) bool { return errors.Is(err, errPending) }),
//	)
//	err := poller.Execute(ctx, lookup)
package retry

import (
	"context"
	"time"

	retrygo "github.com/avast/retry-go/v4"
)

// Retry runs an operation under a retry policy.
type Retry interface {
	// Execute calls operation until it returns nil or the policy gives up.
	// A done ctx stops the loop and its error is returned.
	Execute(ctx context.Context, operation func() error) error
}

// config holds the policy of a retrier.
type config struct {
	attempts    uint                          // 0 means until ctx is done
	delay       time.Duration                 // first pause, or every pause when fixed
	maxDelay    time.Duration                 // cap of the exponential backoff
	lastErrOnly bool                          // return the last error instead of all of them
	fixed       bool                          // constant pause instead of backoff
	retryIf     func(err error) bool          // nil retries every error
	onRetry     func(attempt uint, err error) // observes each failed attempt that will be retried
}

// Option customizes the policy built by New.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry with the given options applied over the defaults:
// 3 attempts, exponential backoff from 1s capped at 5s, last error only.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{cfg: cfg}
}

// Execute implements Retry.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	delayType := retrygo.BackOffDelay
	if r.cfg.fixed {
		delayType = retrygo.FixedDelay
	}

	options := []retrygo.Option{
		retrygo.Context(ctx),
		retrygo.Attempts(r.cfg.attempts),
		retrygo.Delay(r.cfg.delay),
		retrygo.MaxDelay(r.cfg.maxDelay),
		retrygo.DelayType(delayType),
		retrygo.LastErrorOnly(r.cfg.lastErrOnly),
	}
	if r.cfg.retryIf != nil {
		options = append(options, retrygo.RetryIf(r.cfg.retryIf))
	}
	if r.cfg.onRetry != nil {
		options = append(options, retrygo.OnRetry(r.cfg.onRetry))
	}

	return retrygo.Do(operation, options...)
}

// WithAttempts sets how many times the operation runs in total. Zero removes
// the limit, leaving ctx as the only bound.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the pause before the second attempt.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the backoff pause.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly chooses between the last error (true) and all errors
// joined together (false).
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithFixedDelay pauses exactly the configured delay between attempts.
func WithFixedDelay() Option {
	return func(c *config) {
		c.fixed = true
	}
}

// WithRetryIf retries only errors for which fn returns true. Other errors
// end Execute at once.
func WithRetryIf(fn func(err error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}

// WithOnRetry registers fn to observe every failed attempt that is going to
// be retried. Attempts are numbered from 0.
func WithOnRetry(fn func(attempt uint, err error)) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}
