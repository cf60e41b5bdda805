// Package retry wraps the transport with bounded retry and exponential
// backoff. Only transient failures are retried; the error taxonomy decides
// which kinds those are.
package retry

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/lexfrei/go-pihole/apierr"
	"github.com/lexfrei/go-pihole/observability"
	"github.com/lexfrei/go-pihole/result"
	"github.com/lexfrei/go-pihole/internal/transport"
)

// Default retry policy values.
const (
	DefaultMaxRetries = 3
	DefaultDelayBase  = 1 * time.Second
	DefaultDelayMax   = 10 * time.Second
	DefaultMultiplier = 2.0
)

// Policy holds the retry budget and the backoff schedule parameters.
// The delay before retrying 0-based attempt i is
// min(DelayMax, DelayBase * Multiplier^i), with no jitter.
type Policy struct {
	MaxRetries int
	DelayBase  time.Duration
	DelayMax   time.Duration
	Multiplier float64
}

// DefaultPolicy returns the default retry policy (3 retries, 1s/2s/4s delays).
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries: DefaultMaxRetries,
		DelayBase:  DefaultDelayBase,
		DelayMax:   DefaultDelayMax,
		Multiplier: DefaultMultiplier,
	}
}

// Delay returns the backoff delay for the given 0-based attempt index.
func (p Policy) Delay(attempt int) time.Duration {
	delay := float64(p.DelayBase) * math.Pow(p.Multiplier, float64(attempt))
	if delay > float64(p.DelayMax) {
		return p.DelayMax
	}
	return time.Duration(delay)
}

// schedule builds a deterministic exponential backoff for one execution.
// RandomizationFactor 0 keeps the schedule exactly at the Policy formula,
// and MaxElapsedTime 0 means the schedule never stops on its own; the
// attempt budget bounds the loop instead.
func (p Policy) schedule() *backoff.ExponentialBackOff {
	schedule := backoff.NewExponentialBackOff()
	schedule.InitialInterval = p.DelayBase
	schedule.MaxInterval = p.DelayMax
	schedule.Multiplier = p.Multiplier
	schedule.RandomizationFactor = 0
	schedule.MaxElapsedTime = 0
	schedule.Reset()
	return schedule
}

// Config configures an Orchestrator.
type Config struct {
	Transport *transport.Transport
	Policy    Policy
	Logger    observability.Logger
	Metrics   observability.MetricsRecorder

	// Sleep overrides the backoff wait, used by tests to avoid real delays.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Orchestrator executes request descriptors with retry and backoff.
type Orchestrator struct {
	transport *transport.Transport
	policy    Policy
	logger    observability.Logger
	metrics   observability.MetricsRecorder
	sleep     func(ctx context.Context, d time.Duration) error
}

// New creates an Orchestrator from cfg, filling in noop observability and a
// context-aware sleep when unset.
func New(cfg Config) *Orchestrator {
	if cfg.Logger == nil {
		cfg.Logger = observability.NoopLogger()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = observability.NoopMetricsRecorder()
	}
	if cfg.Sleep == nil {
		cfg.Sleep = sleepContext
	}
	return &Orchestrator{
		transport: cfg.Transport,
		policy:    cfg.Policy,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
		sleep:     cfg.Sleep,
	}
}

// Execute runs desc through the transport with up to MaxRetries+1 attempts.
// Descriptors marked NoRetry make exactly one attempt. A non-retryable
// failure returns immediately; exhaustion returns the last failure.
func (o *Orchestrator) Execute(ctx context.Context, desc transport.Descriptor, auth http.Header) result.Result[json.RawMessage] {
	attempts := o.policy.MaxRetries + 1
	if desc.NoRetry {
		attempts = 1
	}

	schedule := o.policy.schedule()
	var last result.Result[json.RawMessage]

	for attempt := 0; attempt < attempts; attempt++ {
		res := o.transport.Attempt(ctx, desc, auth)
		if res.IsOk() {
			return res
		}
		last = res

		apiErr, ok := apierr.As(res.Err())
		if !ok || !apierr.IsRetryable(apiErr.Kind) {
			return res
		}
		if attempt == attempts-1 {
			break
		}

		delay := schedule.NextBackOff()
		if apiErr.RetryAfter > 0 {
			// The server asked for a specific wait; honor it over the schedule.
			delay = apiErr.RetryAfter
		}

		o.logger.Warn("retrying request",
			observability.Field{Key: "attempt", Value: attempt + 1},
			observability.Field{Key: "max_retries", Value: o.policy.MaxRetries},
			observability.Field{Key: "method", Value: desc.Method},
			observability.Field{Key: "path", Value: desc.Path},
			observability.Field{Key: "kind", Value: string(apiErr.Kind)},
			observability.Field{Key: "wait", Value: delay},
		)
		o.metrics.RecordRetry(attempt+1, desc.Path)

		if err := o.sleep(ctx, delay); err != nil {
			return result.Err[json.RawMessage](apierr.New(apierr.NetworkError, 0, "canceled during retry wait: "+err.Error()))
		}
	}

	return last
}

// sleepContext waits for d without blocking other goroutines, returning early
// when ctx is canceled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
