package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// RetryProvider re-issues failed generation calls. A course request is a
// single long round trip per user action, so a transient vendor failure
// is worth a short wait or two before the caller gives up and serves the
// fallback course. Conditions a retry cannot cure fail straight through:
// a cancelled context, output truncated by the token budget, or a second
// schema-invalid response in a row.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps p so transient failures are retried per cfg.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, cfg: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := r.cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	wait := r.cfg.InitialWait
	sawInvalid := false
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if attempt == attempts-1 || !retryable(err, &sawInvalid) {
			break
		}

		delay := wait
		var rl *ErrRateLimit
		if errors.As(err, &rl) && rl.RetryAfter > 0 {
			delay = rl.RetryAfter
		} else {
			// ±20% jitter keeps simultaneous sessions from retrying in step.
			delay += time.Duration((rand.Float64()*0.4 - 0.2) * float64(delay))
			wait = time.Duration(float64(wait) * r.cfg.Multiplier)
			if wait > r.cfg.MaxWait {
				wait = r.cfg.MaxWait
			}
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// retryable classifies a failure. Schema-invalid output gets exactly one
// regeneration, since a model that produced garbage once often corrects
// itself but rarely on a third try. Rate limits, outages, and plain
// network errors get the full attempt budget. Anything the caller caused
// gets none.
func retryable(err error, sawInvalid *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		// The same request would be truncated the same way.
		return false
	}

	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		if *sawInvalid {
			return false
		}
		*sawInvalid = true
		return true
	}

	return true
}
