package gpapi

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/DanielPopoola/gp-payment-gateway/internal/application"
	"github.com/DanielPopoola/gp-payment-gateway/internal/config"
)

// retryPolicy is only applied to idempotent calls. Authorize and capture are
// sent once.
type retryPolicy struct {
	baseDelay  time.Duration
	maxRetries int
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	return retryPolicy{
		baseDelay:  cfg.BaseDelay,
		maxRetries: maxRetries,
	}
}

// Generic retry helper
func retry[T any](ctx context.Context, p retryPolicy, operation func(ctx context.Context) (*T, error)) (*T, error) {
	var lastErr error

	for attempt := 0; attempt < p.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, transportError(0, msgUnreachable, ctx.Err())
		default:
		}

		resp, err := operation(ctx)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !application.IsRetryable(err) {
			return nil, err
		}

		if attempt < p.maxRetries-1 {
			timer := time.NewTimer(p.backoff(attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, transportError(0, msgUnreachable, ctx.Err())
			case <-timer.C:
			}
		}
	}

	if gwErr, ok := application.IsGatewayError(lastErr); ok {
		return nil, &application.GatewayError{
			Code:       gwErr.Code,
			Message:    gwErr.Message,
			StatusCode: gwErr.StatusCode,
			Err:        fmt.Errorf("maximum retries exceeded: %w", gwErr.Err),
		}
	}
	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

// Backoff calculation with exponential delay and jitter
func (p retryPolicy) backoff(attempt int) time.Duration {
	base := p.baseDelay * time.Duration(1<<attempt)

	var jitter time.Duration
	if half := int64(p.baseDelay / 2); half > 0 {
		jitter = time.Duration(rand.Int63n(half))
	}

	return base + jitter
}
