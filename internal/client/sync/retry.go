package sync

import (
	"context"
	"errors"
	"net"
	"syscall"
	"time"

	httpclient "github.com/listenupapp/listenup-client/internal/client/api"
	"github.com/listenupapp/listenup-client/internal/client/storage"
)

// RetryConfig tunes the exponential backoff applied to retryable
// failures.
type RetryConfig struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// DefaultRetryConfig is the backoff used by queue draining.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:   3,
		InitialDelay: time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
}

// RetryCallback fires before each backoff wait so the UI can show
// "retrying attempt N of M".
type RetryCallback func(attempt, maxAttempts int)

// WithRetry executes fn, retrying retryable failures with exponential
// backoff. Non-retryable errors and cancellation are rethrown
// immediately; after MaxRetries attempts the last error is returned.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, onRetry RetryCallback, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	delay := cfg.InitialDelay
	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}

		// Cooperative cancellation is never swallowed
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		if errors.Is(err, context.Canceled) {
			return zero, err
		}

		if !IsRetryable(err) {
			return zero, err
		}
		lastErr = err

		if attempt == cfg.MaxRetries {
			break
		}
		if onRetry != nil {
			onRetry(attempt, cfg.MaxRetries)
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
	return zero, lastErr
}

// IsRetryable classifies an error for the retry loop:
//   - 4xx responses are non-retryable (the request is wrong)
//   - 5xx responses, timeouts and connection errors are retryable
//   - cancellation is non-retryable
//   - local storage errors are non-retryable (retrying cannot help)
//   - anything unclassified defaults to retryable
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if httpclient.IsClientError(err) {
		return false
	}
	if httpclient.IsServerError(err) {
		return true
	}
	if isStorageError(err) {
		return false
	}
	// Request deadline, dial failures and friends
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return true
}

// IsServerUnreachable walks the cause chain looking for signatures of a
// down or unreachable server, so the UI can distinguish "server is
// down" from "request failed but server is up".
func IsServerUnreachable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ETIMEDOUT) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

func isStorageError(err error) bool {
	return errors.Is(err, storage.ErrStorageClosed) ||
		errors.Is(err, storage.ErrBookNotFound) ||
		errors.Is(err, storage.ErrContributorNotFound) ||
		errors.Is(err, storage.ErrSeriesNotFound) ||
		errors.Is(err, storage.ErrStateNotFound) ||
		errors.Is(err, storage.ErrPreferencesNotFound) ||
		errors.Is(err, storage.ErrOperationNotFound)
}
