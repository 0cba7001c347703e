// Package notifier delivers outbound conversion postbacks over HTTP with
// bounded retry and exponential backoff.
package notifier

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// HTTPNotifier implements port.Notifier with a plain GET per postback, the
// convention of S2S tracking integrations. Transient failures (network
// errors, 429, 5xx) are retried up to maxAttempts with doubling delays;
// other statuses fail immediately.
type HTTPNotifier struct {
	client      *http.Client
	logger      *slog.Logger
	maxAttempts int
	baseDelay   time.Duration
}

// NewHTTPNotifier builds a notifier with a per-attempt timeout. attempts
// below 1 and a zero timeout fall back to 3 attempts and 15 seconds.
func NewHTTPNotifier(logger *slog.Logger, timeout time.Duration, attempts int) *HTTPNotifier {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if attempts < 1 {
		attempts = 3
	}
	return &HTTPNotifier{
		client:      &http.Client{Timeout: timeout},
		logger:      logger,
		maxAttempts: attempts,
		baseDelay:   time.Second,
	}
}

// Deliver fires the postback, retrying transient failures. An error means
// every attempt failed or the context ended first.
func (n *HTTPNotifier) Deliver(ctx context.Context, url string) error {
	var lastErr error

	for attempt := 1; attempt <= n.maxAttempts; attempt++ {
		if attempt > 1 {
			delay := n.baseDelay << (attempt - 2)
			n.logger.Debug("postback retry",
				slog.Int("attempt", attempt), slog.Duration("delay", delay))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("postback canceled after %d attempts: %w", attempt-1, lastErr)
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("build postback request: %w", err)
		}

		resp, err := n.client.Do(req)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return fmt.Errorf("postback canceled: %w", err)
			}
			continue
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}
		if !retryableStatus(resp.StatusCode) {
			return fmt.Errorf("postback rejected with status %d", resp.StatusCode)
		}
		lastErr = fmt.Errorf("postback returned status %d", resp.StatusCode)
	}

	return fmt.Errorf("postback failed after %d attempts: %w", n.maxAttempts, lastErr)
}

// retryableStatus reports whether a status indicates a transient server
// condition. Client errors are final.
func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
