package port

import "context"

// Notifier delivers an outbound postback to a partner URL. Implementations
// retry transient failures a bounded number of times with backoff and a
// per-attempt timeout; an error means retries were exhausted. Callers fire
// notifications asynchronously and never fail the triggering request on a
// delivery error.
type Notifier interface {
	Deliver(ctx context.Context, url string) error
}
