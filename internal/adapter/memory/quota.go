package memory

import (
	"context"
	"sync"
	"time"

	"trackpanel/internal/core/port"
)

// Quota is an in-process port.SampleQuota for single-node deployments
// without Redis, and for tests. A single mutex serializes the
// check-then-increment, which is sufficient when one process owns all
// decisions for a counter.
type Quota struct {
	mu       sync.Mutex
	counters map[port.QuotaKey]*counter
}

type counter struct {
	n       int64
	expires time.Time
}

// NewQuota returns an empty in-memory quota.
func NewQuota() *Quota {
	return &Quota{counters: make(map[port.QuotaKey]*counter)}
}

func (q *Quota) Acquire(_ context.Context, key port.QuotaKey, cap int64, ttl time.Duration) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	c := q.live(key)
	if c == nil {
		c = &counter{expires: time.Now().Add(ttl)}
		q.counters[key] = c
	}
	if c.n >= cap {
		return false, nil
	}
	c.n++
	return true, nil
}

func (q *Quota) Set(_ context.Context, key port.QuotaKey, n int64, ttl time.Duration) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.counters[key] = &counter{n: n, expires: time.Now().Add(ttl)}
	return nil
}

// live returns the counter for key, dropping it when expired. Callers hold
// the mutex.
func (q *Quota) live(key port.QuotaKey) *counter {
	c, ok := q.counters[key]
	if !ok {
		return nil
	}
	if time.Now().After(c.expires) {
		delete(q.counters, key)
		return nil
	}
	return c
}
