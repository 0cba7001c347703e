package port

import (
	"context"
	"fmt"
	"time"
)

// QuotaKey identifies one daily sampled-conversion counter. PublisherID is
// empty for campaign-wide rules. Day is the local calendar day in
// YYYY-MM-DD form.
type QuotaKey struct {
	CampaignID  int64
	PublisherID string
	Day         string
}

// String renders the key for storage backends.
func (k QuotaKey) String() string {
	pub := k.PublisherID
	if pub == "" {
		pub = "all"
	}
	return fmt.Sprintf("sampling:quota:%d:%s:%s", k.CampaignID, pub, k.Day)
}

// SampleQuota is the counter behind fixed-mode sampling rules. Two
// simultaneous conversions must never both be admitted under a cap they
// jointly exceed, so Acquire is a single atomic compare-then-increment,
// never a read followed by a write.
type SampleQuota interface {
	// Acquire increments the counter iff it is still below cap and reports
	// whether the increment happened. ttl bounds the counter's lifetime
	// (until the next local midnight).
	Acquire(ctx context.Context, key QuotaKey, cap int64, ttl time.Duration) (bool, error)
	// Set overwrites the counter, used to resync live state after a
	// reprocess rewrote today's statuses.
	Set(ctx context.Context, key QuotaKey, n int64, ttl time.Duration) error
}
