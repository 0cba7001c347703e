package redisadapter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trackpanel/internal/core/port"
)

// Quota implements port.SampleQuota on Redis. The check and the increment
// run inside one Lua script, so the GET → check → INCR race of a naive
// client-side implementation cannot over-admit past the cap, no matter how
// many tracker instances share the counter.
const acquireScript = `
local current = tonumber(redis.call("GET", KEYS[1]) or "0")
local cap = tonumber(ARGV[1])
if current >= cap then
    return 0
end
local new = redis.call("INCR", KEYS[1])
if new == 1 then
    redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 1
`

type Quota struct {
	client  *redis.Client
	acquire *redis.Script
}

// NewQuota returns a quota backed by the given Redis client.
func NewQuota(client *redis.Client) *Quota {
	return &Quota{
		client:  client,
		acquire: redis.NewScript(acquireScript),
	}
}

// Acquire atomically admits the event iff the day's counter is still below
// cap.
func (q *Quota) Acquire(ctx context.Context, key port.QuotaKey, cap int64, ttl time.Duration) (bool, error) {
	res, err := q.acquire.Run(ctx, q.client, []string{key.String()}, cap, ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("quota acquire %s: %w", key, err)
	}
	return res == 1, nil
}

// Set overwrites the counter, keeping the remaining day as its lifetime.
func (q *Quota) Set(ctx context.Context, key port.QuotaKey, n int64, ttl time.Duration) error {
	if err := q.client.Set(ctx, key.String(), n, ttl).Err(); err != nil {
		return fmt.Errorf("quota set %s: %w", key, err)
	}
	return nil
}
