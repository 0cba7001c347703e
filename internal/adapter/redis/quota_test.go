package redisadapter

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"trackpanel/internal/core/port"
)

func newTestQuota(t *testing.T) (*Quota, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewQuota(client), srv
}

func TestQuotaAcquireRespectsCap(t *testing.T) {
	quota, _ := newTestQuota(t)
	key := port.QuotaKey{CampaignID: 11, PublisherID: "2", Day: "2025-03-10"}

	for i := 0; i < 3; i++ {
		ok, err := quota.Acquire(context.Background(), key, 3, time.Hour)
		if err != nil {
			t.Fatalf("acquire %d: %v", i, err)
		}
		if !ok {
			t.Fatalf("acquire %d rejected under cap", i)
		}
	}
	ok, err := quota.Acquire(context.Background(), key, 3, time.Hour)
	if err != nil {
		t.Fatalf("acquire over cap: %v", err)
	}
	if ok {
		t.Fatal("acquire admitted past the cap")
	}
}

// Many goroutines racing the same counter must admit exactly cap events.
func TestQuotaAcquireConcurrent(t *testing.T) {
	quota, _ := newTestQuota(t)
	key := port.QuotaKey{CampaignID: 11, Day: "2025-03-10"}

	const (
		workers = 50
		cap     = 10
	)
	var (
		wg       sync.WaitGroup
		admitted atomic.Int64
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := quota.Acquire(context.Background(), key, cap, time.Hour)
			if err != nil {
				t.Errorf("acquire: %v", err)
				return
			}
			if ok {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := admitted.Load(); got != cap {
		t.Fatalf("admitted %d events, want exactly %d", got, cap)
	}
}

func TestQuotaSetResync(t *testing.T) {
	quota, _ := newTestQuota(t)
	key := port.QuotaKey{CampaignID: 11, PublisherID: "2", Day: "2025-03-10"}

	// Exhaust the cap, then resync down to 1: one more slot opens up.
	for i := 0; i < 2; i++ {
		if ok, _ := quota.Acquire(context.Background(), key, 2, time.Hour); !ok {
			t.Fatalf("acquire %d rejected", i)
		}
	}
	if err := quota.Set(context.Background(), key, 1, time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}
	ok, err := quota.Acquire(context.Background(), key, 2, time.Hour)
	if err != nil {
		t.Fatalf("acquire after resync: %v", err)
	}
	if !ok {
		t.Fatal("resynced counter should admit one more event")
	}
}

func TestQuotaDayKeysAreIsolated(t *testing.T) {
	quota, _ := newTestQuota(t)
	today := port.QuotaKey{CampaignID: 11, PublisherID: "2", Day: "2025-03-10"}
	tomorrow := port.QuotaKey{CampaignID: 11, PublisherID: "2", Day: "2025-03-11"}

	if ok, _ := quota.Acquire(context.Background(), today, 1, time.Hour); !ok {
		t.Fatal("first acquire rejected")
	}
	if ok, _ := quota.Acquire(context.Background(), today, 1, time.Hour); ok {
		t.Fatal("today's counter should be exhausted")
	}
	if ok, _ := quota.Acquire(context.Background(), tomorrow, 1, time.Hour); !ok {
		t.Fatal("tomorrow's counter must start fresh")
	}
}

func TestQuotaCounterExpires(t *testing.T) {
	quota, srv := newTestQuota(t)
	key := port.QuotaKey{CampaignID: 11, Day: "2025-03-10"}

	if ok, _ := quota.Acquire(context.Background(), key, 1, time.Minute); !ok {
		t.Fatal("first acquire rejected")
	}
	srv.FastForward(2 * time.Minute)
	if ok, _ := quota.Acquire(context.Background(), key, 1, time.Minute); !ok {
		t.Fatal("expired counter must reset")
	}
}
