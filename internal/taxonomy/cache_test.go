package taxonomy

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// countingProvider tracks how often the inner provider is hit.
type countingProvider struct {
	inner Provider
	calls int
}

func (c *countingProvider) Specialties(ctx context.Context) ([]Specialty, error) {
	c.calls++
	return c.inner.Specialties(ctx)
}

func (c *countingProvider) Subspecialties(ctx context.Context, title string) ([]string, error) {
	return c.inner.Subspecialties(ctx, title)
}

func newTestCache(t *testing.T) (*Cache, *countingProvider, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	counting := &countingProvider{inner: NewStatic([]Specialty{
		{Title: "Cardiology", Subspecialties: []string{"Electrophysiology"}},
	})}
	return NewCache(counting, rdb, time.Minute), counting, mr
}

func TestCache_ReadThrough(t *testing.T) {
	cache, counting, _ := newTestCache(t)
	ctx := context.Background()

	first, err := cache.Specialties(ctx)
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	second, err := cache.Specialties(ctx)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}

	if counting.calls != 1 {
		t.Errorf("inner provider hit %d times, want 1", counting.calls)
	}
	if len(first) != 1 || len(second) != 1 || second[0].Title != "Cardiology" {
		t.Errorf("cached read returned %+v", second)
	}
}

func TestCache_SubspecialtiesThroughCache(t *testing.T) {
	cache, counting, _ := newTestCache(t)
	ctx := context.Background()

	subs, err := cache.Subspecialties(ctx, "cardiology")
	if err != nil {
		t.Fatalf("Subspecialties: %v", err)
	}
	if len(subs) != 1 || subs[0] != "Electrophysiology" {
		t.Errorf("subs = %v", subs)
	}

	if _, err := cache.Subspecialties(ctx, "Cardiology"); err != nil {
		t.Fatalf("second Subspecialties: %v", err)
	}
	if counting.calls != 1 {
		t.Errorf("inner provider hit %d times, want 1", counting.calls)
	}
}

func TestCache_CorruptEntryRefilled(t *testing.T) {
	cache, counting, mr := newTestCache(t)
	ctx := context.Background()

	mr.Set(cacheKey, "not json")

	specs, err := cache.Specialties(ctx)
	if err != nil {
		t.Fatalf("Specialties: %v", err)
	}
	if len(specs) != 1 {
		t.Errorf("got %d specialties, want 1", len(specs))
	}
	if counting.calls != 1 {
		t.Errorf("inner provider hit %d times, want 1", counting.calls)
	}
}

func TestCache_RedisDownFallsThrough(t *testing.T) {
	cache, counting, mr := newTestCache(t)
	ctx := context.Background()

	mr.Close()

	specs, err := cache.Specialties(ctx)
	if err != nil {
		t.Fatalf("Specialties with redis down: %v", err)
	}
	if len(specs) != 1 {
		t.Errorf("got %d specialties, want 1", len(specs))
	}
	if counting.calls != 1 {
		t.Errorf("inner provider hit %d times, want 1", counting.calls)
	}
}

func TestCache_Expiry(t *testing.T) {
	cache, counting, mr := newTestCache(t)
	ctx := context.Background()

	if _, err := cache.Specialties(ctx); err != nil {
		t.Fatalf("prime: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, err := cache.Specialties(ctx); err != nil {
		t.Fatalf("after expiry: %v", err)
	}
	if counting.calls != 2 {
		t.Errorf("inner provider hit %d times, want 2", counting.calls)
	}
}
