package token_bucket

import (
	"sync"
	"time"
)

// TokenBucket admits up to capacity requests in a burst and refills at
// refillRate tokens per second.
type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        func() time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return newTokenBucket(capacity, refillRate, time.Now)
}

func newTokenBucket(capacity int, refillRate float64, now func() time.Time) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}

// Keyed keeps one bucket per key, e.g. one per webhook provider, so a
// noisy provider cannot starve the others.
type Keyed struct {
	capacity   int
	refillRate float64
	now        func() time.Time

	mu      sync.Mutex
	buckets map[string]*TokenBucket
}

func NewKeyed(capacity int, refillRate float64) *Keyed {
	return &Keyed{
		capacity:   capacity,
		refillRate: refillRate,
		now:        time.Now,
		buckets:    make(map[string]*TokenBucket),
	}
}

func (k *Keyed) Allow(key string) bool {
	k.mu.Lock()
	bucket, ok := k.buckets[key]
	if !ok {
		bucket = newTokenBucket(k.capacity, k.refillRate, k.now)
		k.buckets[key] = bucket
	}
	k.mu.Unlock()

	return bucket.Allow()
}
