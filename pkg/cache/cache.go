// Package cache holds small process-wide values with an explicit freshness window.
package cache

import (
	"sync"
	"time"
)

// Value caches a single value of type T for a fixed TTL.
// A zero TTL means every stored value is immediately stale.
type Value[T any] struct {
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	value    T
	storedAt time.Time
	set      bool
}

func New[T any](ttl time.Duration) *Value[T] {
	return NewWithClock[T](ttl, time.Now)
}

func NewWithClock[T any](ttl time.Duration, now func() time.Time) *Value[T] {
	return &Value[T]{ttl: ttl, now: now}
}

// Get returns the last stored value and whether it is still inside the TTL.
// The value is returned even when stale so callers can serve it on a refresh failure.
func (c *Value[T]) Get() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.set {
		var zero T
		return zero, false
	}
	return c.value, c.now().Sub(c.storedAt) < c.ttl
}

func (c *Value[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	c.storedAt = c.now()
	c.set = true
	c.mu.Unlock()
}

// Invalidate drops the stored value
func (c *Value[T]) Invalidate() {
	c.mu.Lock()
	var zero T
	c.value = zero
	c.set = false
	c.mu.Unlock()
}
