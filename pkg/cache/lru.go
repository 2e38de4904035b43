package cache

import (
	"container/list"
	"sync"
	"time"
)

type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time // zero means no expiry
}

// LRU is a thread-safe, size-bounded cache with optional per-entry expiry.
// At capacity the least recently used entry is evicted. Expired entries are
// dropped lazily when touched or when room is needed.
type LRU[K comparable, V any] struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time
	items    map[K]*list.Element
	order    *list.List
	mu       sync.Mutex
}

// Option configures an LRU.
type Option func(*options)

type options struct {
	ttl time.Duration
	now func() time.Time
}

// WithTTL sets the default lifetime of entries added with Put or PutIfAbsent.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) { o.ttl = ttl }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// NewLRU creates a cache holding at most capacity entries.
// It panics if capacity is not positive.
func NewLRU[K comparable, V any](capacity int, opts ...Option) *LRU[K, V] {
	if capacity <= 0 {
		panic("cache: LRU capacity must be positive")
	}
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &LRU[K, V]{
		capacity: capacity,
		ttl:      o.ttl,
		now:      o.now,
		items:    make(map[K]*list.Element),
		order:    list.New(),
	}
}

// Get returns the live value for key and marks it recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.live(key); ok {
		c.order.MoveToFront(e)
		return e.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key holds a live value, without touching recency.
func (c *LRU[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.live(key)
	return ok
}

// Put stores value under key with the default TTL.
func (c *LRU[K, V]) Put(key K, value V) {
	c.PutUntil(key, value, c.deadline())
}

// PutUntil stores value under key until expiresAt. A zero time never expires.
func (c *LRU[K, V]) PutUntil(key K, value V, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		ent := e.Value.(*entry[K, V])
		ent.value = value
		ent.expiresAt = expiresAt
		c.order.MoveToFront(e)
		return
	}
	c.insert(key, value, expiresAt)
}

// PutIfAbsent stores value only if key has no live value and reports whether
// it did. It is the atomic "first use wins" check for one-time tokens.
func (c *LRU[K, V]) PutIfAbsent(key K, value V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.live(key); ok {
		return false
	}
	c.insert(key, value, c.deadline())
	return true
}

// Remove deletes key and reports whether a live value was present.
func (c *LRU[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.live(key)
	if e, found := c.items[key]; found {
		c.remove(e)
	}
	return ok
}

// Len returns the number of stored entries, including expired ones not yet dropped.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *LRU[K, V]) deadline() time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return c.now().Add(c.ttl)
}

// live returns the element for key if present and unexpired, dropping it if expired.
// Must be called with the lock held.
func (c *LRU[K, V]) live(key K) (*list.Element, bool) {
	e, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if c.expired(e.Value.(*entry[K, V])) {
		c.remove(e)
		return nil, false
	}
	return e, true
}

func (c *LRU[K, V]) expired(ent *entry[K, V]) bool {
	return !ent.expiresAt.IsZero() && !c.now().Before(ent.expiresAt)
}

// Must be called with the lock held.
func (c *LRU[K, V]) insert(key K, value V, expiresAt time.Time) {
	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value, expiresAt: expiresAt})

	for c.order.Len() > c.capacity {
		c.evict()
	}
}

// evict drops an expired entry if one exists, otherwise the least recently used.
// Must be called with the lock held.
func (c *LRU[K, V]) evict() {
	for e := c.order.Back(); e != nil; e = e.Prev() {
		if c.expired(e.Value.(*entry[K, V])) {
			c.remove(e)
			return
		}
	}
	if back := c.order.Back(); back != nil {
		c.remove(back)
	}
}

// Must be called with the lock held.
func (c *LRU[K, V]) remove(e *list.Element) {
	c.order.Remove(e)
	delete(c.items, e.Value.(*entry[K, V]).key)
}
