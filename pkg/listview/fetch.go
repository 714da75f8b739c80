package listview

import (
	"context"
	"sync"
	"time"
)

// Cache is a TTL cache with single-flight de-duplication: concurrent callers
// of Do with the same key share one underlying fetch. Errors are never
// cached.
type Cache[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*cacheEntry[T]
}

type cacheEntry[T any] struct {
	done    chan struct{} // closed when the fetch finishes
	value   T
	err     error
	expires time.Time
	settled bool
}

// NewCache creates a cache whose entries expire after ttl.
func NewCache[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*cacheEntry[T]),
	}
}

// Do returns the cached value for key when fresh; otherwise it runs fetch,
// caches the result, and returns it. Concurrent calls for the same key wait
// on the first caller's fetch instead of issuing their own.
func (c *Cache[T]) Do(ctx context.Context, key string, fetch func(context.Context) (T, error)) (T, error) {
	c.mu.Lock()
	if entry, ok := c.entries[key]; ok {
		if entry.settled && entry.err == nil && c.now().Before(entry.expires) {
			value := entry.value
			c.mu.Unlock()
			return value, nil
		}
		if !entry.settled {
			c.mu.Unlock()
			select {
			case <-entry.done:
				return entry.value, entry.err
			case <-ctx.Done():
				var zero T
				return zero, ctx.Err()
			}
		}
	}

	entry := &cacheEntry[T]{done: make(chan struct{})}
	c.entries[key] = entry
	c.mu.Unlock()

	value, err := fetch(ctx)

	c.mu.Lock()
	entry.value = value
	entry.err = err
	entry.settled = true
	entry.expires = c.now().Add(c.ttl)
	if err != nil && c.entries[key] == entry {
		// drop failed entries so the next call retries
		delete(c.entries, key)
	}
	close(entry.done)
	c.mu.Unlock()

	return value, err
}

// Put stores a value directly, refreshing the TTL. Used by Refetch so a
// forced reload also primes the cache.
func (c *Cache[T]) Put(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry := &cacheEntry[T]{done: make(chan struct{}), value: value, settled: true}
	entry.expires = c.now().Add(c.ttl)
	close(entry.done)
	c.entries[key] = entry
}

// Invalidate drops one key.
func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Fetcher wraps one view's data fetch. It layers three behaviors over the
// raw fetch func: TTL caching through a shared Cache, stale-while-revalidate
// (Loading reports true only while no prior data exists), and
// last-issued-wins when fetches race (a response from an older request is
// discarded if a newer one already landed).
type Fetcher[T any] struct {
	mu       sync.Mutex
	cache    *Cache[T]
	key      string
	fetch    func(context.Context) (T, error)
	nextGen  uint64
	applied  uint64
	data     T
	hasData  bool
	inFlight int
	errMsg   string
}

// NewFetcher creates a fetcher over a shared cache. Fetchers with the same
// cache and key share results within the TTL.
func NewFetcher[T any](cache *Cache[T], key string, fetch func(context.Context) (T, error)) *Fetcher[T] {
	return &Fetcher[T]{cache: cache, key: key, fetch: fetch}
}

// Load returns the data for this view, from the cache when fresh.
func (f *Fetcher[T]) Load(ctx context.Context) (T, error) {
	gen := f.begin()
	value, err := f.cache.Do(ctx, f.key, f.fetch)
	return f.finish(gen, value, err)
}

// Refetch bypasses the cache, fetches fresh data, and re-primes the cache.
func (f *Fetcher[T]) Refetch(ctx context.Context) (T, error) {
	gen := f.begin()
	value, err := f.fetch(ctx)
	if err == nil {
		f.cache.Put(f.key, value)
	}
	return f.finish(gen, value, err)
}

func (f *Fetcher[T]) begin() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextGen++
	f.inFlight++
	return f.nextGen
}

func (f *Fetcher[T]) finish(gen uint64, value T, err error) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight--

	// a later-issued request already landed; discard this response
	if gen <= f.applied {
		return f.data, nil
	}
	f.applied = gen

	if err != nil {
		// keep the prior data, record the failure
		f.errMsg = err.Error()
		return f.data, err
	}

	f.data = value
	f.hasData = true
	f.errMsg = ""
	return value, nil
}

// Data returns the last applied result and whether any result has landed.
func (f *Fetcher[T]) Data() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data, f.hasData
}

// Loading reports whether a fetch is running with no prior data to show.
// During a background revalidate over existing data it stays false.
func (f *Fetcher[T]) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight > 0 && !f.hasData
}

// Err returns the last fetch error message, or "" after a success.
func (f *Fetcher[T]) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}
