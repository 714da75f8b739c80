package listview

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheHitWithinTTL(t *testing.T) {
	cache := NewCache[string](time.Minute)
	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		value, err := cache.Do(context.Background(), "k", fetch)
		require.NoError(t, err)
		assert.Equal(t, "value", value)
	}
	assert.Equal(t, 1, calls)
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCache[string](time.Minute)
	current := time.Now()
	cache.now = func() time.Time { return current }

	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		return "value", nil
	}

	_, err := cache.Do(context.Background(), "k", fetch)
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)
	_, err = cache.Do(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCacheErrorsNotCached(t *testing.T) {
	cache := NewCache[string](time.Minute)
	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("boom")
		}
		return "recovered", nil
	}

	_, err := cache.Do(context.Background(), "k", fetch)
	require.Error(t, err)

	value, err := cache.Do(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, "recovered", value)
	assert.Equal(t, 2, calls)
}

func TestCacheSingleFlight(t *testing.T) {
	cache := NewCache[string](time.Minute)

	entered := make(chan struct{})
	release := make(chan struct{})
	calls := 0
	var callMu sync.Mutex

	fetch := func(ctx context.Context) (string, error) {
		callMu.Lock()
		calls++
		callMu.Unlock()
		close(entered)
		<-release
		return "shared", nil
	}

	results := make(chan string, 2)
	go func() {
		v, _ := cache.Do(context.Background(), "k", fetch)
		results <- v
	}()
	<-entered

	// second caller arrives while the first fetch is in flight
	go func() {
		v, _ := cache.Do(context.Background(), "k", fetch)
		results <- v
	}()

	// give the second goroutine a moment to block on the pending entry
	time.Sleep(10 * time.Millisecond)
	close(release)

	assert.Equal(t, "shared", <-results)
	assert.Equal(t, "shared", <-results)
	assert.Equal(t, 1, calls, "two fetchers sharing a key must fetch once")
}

func TestFetcherLoadUsesCache(t *testing.T) {
	cache := NewCache[[]string](time.Minute)
	calls := 0
	fetch := func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a"}, nil
	}

	first := NewFetcher(cache, "events:p1", fetch)
	second := NewFetcher(cache, "events:p1", fetch)

	_, err := first.Load(context.Background())
	require.NoError(t, err)
	_, err = second.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, calls)

	data, ok := second.Data()
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, data)
}

func TestFetcherRefetchBypassesCache(t *testing.T) {
	cache := NewCache[string](time.Minute)
	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		return "fresh", nil
	}

	f := NewFetcher(cache, "k", fetch)
	_, err := f.Load(context.Background())
	require.NoError(t, err)
	_, err = f.Refetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, calls)

	// refetch re-primed the cache for other fetchers
	other := NewFetcher(cache, "k", fetch)
	_, err = other.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestFetcherStaleWhileRevalidate(t *testing.T) {
	cache := NewCache[string](time.Minute)

	entered := make(chan struct{})
	release := make(chan struct{})
	first := true
	fetch := func(ctx context.Context) (string, error) {
		if first {
			first = false
			return "initial", nil
		}
		close(entered)
		<-release
		return "revalidated", nil
	}

	f := NewFetcher(cache, "k", fetch)
	_, err := f.Load(context.Background())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		_, _ = f.Refetch(context.Background())
		close(done)
	}()
	<-entered

	// data exists, so a background revalidate must not flip Loading
	assert.False(t, f.Loading())
	data, ok := f.Data()
	assert.True(t, ok)
	assert.Equal(t, "initial", data)

	close(release)
	<-done

	data, _ = f.Data()
	assert.Equal(t, "revalidated", data)
}

func TestFetcherLoadingOnFirstFetch(t *testing.T) {
	cache := NewCache[string](time.Minute)
	entered := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context) (string, error) {
		close(entered)
		<-release
		return "v", nil
	}

	f := NewFetcher(cache, "k", fetch)
	done := make(chan struct{})
	go func() {
		_, _ = f.Load(context.Background())
		close(done)
	}()
	<-entered

	assert.True(t, f.Loading(), "first fetch with no data must report loading")

	close(release)
	<-done
	assert.False(t, f.Loading())
}

func TestFetcherErrorRetainsData(t *testing.T) {
	cache := NewCache[string](time.Minute)
	fail := false
	fetch := func(ctx context.Context) (string, error) {
		if fail {
			return "", errors.New("backend down")
		}
		return "good", nil
	}

	f := NewFetcher(cache, "k", fetch)
	_, err := f.Load(context.Background())
	require.NoError(t, err)

	fail = true
	_, err = f.Refetch(context.Background())
	require.Error(t, err)

	data, ok := f.Data()
	assert.True(t, ok)
	assert.Equal(t, "good", data, "failed refetch must not clobber prior data")
	assert.Equal(t, "backend down", f.Err())

	fail = false
	_, err = f.Refetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", f.Err(), "success clears the recorded error")
}

func TestFetcherLastIssuedWins(t *testing.T) {
	cache := NewCache[string](time.Minute)

	type call struct {
		entered chan struct{}
		release chan struct{}
		value   string
	}
	first := &call{entered: make(chan struct{}), release: make(chan struct{}), value: "stale"}
	second := &call{entered: make(chan struct{}), release: make(chan struct{}), value: "current"}

	calls := make(chan *call, 2)
	calls <- first
	calls <- second

	fetch := func(ctx context.Context) (string, error) {
		c := <-calls
		close(c.entered)
		<-c.release
		return c.value, nil
	}

	f := NewFetcher(cache, "k", fetch)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = f.Refetch(context.Background())
	}()
	<-first.entered

	go func() {
		defer wg.Done()
		_, _ = f.Refetch(context.Background())
	}()
	<-second.entered

	// the later-issued request completes first
	close(second.release)
	// wait for it to land before releasing the stale one
	require.Eventually(t, func() bool {
		data, ok := f.Data()
		return ok && data == "current"
	}, time.Second, time.Millisecond)

	close(first.release)
	wg.Wait()

	data, _ := f.Data()
	assert.Equal(t, "current", data, "response from the older request must be discarded")
}

func TestMutationSuccess(t *testing.T) {
	var seen string
	m := NewMutation(func(ctx context.Context, arg string) (string, error) {
		return "ok:" + arg, nil
	}).OnSuccess(func(r string) { seen = r })

	result, err := m.Do(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "ok:x", result)
	assert.Equal(t, "ok:x", seen)
	assert.False(t, m.Loading())
	assert.Equal(t, "", m.Err())
}

func TestMutationErrorSetsStateAndReturns(t *testing.T) {
	var seen error
	m := NewMutation(func(ctx context.Context, arg string) (string, error) {
		return "", errors.New("rejected")
	}).OnError(func(err error) { seen = err })

	_, err := m.Do(context.Background(), "x")
	require.Error(t, err)
	assert.Equal(t, "rejected", m.Err(), "error state is recorded")
	assert.Equal(t, err, seen, "OnError is invoked")
	assert.False(t, m.Loading())
}

func TestMutationErrorClearedOnNextSuccess(t *testing.T) {
	fail := true
	m := NewMutation(func(ctx context.Context, arg string) (string, error) {
		if fail {
			return "", errors.New("boom")
		}
		return "fine", nil
	})

	_, err := m.Do(context.Background(), "x")
	require.Error(t, err)
	require.Equal(t, "boom", m.Err())

	fail = false
	_, err = m.Do(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "", m.Err())
}
