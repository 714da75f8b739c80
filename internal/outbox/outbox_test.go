package outbox

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", ServiceName: "test"})
	require.NoError(t, err)
	return log
}

func TestMemoryOutboxOrder(t *testing.T) {
	ob := NewMemory()
	ctx := context.Background()

	for _, eventID := range []string{"e1", "e2", "e3"} {
		require.NoError(t, ob.Append(ctx, NewEntry(eventID, "u1", false)))
	}

	n, err := ob.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	batch, err := ob.Pending(ctx, 2)
	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.Equal(t, "e1", batch[0].EventID)
	assert.Equal(t, "e2", batch[1].EventID)

	batch, err = ob.Pending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, "e3", batch[0].EventID)

	batch, err = ob.Pending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, batch)
}

func TestNewEntry(t *testing.T) {
	entry := NewEntry("event-1", "user-1", true)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "event-1", entry.EventID)
	assert.Equal(t, "user-1", entry.UserID)
	assert.True(t, entry.Cancel)
	assert.False(t, entry.QueuedAt.IsZero())
	assert.Zero(t, entry.Attempts)
}

func TestDrainerSubmitsBatch(t *testing.T) {
	ob := NewMemory()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, ob.Append(ctx, NewEntry("e", "u", false)))
	}

	var mu sync.Mutex
	var submitted []Entry
	d := NewDrainer(ob, func(ctx context.Context, entry Entry) error {
		mu.Lock()
		defer mu.Unlock()
		submitted = append(submitted, entry)
		return nil
	}, DrainerConfig{Interval: time.Hour, BatchSize: 10}, testLogger(t))

	d.Drain(ctx)

	assert.Len(t, submitted, 3)
	n, _ := ob.Len(ctx)
	assert.Equal(t, int64(0), n)

	ok, requeued := d.Stats()
	assert.Equal(t, int64(3), ok)
	assert.Equal(t, int64(0), requeued)
}

func TestDrainerRequeuesFailures(t *testing.T) {
	ob := NewMemory()
	ctx := context.Background()
	require.NoError(t, ob.Append(ctx, NewEntry("good", "u", false)))
	require.NoError(t, ob.Append(ctx, NewEntry("bad", "u", false)))

	d := NewDrainer(ob, func(ctx context.Context, entry Entry) error {
		if entry.EventID == "bad" {
			return errors.New("backend unavailable")
		}
		return nil
	}, DrainerConfig{Interval: time.Hour, BatchSize: 10}, testLogger(t))

	d.Drain(ctx)

	n, _ := ob.Len(ctx)
	require.Equal(t, int64(1), n)

	batch, err := ob.Pending(ctx, 1)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, "bad", batch[0].EventID)
	assert.Equal(t, 1, batch[0].Attempts)
	assert.Equal(t, "backend unavailable", batch[0].LastError)
}

func TestDrainerRespectsBatchSize(t *testing.T) {
	ob := NewMemory()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, ob.Append(ctx, NewEntry("e", "u", false)))
	}

	d := NewDrainer(ob, func(ctx context.Context, entry Entry) error {
		return nil
	}, DrainerConfig{Interval: time.Hour, BatchSize: 2}, testLogger(t))

	d.Drain(ctx)
	n, _ := ob.Len(ctx)
	assert.Equal(t, int64(3), n)
}

func TestDrainerStartStop(t *testing.T) {
	ob := NewMemory()
	ctx := context.Background()
	require.NoError(t, ob.Append(ctx, NewEntry("e", "u", false)))

	var mu sync.Mutex
	count := 0
	d := NewDrainer(ob, func(ctx context.Context, entry Entry) error {
		mu.Lock()
		defer mu.Unlock()
		count++
		return nil
	}, DrainerConfig{Interval: time.Hour, BatchSize: 10}, testLogger(t))

	d.Start()
	d.Start() // second start is a no-op
	d.Stop()  // stop runs a final flush
	d.Stop()  // stopping again must not panic or drain twice

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, count)
}
