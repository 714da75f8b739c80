package outbox

import (
	"context"
	"sync"
)

// Memory is an in-memory Outbox. Entries do not survive a restart; use the
// Redis implementation where durability matters.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemory creates an empty in-memory outbox.
func NewMemory() *Memory {
	return &Memory{}
}

// Append queues an entry at the tail.
func (m *Memory) Append(ctx context.Context, entry Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

// Pending removes and returns up to limit entries from the head.
func (m *Memory) Pending(ctx context.Context, limit int) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit <= 0 || limit > len(m.entries) {
		limit = len(m.entries)
	}
	if limit == 0 {
		return nil, nil
	}

	batch := make([]Entry, limit)
	copy(batch, m.entries[:limit])
	m.entries = append([]Entry(nil), m.entries[limit:]...)
	return batch, nil
}

// Len returns the number of queued entries.
func (m *Memory) Len(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.entries)), nil
}
