// Package outbox queues RSVP submissions made while the backend is
// unreachable. Entries are append-only; a drain worker periodically submits
// pending entries and re-queues the ones that fail, so user intent survives
// restarts (Redis variant) and no submission is silently dropped.
package outbox

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry is one pending RSVP action.
type Entry struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	Cancel    bool      `json:"cancel,omitempty"` // true for an RSVP cancellation
	QueuedAt  time.Time `json:"queued_at"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"last_error,omitempty"`
}

// NewEntry creates a pending RSVP entry.
func NewEntry(eventID, userID string, cancel bool) Entry {
	return Entry{
		ID:       uuid.New().String(),
		EventID:  eventID,
		UserID:   userID,
		Cancel:   cancel,
		QueuedAt: time.Now().UTC(),
	}
}

// Outbox stores pending entries. Implementations must preserve append order.
type Outbox interface {
	// Append queues an entry.
	Append(ctx context.Context, entry Entry) error
	// Pending returns up to limit entries from the head of the queue,
	// removing them. The caller re-appends entries that fail to submit.
	Pending(ctx context.Context, limit int) ([]Entry, error)
	// Len returns the number of queued entries.
	Len(ctx context.Context) (int64, error)
}
