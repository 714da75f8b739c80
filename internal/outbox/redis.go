package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/redis"
)

// Redis is a durable Outbox backed by a Redis list. Entries are JSON-encoded
// and pushed to the tail; Pending pops batches from the head so append order
// is preserved across restarts.
type Redis struct {
	client *redis.Client
	key    string
}

// NewRedis creates a Redis-backed outbox on the given list key.
func NewRedis(client *redis.Client, key string) *Redis {
	return &Redis{client: client, key: key}
}

// Append queues an entry at the tail of the list.
func (r *Redis) Append(ctx context.Context, entry Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode outbox entry: %w", err)
	}
	if err := r.client.RPush(ctx, r.key, raw).Err(); err != nil {
		return fmt.Errorf("append outbox entry: %w", err)
	}
	return nil
}

// Pending removes and returns up to limit entries from the head.
func (r *Redis) Pending(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}

	raws, err := r.client.LPopCount(ctx, r.key, limit).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("pop outbox entries: %w", err)
	}

	entries := make([]Entry, 0, len(raws))
	for _, raw := range raws {
		var entry Entry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return entries, fmt.Errorf("decode outbox entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Len returns the number of queued entries.
func (r *Redis) Len(ctx context.Context) (int64, error) {
	return r.client.LLen(ctx, r.key).Result()
}
