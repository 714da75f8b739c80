// Package events publishes resource lifecycle notifications so downstream
// consumers (analytics, digests) can react without polling the API.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/logger"
)

// Action identifies what happened to a record.
type Action string

const (
	ActionCreated       Action = "created"
	ActionUpdated       Action = "updated"
	ActionDeleted       Action = "deleted"
	ActionStatusChanged Action = "status_changed"
	ActionRSVP          Action = "rsvp"
	ActionRSVPCancelled Action = "rsvp_cancelled"
)

// Notification is one lifecycle event.
type Notification struct {
	Resource   string    `json:"resource"`
	EntityID   string    `json:"entity_id"`
	Action     Action    `json:"action"`
	Status     string    `json:"status,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits lifecycle notifications. Publishing is best-effort: a
// failed publish must never fail the originating request.
type Publisher interface {
	Publish(ctx context.Context, n Notification)
	Close()
}

// KafkaPublisher publishes notifications to a Kafka topic.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
	log    *logger.Logger
}

// KafkaConfig holds Kafka publisher settings.
type KafkaConfig struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// NewKafkaPublisher connects a Kafka producer for lifecycle notifications.
func NewKafkaPublisher(cfg *KafkaConfig, log *logger.Logger) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
		kgo.DefaultProduceTopic(cfg.Topic),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &KafkaPublisher{client: client, topic: cfg.Topic, log: log}, nil
}

// Publish produces the notification asynchronously, keyed by entity ID so
// per-record ordering is preserved.
func (p *KafkaPublisher) Publish(ctx context.Context, n Notification) {
	if n.OccurredAt.IsZero() {
		n.OccurredAt = time.Now()
	}

	value, err := json.Marshal(n)
	if err != nil {
		p.log.ErrorContext(ctx, "encode lifecycle notification",
			zap.String("resource", n.Resource), zap.Error(err))
		return
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(n.EntityID),
		Value: value,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.log.Error("publish lifecycle notification",
				zap.String("resource", n.Resource),
				zap.String("entity_id", n.EntityID),
				zap.Error(err))
		}
	})
}

// Close flushes and closes the producer.
func (p *KafkaPublisher) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = p.client.Flush(ctx)
	p.client.Close()
}

// NoopPublisher discards notifications; used when Kafka is not configured.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that does nothing.
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) Publish(ctx context.Context, n Notification) {}

func (p *NoopPublisher) Close() {}
