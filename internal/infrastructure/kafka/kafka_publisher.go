package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
	nanoid "github.com/jaevor/go-nanoid"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Topics struct {
	Orders string
	Votes  string
}

// DefaultKafkaPublisher implements domain.EventPublisher. Order events are
// keyed by order id and vote events by subject id so each stays ordered
// within its partition.
type DefaultKafkaPublisher struct {
	writer  messageWriter
	topics  Topics
	eventID func() string
}

func NewDefaultKafkaPublisher(brokers []string, topics Topics) (*DefaultKafkaPublisher, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return newPublisher(writer, topics)
}

func newPublisher(writer messageWriter, topics Topics) (*DefaultKafkaPublisher, error) {
	idGenerator, err := nanoid.Standard(21)
	if err != nil {
		return nil, fmt.Errorf("failed to init event id generator: %w", err)
	}
	return &DefaultKafkaPublisher{writer: writer, topics: topics, eventID: idGenerator}, nil
}

func (k *DefaultKafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return k.publish(ctx, k.topics.Orders, EventOrder, event.OrderID, event.OccurredAt, event)
}

func (k *DefaultKafkaPublisher) PublishVoteEvent(ctx context.Context, event domain.VoteEvent) error {
	return k.publish(ctx, k.topics.Votes, EventVote, event.SubjectID, event.OccurredAt, event)
}

func (k *DefaultKafkaPublisher) publish(ctx context.Context, topic, eventType, key string, at time.Time, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", eventType, err)
	}
	envelope, err := json.Marshal(Envelope{
		EventID:    k.eventID(),
		Type:       eventType,
		OccurredAt: at,
		Payload:    body,
	})
	if err != nil {
		return fmt.Errorf("marshal %s envelope: %w", eventType, err)
	}

	if err := k.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: envelope,
		Time:  at,
	}); err != nil {
		return fmt.Errorf("failed to write %s event to %s: %w", eventType, topic, err)
	}
	return nil
}

func (k *DefaultKafkaPublisher) Close() error {
	return k.writer.Close()
}
