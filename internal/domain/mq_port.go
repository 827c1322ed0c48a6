package domain

import (
	"context"
	"time"
)

type Message struct {
	Key   []byte
	Value []byte
}

type SubscriberPort interface {
	Subscribe(ctx context.Context, topic, groupID string) (<-chan Message, error)
}

type OrderEvent struct {
	OrderID    string      `json:"order_id"`
	ServiceID  string      `json:"service_id"`
	AuthorID   string      `json:"author_id"`
	CustomerID string      `json:"customer_id"`
	Operation  string      `json:"operation"`
	Status     OrderStatus `json:"status"`
	OccurredAt time.Time   `json:"occurred_at"`
}

type VoteEvent struct {
	SubjectID  string     `json:"subject_id"`
	UserID     string     `json:"user_id"`
	Action     VoteAction `json:"action"`
	IsUpvote   *bool      `json:"is_upvote,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// EventPublisher delivers domain events after the state change has committed.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event OrderEvent) error
	PublishVoteEvent(ctx context.Context, event VoteEvent) error
}
