package publisher

import (
	"encoding/json"
	"time"
)

const (
	EventOrder = "order"
	EventVote  = "vote"
)

// Envelope wraps every published domain event.
type Envelope struct {
	EventID    string          `json:"event_id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// SubjectRegisteredEvent arrives from the services owning posts and services
// once one of them becomes votable.
type SubjectRegisteredEvent struct {
	SubjectID    string    `json:"subject_id"`
	Kind         string    `json:"kind"`
	RegisteredAt time.Time `json:"registered_at,omitempty"`
}
