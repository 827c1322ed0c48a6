package background

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
	publisher "github.com/LavaJover/shvark-deal-service/internal/infrastructure/kafka"
	voteusecase "github.com/LavaJover/shvark-deal-service/internal/usecase/vote"
)

type BackgroundTasks struct {
	VoteUsecase  voteusecase.VoteUsecase
	Subscriber   domain.SubscriberPort
	SubjectTopic string
	GroupID      string
	Logger       *slog.Logger
}

func NewBackgroundTasks(voteUC voteusecase.VoteUsecase, sub domain.SubscriberPort, subjectTopic, groupID string, logger *slog.Logger) *BackgroundTasks {
	if logger == nil {
		logger = slog.Default()
	}
	return &BackgroundTasks{
		VoteUsecase:  voteUC,
		Subscriber:   sub,
		SubjectTopic: subjectTopic,
		GroupID:      groupID,
		Logger:       logger.With("module", "background"),
	}
}

// StartAll returns once the consumers are subscribed; they run until ctx is done.
func (bt *BackgroundTasks) StartAll(ctx context.Context) error {
	if bt.Subscriber == nil {
		bt.Logger.Info("no subscriber configured, subject registration consumer disabled")
		return nil
	}
	msgs, err := bt.Subscriber.Subscribe(ctx, bt.SubjectTopic, bt.GroupID)
	if err != nil {
		return err
	}
	go bt.consumeSubjectRegistrations(ctx, msgs)
	return nil
}

func (bt *BackgroundTasks) consumeSubjectRegistrations(ctx context.Context, msgs <-chan domain.Message) {
	for msg := range msgs {
		bt.handleSubjectRegistration(ctx, msg)
	}
	bt.Logger.Info("subject registration consumer stopped", "event", "subject_consumer_stopped")
}

// Malformed or rejected messages are logged and skipped; the reader has
// already committed them.
func (bt *BackgroundTasks) handleSubjectRegistration(ctx context.Context, msg domain.Message) {
	var event publisher.SubjectRegisteredEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		bt.Logger.Warn("malformed subject event",
			"event", "subject_event_malformed",
			"key", string(msg.Key),
			"error", err.Error(),
		)
		return
	}

	subject := domain.Subject{
		ID:           event.SubjectID,
		Kind:         domain.SubjectKind(event.Kind),
		RegisteredAt: event.RegisteredAt,
	}
	if subject.RegisteredAt.IsZero() {
		subject.RegisteredAt = time.Now().UTC()
	}
	if err := bt.VoteUsecase.RegisterSubject(ctx, subject); err != nil {
		bt.Logger.Error("subject registration failed",
			"event", "subject_register_failed",
			"subject_id", event.SubjectID,
			"error", err.Error(),
		)
	}
}
