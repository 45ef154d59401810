package internal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/DrGermanius/posqr/internal/model"
)

//go:generate mockgen -source=events.go -destination=mock/events.go

const EventValidationDecided = "ValidationDecided"

type Publisher interface {
	Publish(ctx context.Context, e DecisionEvent) error
}

type DecisionEvent struct {
	EventID    string       `json:"event_id"`
	EventType  string       `json:"event_type"`
	OccurredAt time.Time    `json:"occurred_at"`
	TerminalID string       `json:"terminal_id"`
	OrderUID   string       `json:"order_uid"`
	ServerID   *int         `json:"server_id,omitempty"`
	Accepted   bool         `json:"accepted"`
	Reason     model.Reason `json:"reason,omitempty"`
}

func NewDecisionEvent(terminalID string, o *model.Order, d model.Decision) DecisionEvent {
	return DecisionEvent{
		EventID:    uuid.NewString(),
		EventType:  EventValidationDecided,
		OccurredAt: time.Now().UTC(),
		TerminalID: terminalID,
		OrderUID:   o.UID,
		ServerID:   o.ServerID,
		Accepted:   d.Accepted,
		Reason:     d.Reason,
	}
}

// KafkaPublisher writes decision events keyed by order UID. Writes are async; delivery
// failures surface through Delivered.
type KafkaPublisher struct {
	w      *kafka.Writer
	logger *zap.SugaredLogger
}

func NewKafkaPublisher(brokers []string, topic string, logger *zap.SugaredLogger) *KafkaPublisher {
	p := &KafkaPublisher{logger: logger}
	p.w = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        true,
		Completion:   p.Delivered,
	}
	return p
}

// Delivered is the writer's completion callback.
func (p *KafkaPublisher) Delivered(messages []kafka.Message, err error) {
	if err == nil {
		return
	}
	for _, m := range messages {
		p.logger.Errorf("Publish error: order %s: %s", string(m.Key), err.Error())
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e DecisionEvent) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}

	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.OrderUID),
		Value: b,
		Time:  e.OccurredAt,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}
