package kafka

import (
	"context"
	"encoding/json"
	"time"

	kgo "github.com/segmentio/kafka-go"

	"gigmarket/internal/domain/entity"
)

const EventGigDecision = "gig.decision"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kgo.Message) error
	Close() error
}

type DecisionEvent struct {
	Event     string          `json:"event"`
	ID        string          `json:"id"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Decision  entity.Decision `json:"decision"`
	Timestamp int64           `json:"timestamp"`
}

// DecisionPublisher emits one event per stored decision, keyed by the
// recipient so a recipient's events stay ordered within a partition.
type DecisionPublisher struct {
	w messageWriter
}

func NewDecisionPublisher(brokers []string, topic string) *DecisionPublisher {
	return &DecisionPublisher{
		w: &kgo.Writer{
			Addr:         kgo.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kgo.Hash{},
			RequiredAcks: kgo.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

func (p *DecisionPublisher) PublishDecision(ctx context.Context, msg *entity.NotificationMessage) error {
	value, err := json.Marshal(DecisionEvent{
		Event:     EventGigDecision,
		ID:        msg.ID,
		From:      msg.From,
		To:        msg.To,
		Decision:  msg.Type,
		Timestamp: msg.Timestamp,
	})
	if err != nil {
		return err
	}

	return p.w.WriteMessages(ctx, kgo.Message{
		Key:   []byte(msg.To),
		Value: value,
		Time:  time.UnixMilli(msg.Timestamp),
	})
}

func (p *DecisionPublisher) Close() error { return p.w.Close() }

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishDecision(context.Context, *entity.NotificationMessage) error { return nil }

func (NopPublisher) Close() error { return nil }
