package events

import (
	"context"
	"encoding/json"
	"fmt"

	"courier-booking/internal/entities"

	"github.com/IBM/sarama"
)

const headerEventType = "event-type"

// Publisher отправляет события поездок в Kafka, ключ сообщения это id поездки.
type Publisher struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *Publisher) Publish(ctx context.Context, event entities.RideEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(toMessage(event))
	if err != nil {
		return fmt.Errorf("marshal ride event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.Ride.ID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(headerEventType), Value: []byte(event.Type.String())},
		},
		Timestamp: event.OccurredAt,
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		EventsPublishedTotal.WithLabelValues(event.Type.String(), "error").Inc()
		return fmt.Errorf("send ride event %s: %w", event.ID, err)
	}

	EventsPublishedTotal.WithLabelValues(event.Type.String(), "ok").Inc()
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}

// Noop используется, когда Kafka не настроена.
type Noop struct{}

func (Noop) Publish(context.Context, entities.RideEvent) error {
	return nil
}

func (Noop) Close() error {
	return nil
}
