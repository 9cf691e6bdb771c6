package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/casaflow/underwriting-service/internal/domain/event"
	"github.com/casaflow/underwriting-service/internal/domain/port"
	pkgkafka "github.com/casaflow/underwriting-service/pkg/kafka"
)

var _ port.EventPublisher = (*Publisher)(nil)

// Publisher implements port.EventPublisher using Kafka. Each event type is
// published to the topic of the same name, so consumers subscribe to exactly
// the lifecycle stages they care about. Event identity travels in the
// message headers; the value carries only the event payload fields.
type Publisher struct {
	producer *pkgkafka.Producer
}

// NewPublisher creates a Kafka-backed event publisher.
func NewPublisher(producer *pkgkafka.Producer) *Publisher {
	return &Publisher{producer: producer}
}

// Publish sends domain events to their topics, batching per topic and
// preserving the order events were raised in.
func (p *Publisher) Publish(ctx context.Context, domainEvents ...event.DomainEvent) error {
	var topics []string
	batches := make(map[string][]pkgkafka.Message)

	for _, evt := range domainEvents {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}

		topic := evt.EventType()
		if _, seen := batches[topic]; !seen {
			topics = append(topics, topic)
		}
		batches[topic] = append(batches[topic], pkgkafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_type":     evt.EventType(),
				"aggregate_type": evt.AggregateType(),
				"event_id":       evt.EventID().String(),
			},
		})
	}

	for _, topic := range topics {
		if err := p.producer.Publish(ctx, topic, batches[topic]...); err != nil {
			return fmt.Errorf("kafka publish: %w", err)
		}
	}
	return nil
}
