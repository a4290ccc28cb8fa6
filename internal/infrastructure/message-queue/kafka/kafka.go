package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alimikegami/point-of-sales/ecommerce-service/config"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/dto"
	circuitbreaker "github.com/alimikegami/point-of-sales/ecommerce-service/internal/infrastructure/circuit-breaker"
	"github.com/oklog/ulid/v2"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

const publishTimeout = 5 * time.Second

// EventPublisher emits domain events after a successful write.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, key string, data interface{}) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer messageWriter
	cb     *gobreaker.CircuitBreaker[struct{}]
}

func CreateKafkaWriter(config *config.Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(config.KafkaConfig.BrokerAddress),
		Topic:                  config.KafkaConfig.BrokerTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           publishTimeout,
		AllowAutoTopicCreation: true,
	}
}

// CreateEventPublisher returns a Kafka backed publisher that sends off the
// caller's goroutine, or a no-op one when no broker is configured.
func CreateEventPublisher(config *config.Config) EventPublisher {
	if config.KafkaConfig.BrokerAddress == "" {
		return NoopPublisher{}
	}

	return NewAsyncPublisher(NewPublisher(CreateKafkaWriter(config)))
}

func NewPublisher(writer messageWriter) *Publisher {
	return &Publisher{
		writer: writer,
		cb:     circuitbreaker.CreateCircuitBreaker[struct{}]("kafka-publisher"),
	}
}

func (p *Publisher) Publish(ctx context.Context, eventType string, key string, data interface{}) error {
	kafkaMsg := dto.KafkaMessage{
		EventID:    ulid.Make().String(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		return fmt.Errorf("failed to marshal Kafka message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	_, err = p.cb.Execute(func() (struct{}, error) {
		return struct{}{}, p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(key),
			Value: jsonMsg,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to write Kafka message: %w", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, eventType string, key string, data interface{}) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
