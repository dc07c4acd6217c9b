package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alimikegami/toy-town/config"
	"github.com/alimikegami/toy-town/internal/dto"
	circuitbreaker "github.com/alimikegami/toy-town/internal/infrastructure/circuit-breaker"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

const dialTimeout = 5 * time.Second

// MessageWriter is satisfied by *kafka.Conn.
type MessageWriter interface {
	WriteMessages(msgs ...kafka.Message) (int, error)
}

func CreateKafkaProducer(config *config.Config) (*kafka.Conn, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	conn, err := kafka.DialLeader(ctx, "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		return nil, fmt.Errorf("dial kafka leader %s: %w", config.KafkaConfig.BrokerAddress, err)
	}

	return conn, nil
}

// Publisher writes toy events to the broker, retrying with a linear backoff
// behind a circuit breaker.
type Publisher struct {
	writer     MessageWriter
	breaker    *gobreaker.CircuitBreaker[int]
	maxRetries int
	backoff    time.Duration
}

func CreateEventPublisher(writer MessageWriter, kafkaConfig config.KafkaConfig) *Publisher {
	maxRetries := kafkaConfig.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &Publisher{
		writer:     writer,
		breaker:    circuitbreaker.CreateCircuitBreaker[int]("kafka-" + kafkaConfig.BrokerTopic),
		maxRetries: maxRetries,
		backoff:    kafkaConfig.RetryBackoff,
	}
}

func (p *Publisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	jsonMsg, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", msg.EventType, err)
	}

	message := kafka.Message{Key: []byte(key), Value: jsonMsg}

	for i := 0; i < p.maxRetries; i++ {
		_, err = p.breaker.Execute(func() (int, error) {
			return p.writer.WriteMessages(message)
		})
		if err == nil {
			eventsPublished.WithLabelValues(msg.EventType, resultPublished).Inc()
			return nil
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "Publish").Str("event_type", msg.EventType).Int("attempt", i+1).Msg("")

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			break
		}

		if i == p.maxRetries-1 {
			break
		}

		select {
		case <-ctx.Done():
			eventsPublished.WithLabelValues(msg.EventType, resultFailed).Inc()
			return ctx.Err()
		case <-time.After(p.backoff * time.Duration(i+1)):
		}
	}

	eventsPublished.WithLabelValues(msg.EventType, resultFailed).Inc()
	return fmt.Errorf("publish %s event: %w", msg.EventType, err)
}

// NoopPublisher drops events. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	log.Ctx(ctx).Debug().Str("component", "Publish").Str("event_type", msg.EventType).Str("key", key).Msg("no broker configured, event dropped")
	return nil
}
