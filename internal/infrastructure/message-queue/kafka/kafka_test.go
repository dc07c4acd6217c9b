package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alimikegami/toy-town/config"
	"github.com/alimikegami/toy-town/internal/dto"
	promdto "github.com/prometheus/client_model/go"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	failures int
	calls    int
	written  []kafka.Message
}

func (w *fakeWriter) WriteMessages(msgs ...kafka.Message) (int, error) {
	w.calls++
	if w.calls <= w.failures {
		return 0, errors.New("broker unavailable")
	}
	w.written = append(w.written, msgs...)
	return len(msgs), nil
}

func counterValue(t *testing.T, eventType, result string) float64 {
	t.Helper()

	var m promdto.Metric
	require.NoError(t, eventsPublished.WithLabelValues(eventType, result).Write(&m))
	return m.GetCounter().GetValue()
}

func testKafkaConfig(retries int) config.KafkaConfig {
	return config.KafkaConfig{BrokerTopic: "toy-events", MaxRetries: retries, RetryBackoff: time.Millisecond}
}

func TestPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	publisher := CreateEventPublisher(writer, testKafkaConfig(3))

	err := publisher.Publish(context.Background(), "646a1f0c2b1e4a5d9c0f0001", dto.KafkaMessage{
		EventType: dto.EventToyDeleted,
		Data:      map[string]string{"_id": "646a1f0c2b1e4a5d9c0f0001"},
	})
	require.NoError(t, err)
	require.Len(t, writer.written, 1)
	assert.Equal(t, "646a1f0c2b1e4a5d9c0f0001", string(writer.written[0].Key))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(writer.written[0].Value, &decoded))
	assert.Equal(t, dto.EventToyDeleted, decoded["event_type"])
}

func TestPublisher_RetriesTransientFailures(t *testing.T) {
	writer := &fakeWriter{failures: 1}
	publisher := CreateEventPublisher(writer, testKafkaConfig(3))
	before := counterValue(t, dto.EventToyCreated, resultPublished)

	err := publisher.Publish(context.Background(), "k", dto.KafkaMessage{EventType: dto.EventToyCreated})
	require.NoError(t, err)
	assert.Equal(t, 2, writer.calls)
	assert.Len(t, writer.written, 1)
	assert.Equal(t, before+1, counterValue(t, dto.EventToyCreated, resultPublished))
}

func TestPublisher_GivesUpAfterMaxRetries(t *testing.T) {
	writer := &fakeWriter{failures: 100}
	publisher := CreateEventPublisher(writer, testKafkaConfig(2))

	err := publisher.Publish(context.Background(), "k", dto.KafkaMessage{EventType: dto.EventToyCreated})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toy_created")
	assert.Equal(t, 2, writer.calls)
}

func TestPublisher_StopsWhenBreakerIsOpen(t *testing.T) {
	writer := &fakeWriter{failures: 100}
	publisher := CreateEventPublisher(writer, testKafkaConfig(3))

	err := publisher.Publish(context.Background(), "k", dto.KafkaMessage{EventType: dto.EventToyUpdated})
	require.Error(t, err)
	assert.Equal(t, 3, writer.calls)

	err = publisher.Publish(context.Background(), "k", dto.KafkaMessage{EventType: dto.EventToyUpdated})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, writer.calls)
}

func TestPublisher_HonorsContextCancellation(t *testing.T) {
	writer := &fakeWriter{failures: 100}
	publisher := CreateEventPublisher(writer, config.KafkaConfig{MaxRetries: 3, RetryBackoff: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := publisher.Publish(ctx, "k", dto.KafkaMessage{EventType: dto.EventToyCreated})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, writer.calls)
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.Publish(context.Background(), "k", dto.KafkaMessage{EventType: dto.EventToyCreated}))
}
