package kafka_client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

// KafkaMessageIterator pulls messages for one subscribed topic, absorbing
// transient read failures so the consumer loops see either a message or a
// terminal error.
type KafkaMessageIterator struct {
	consumer *kafka.Consumer
	ctx      context.Context
}

func NewKafkaMessageIterator(ctx context.Context, consumer *kafka.Consumer) *KafkaMessageIterator {
	return &KafkaMessageIterator{consumer: consumer, ctx: ctx}
}

// Next blocks until a message arrives or the retry budget runs out. A
// brokers-down error is terminal and returns immediately.
func (it *KafkaMessageIterator) Next() (*kafka.Message, error) {
	if it.consumer == nil {
		return nil, fmt.Errorf("[MessageIterator] consumer has not been initialized")
	}

	var lastErr error
	for attempt := 1; attempt <= MAX_RETRIES; attempt++ {
		if err := it.ctx.Err(); err != nil {
			slog.Warn("[MessageIterator] Context canceled, stopping post stream")
			return nil, err
		}

		msg, err := it.consumer.ReadMessage(-1)
		if err == nil {
			return msg, nil
		}

		if kafkaErr, ok := err.(kafka.Error); ok && kafkaErr.Code() == kafka.ErrAllBrokersDown {
			slog.Error("[MessageIterator] All Kafka brokers are down, aborting read")
			return nil, err
		}

		lastErr = err
		slog.Warn("[MessageIterator] Read failed, retrying...",
			slog.Int("attempt", attempt),
			slog.Int("max_retries", MAX_RETRIES),
			slog.String("error", err.Error()))
		time.Sleep(RETRY_DELAY)
	}

	return nil, fmt.Errorf("[MessageIterator] failed to read message after %d attempts: %w", MAX_RETRIES, lastErr)
}
