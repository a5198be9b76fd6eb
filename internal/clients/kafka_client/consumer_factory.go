package kafka_client

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

var consumerRegistry = make(map[string]func(context.Context, *kafka.Consumer))

// RegisterConsumer binds a handler to a topic. Registration must happen
// before StartConsumers.
func RegisterConsumer(topic string, consumerFunc func(context.Context, *kafka.Consumer)) {
	consumerRegistry[topic] = consumerFunc
}

// StartConsumers runs every registered handler on its own consumer and
// blocks until all of them return.
func StartConsumers(ctx context.Context, cfg KafkaConfig) error {
	var wg sync.WaitGroup

	for topic, consumerFunc := range consumerRegistry {
		consumer, err := newConsumer(cfg, topic)
		if err != nil {
			return fmt.Errorf("[ConsumerFactory] Failed to initialize consumer for %s: %w", topic, err)
		}

		slog.Info("[ConsumerFactory] Starting consumer for topic...",
			slog.String("topic", topic))

		wg.Add(1)
		go func(topic string, consumer *kafka.Consumer, fn func(context.Context, *kafka.Consumer)) {
			defer wg.Done()
			defer consumer.Close()
			fn(ctx, consumer)
		}(topic, consumer, consumerFunc)
	}

	wg.Wait()
	return nil
}

func newConsumer(cfg KafkaConfig, topic string) (*kafka.Consumer, error) {
	c, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  cfg.Broker,
		"group.id":           cfg.GroupID,
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": false,
	})
	if err != nil {
		return nil, fmt.Errorf("[ConsumerFactory] Failed to create consumer: %w", err)
	}

	if err := c.SubscribeTopics([]string{topic}, nil); err != nil {
		return nil, fmt.Errorf("[ConsumerFactory] Failed to subscribe to %s: %w", topic, err)
	}

	return c, nil
}
