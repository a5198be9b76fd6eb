package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sentimeter/sentimeter/config"
	"github.com/sentimeter/sentimeter/internal/clients"
	"github.com/sentimeter/sentimeter/internal/clients/kafka_client"
	"github.com/sentimeter/sentimeter/internal/consumers"
	"github.com/sentimeter/sentimeter/internal/db"
	"github.com/sentimeter/sentimeter/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stopChan
		slog.Info("Shutting down consumer gracefully...")
		cancel()
	}()

	cfg := kafka_client.GetKafkaConfig()

	for {
		err := kafka_client.InitProducer(cfg)
		if err == nil {
			break
		}

		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer kafka_client.CloseProducer()

	clients.InitValkey()
	defer clients.CloseValkey()
	db.InitDynamoDB()

	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_RAW_POSTS, consumers.StartPostsConsumer)
	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_SENTIMENT_RESULTS, consumers.StartResultsConsumer)

	if err := kafka_client.StartConsumers(ctx, cfg); err != nil {
		slog.Error("[Main] Failed to start consumers",
			slog.String("error", err.Error()))
	}
}
