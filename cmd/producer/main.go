package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sentimeter/sentimeter/config"
	"github.com/sentimeter/sentimeter/internal/clients/kafka_client"
	"github.com/sentimeter/sentimeter/internal/logging"
	"github.com/sentimeter/sentimeter/internal/samples"
)

func main() {
	postsFile := flag.String("posts", "data/sample_posts.json", "path to a JSON posts file")
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)

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

	posts := samples.LoadPosts(*postsFile)
	slog.Info("[Producer] Publishing posts...",
		slog.String("topic", kafka_client.KAFKA_TOPIC_RAW_POSTS),
		slog.Int("count", len(posts)))

	for _, post := range posts {
		select {
		case <-stopChan:
			slog.Info("Shutting down producer gracefully...")
			return
		default:
		}

		if err := kafka_client.PublishToKafka(kafka_client.KAFKA_TOPIC_RAW_POSTS, post.ID, post); err != nil {
			slog.Error("[Producer] Failed to publish post",
				slog.String("post_id", post.ID),
				slog.String("error", err.Error()))
			continue
		}

		slog.Info("[Producer] Post published",
			slog.String("post_id", post.ID))
	}
}
