package consumers

import (
	"context"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/sentimeter/sentimeter/internal/clients"
	"github.com/sentimeter/sentimeter/internal/clients/kafka_client"
	"github.com/sentimeter/sentimeter/internal/models"
	"github.com/sentimeter/sentimeter/internal/sentiment"
	"github.com/sentimeter/sentimeter/internal/utils"
)

var (
	fuser        = sentiment.NewFuser()
	resultBuffer = utils.NewBatchBuffer[models.FusedSentiment]()
)

// StartPostsConsumer reads raw posts, fuses text and symbolic sentiment for
// each unit and publishes batched results. A single unit failing never
// aborts the rest of the stream.
func StartPostsConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	slog.Info("[PostsConsumer] Listening for messages...")

	ticker := time.NewTicker(utils.BATCH_TIMEOUT)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[PostsConsumer] Stopping consumer...")
			return
		case <-ticker.C:
			go publishResults(ctx, committer)
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var post models.Post
			if err := utils.DeserializeFromJSON(msg.Value, &post); err != nil {
				continue
			}

			unit := post.ToContentUnit()
			utils.TrackMessage(unit.ContentID, msg)

			if clients.GetValkeyClient().IsPostProcessed(ctx, unit.ContentID) {
				slog.Info("[PostsConsumer] Skipping already processed post",
					slog.String("content_id", unit.ContentID))
				commitTracked(committer, unit.ContentID)
				continue
			}

			cleaned := sentiment.ConvertMarkdownToText(unit.Text)
			resultBuffer.Add(fuser.Fuse(unit, sentiment.TextInput{Text: cleaned}))

			symbols := sentiment.ExtractSymbols(unit.Text)
			resultBuffer.Add(fuser.Fuse(
				models.ContentUnit{ContentID: unit.ContentID, Modality: models.ModalityEmoji},
				sentiment.SymbolicInput{Matches: symbols},
			))

			if err := clients.GetValkeyClient().MarkProcessed(ctx, unit.ContentID); err != nil {
				slog.Warn("[PostsConsumer] Failed to mark post as processed",
					slog.String("content_id", unit.ContentID),
					slog.String("error", err.Error()))
			}

			if resultBuffer.Size() >= utils.BATCH_SIZE {
				go publishResults(ctx, committer)
			}
		}
	}
}

func publishResults(ctx context.Context, committer *kafka_client.KafkaCommitHandler) {
	batch := resultBuffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	for i := 0; i < 3; i++ {
		err := kafka_client.PublishToKafka(
			kafka_client.KAFKA_TOPIC_SENTIMENT_RESULTS, batch[0].ContentID, batch)
		if err == nil {
			break
		}
		slog.Warn("[PostsConsumer] Batch publishing failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
		time.Sleep(2 * time.Second)
	}

	for _, result := range batch {
		commitTracked(committer, result.ContentID)
	}
}

func commitTracked(committer *kafka_client.KafkaCommitHandler, contentID string) {
	trackedMsg, found := utils.GetMessageForContent(contentID)
	if !found {
		return
	}
	if err := committer.Commit(trackedMsg); err != nil {
		slog.Warn("[PostsConsumer] Failed to commit offset",
			slog.String("error", err.Error()))
	}
}
