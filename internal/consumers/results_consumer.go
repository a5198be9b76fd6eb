package consumers

import (
	"context"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/sentimeter/sentimeter/internal/analytics"
	"github.com/sentimeter/sentimeter/internal/clients/kafka_client"
	"github.com/sentimeter/sentimeter/internal/db"
	"github.com/sentimeter/sentimeter/internal/models"
	"github.com/sentimeter/sentimeter/internal/utils"
)

var insertBuffer = utils.NewBatchBuffer[models.FusedSentiment]()

// StartResultsConsumer persists fused results and recomputes the batch
// summary for each stored chunk.
func StartResultsConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	ticker := time.NewTicker(utils.BATCH_TIMEOUT)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			processResults(ctx, committer)
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var results []models.FusedSentiment
			if err := utils.DeserializeFromJSON(msg.Value, &results); err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			for _, result := range results {
				utils.TrackMessage(result.ContentID, msg)
				insertBuffer.Add(result)
				if insertBuffer.Size() >= db.DYNAMODB_BATCH_SIZE {
					processResults(ctx, committer)
				}
			}
		}
	}
}

func processResults(ctx context.Context, committer *kafka_client.KafkaCommitHandler) {
	batch := insertBuffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	var insertErr error
	for i := 0; i < 3; i++ {
		insertErr = db.BatchInsertFusedResults(ctx, batch)
		if insertErr == nil {
			break
		}
		slog.Error("[ResultsConsumer] Failed to write results to DB",
			slog.String("error", insertErr.Error()),
			slog.Int("attempt", i+1))
	}

	summary := analytics.Summarize(batch)
	if err := db.PutBatchSummary(ctx, summary); err != nil {
		slog.Error("[ResultsConsumer] Failed to store batch summary",
			slog.String("error", err.Error()))
	}

	for _, result := range batch {
		msg, found := utils.GetMessageForContent(result.ContentID)
		if !found {
			continue
		}
		if err := committer.Commit(msg); err != nil {
			slog.Warn("[ResultsConsumer] Failed to commit offset",
				slog.String("error", err.Error()))
		}
	}
}
