package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/sentimeter/sentimeter/internal/clients"
	"github.com/sentimeter/sentimeter/internal/models"
)

const (
	SENTIMENT_RESULTS_TABLE_NAME = "SentimentResults"
	BATCH_SUMMARIES_TABLE_NAME   = "BatchSummaries"
)

const DYNAMODB_BATCH_SIZE = 25

var dbClient *dynamodb.Client

func InitDynamoDB() {
	dbClient = clients.GetDynamoDBClient()
}

// BatchInsertFusedResults writes fused sentiment results in chunks of the
// DynamoDB batch limit, retrying unprocessed items with backoff.
func BatchInsertFusedResults(ctx context.Context, results []models.FusedSentiment) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	for i := 0; i < len(results); i += DYNAMODB_BATCH_SIZE {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:
			end := i + DYNAMODB_BATCH_SIZE
			if end > len(results) {
				end = len(results)
			}

			writeRequests := make([]types.WriteRequest, 0, DYNAMODB_BATCH_SIZE)
			for _, result := range results[i:end] {
				writeRequests = append(writeRequests, types.WriteRequest{
					PutRequest: &types.PutRequest{
						Item: FusedResultToDynamoDBItem(result),
					},
				})
			}

			out, err := dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					SENTIMENT_RESULTS_TABLE_NAME: writeRequests,
				},
			})
			if err != nil {
				return fmt.Errorf("[DynamoDB] Failed to batch write fused results: %w", err)
			}

			retryCount := 0
			backoff := 500 * time.Millisecond
			for len(out.UnprocessedItems) > 0 && retryCount < 3 {
				time.Sleep(backoff)
				backoff *= 2
				slog.Warn("[DynamoDB] Retrying unprocessed items...",
					slog.Int("retry_attempt", retryCount+1),
					slog.Int("remaining_items", len(out.UnprocessedItems[SENTIMENT_RESULTS_TABLE_NAME])))

				out, err = dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
					RequestItems: out.UnprocessedItems,
				})
				if err != nil {
					return fmt.Errorf("[DynamoDB] Failed to retry batch write: %w", err)
				}
				retryCount++
			}

			if len(out.UnprocessedItems) > 0 {
				slog.Error("[DynamoDB] Some items were not written even after retries",
					slog.Int("remaining_items", len(out.UnprocessedItems[SENTIMENT_RESULTS_TABLE_NAME])))
			}
		}
	}

	slog.Info("[DynamoDB] Successfully stored fused results",
		slog.Int("count", len(results)))
	return nil
}

// PutBatchSummary stores one aggregation run keyed by its timestamp.
func PutBatchSummary(ctx context.Context, summary models.BatchSummary) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	item, err := attributevalue.MarshalMap(summary)
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to marshal batch summary: %w", err)
	}
	item["summary_id"] = &types.AttributeValueMemberS{
		Value: fmt.Sprintf("summary-%d", time.Now().Unix()),
	}
	item["created_at"] = &types.AttributeValueMemberN{
		Value: fmt.Sprintf("%d", time.Now().Unix()),
	}

	_, err = dbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(BATCH_SUMMARIES_TABLE_NAME),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to store batch summary: %w", err)
	}

	slog.Info("[DynamoDB] Successfully stored batch summary",
		slog.Int("total_posts", summary.TotalPosts))
	return nil
}

// FusedResultToDynamoDBItem flattens a fused result with the same
// snake_case keys the JSON reports use.
func FusedResultToDynamoDBItem(result models.FusedSentiment) map[string]types.AttributeValue {
	item := make(map[string]types.AttributeValue)

	item["content_id"] = &types.AttributeValueMemberS{Value: result.ContentID}
	item["modality"] = &types.AttributeValueMemberS{Value: string(result.Modality)}
	item["label"] = &types.AttributeValueMemberS{Value: result.Label}
	item["created_at"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", time.Now().Unix())}

	if result.Score != nil {
		item["combined_score"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", *result.Score)}
	}
	if result.Confidence != nil {
		item["confidence"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", *result.Confidence)}
	}
	if result.Text != "" {
		item["text"] = &types.AttributeValueMemberS{Value: result.Text}
	}
	if result.EnergyLevel != "" {
		item["energy_level"] = &types.AttributeValueMemberS{Value: result.EnergyLevel}
	}
	if result.Error != "" {
		item["error"] = &types.AttributeValueMemberS{Value: result.Error}
	}

	return item
}
