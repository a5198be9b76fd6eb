package kafka_client

import "time"

const (
	KAFKA_TOPIC_RAW_POSTS         = "raw-posts"         // ingested social media posts awaiting analysis
	KAFKA_TOPIC_SENTIMENT_RESULTS = "sentiment-results" // batched fused sentiment results
)

const (
	BATCH_SIZE    = 50
	BATCH_TIMEOUT = 5 * time.Second
	MAX_RETRIES   = 5
	RETRY_DELAY   = 2 * time.Second
)
