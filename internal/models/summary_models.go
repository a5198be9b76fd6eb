package models

// BatchSummary aggregates a collection of fused results. The JSON key set
// matches the flat reports existing consumers already parse; do not rename
// keys without versioning the report format.
type BatchSummary struct {
	TotalPosts         int     `json:"total_posts"`
	PositiveCount      int     `json:"positive_count"`
	NegativeCount      int     `json:"negative_count"`
	NeutralCount       int     `json:"neutral_count"`
	AvgSentiment       float64 `json:"avg_sentiment"`
	SentimentStd       float64 `json:"sentiment_std"`
	MostPositive       *string `json:"most_positive"`
	MostNegative       *string `json:"most_negative"`
	PositivePercentage float64 `json:"positive_percentage"`
	NegativePercentage float64 `json:"negative_percentage"`
	NeutralPercentage  float64 `json:"neutral_percentage"`
}

// SymbolicSummary is the emoji-analysis rollup over a batch of posts.
type SymbolicSummary struct {
	TotalPostsWithEmojis  int            `json:"total_posts_with_emojis"`
	TopEmojis             []EmojiCount   `json:"top_emojis"`
	SentimentDistribution map[string]int `json:"overall_sentiment_distribution"`
}

// EmojiCount pairs a glyph with its occurrence count across a batch.
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}
