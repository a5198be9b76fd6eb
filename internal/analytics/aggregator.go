package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/sentimeter/sentimeter/internal/models"
)

// Summarize recomputes a full BatchSummary over an ordered sequence of
// fused results. Units carrying an error are excluded entirely: they appear
// in neither the counts nor the score statistics. Batches are bounded
// (hundreds to low thousands), so full recomputation beats incremental
// state.
func Summarize(results []models.FusedSentiment) models.BatchSummary {
	var summary models.BatchSummary

	var scores []float64
	var mostPositive, mostNegative *models.FusedSentiment

	for i := range results {
		r := &results[i]
		if r.Error != "" {
			continue
		}

		summary.TotalPosts++
		switch r.Label {
		case models.LabelPositive:
			summary.PositiveCount++
		case models.LabelNegative:
			summary.NegativeCount++
		case models.LabelNeutral:
			summary.NeutralCount++
		}

		if !r.HasScore() {
			continue
		}
		scores = append(scores, *r.Score)

		// Strict comparisons keep the first occurrence on ties.
		if mostPositive == nil || *r.Score > *mostPositive.Score {
			mostPositive = r
		}
		if mostNegative == nil || *r.Score < *mostNegative.Score {
			mostNegative = r
		}
	}

	if summary.TotalPosts > 0 {
		total := float64(summary.TotalPosts)
		summary.PositivePercentage = float64(summary.PositiveCount) / total * 100
		summary.NegativePercentage = float64(summary.NegativeCount) / total * 100
		summary.NeutralPercentage = float64(summary.NeutralCount) / total * 100
	}

	if len(scores) > 0 {
		summary.AvgSentiment = stat.Mean(scores, nil)
	}
	if len(scores) > 1 {
		summary.SentimentStd = stat.StdDev(scores, nil)
	}

	if mostPositive != nil {
		text := mostPositive.Text
		summary.MostPositive = &text
	}
	if mostNegative != nil {
		text := mostNegative.Text
		summary.MostNegative = &text
	}

	return summary
}

// At most this many glyphs appear in a symbolic summary's top list.
const topEmojiLimit = 20

// SummarizeSymbols rolls up symbolic matches across a batch of posts:
// glyph frequencies, the overall sentiment distribution and how many posts
// carried at least one emoji.
func SummarizeSymbols(perPost [][]models.SymbolicMatch) models.SymbolicSummary {
	counts := make(map[string]int)
	var order []string
	distribution := make(map[string]int)
	withEmojis := 0

	for _, matches := range perPost {
		hasEmoji := false
		for _, m := range matches {
			distribution[m.Sentiment]++
			if m.Name == "" {
				continue // emoticon, not counted as an emoji glyph
			}
			hasEmoji = true
			if counts[m.Glyph] == 0 {
				order = append(order, m.Glyph)
			}
			counts[m.Glyph]++
		}
		if hasEmoji {
			withEmojis++
		}
	}

	top := make([]models.EmojiCount, 0, len(order))
	for _, glyph := range order {
		top = append(top, models.EmojiCount{Emoji: glyph, Count: counts[glyph]})
	}
	// Highest counts first; first-seen order breaks ties.
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > topEmojiLimit {
		top = top[:topEmojiLimit]
	}

	return models.SymbolicSummary{
		TotalPostsWithEmojis:  withEmojis,
		TopEmojis:             top,
		SentimentDistribution: distribution,
	}
}
