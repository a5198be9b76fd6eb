// Package samples loads post fixtures for the offline analyzer and the
// demo producer.
package samples

import (
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/sentimeter/sentimeter/internal/models"
)

// LoadPosts reads a posts file, accepting either a bare JSON array or an
// object with a "posts" key. A missing file falls back to the embedded
// sample set so the demo binaries run without any setup.
func LoadPosts(path string) []models.Post {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("[Samples] Posts file not found, using embedded samples",
			slog.String("path", path))
		return FallbackPosts()
	}

	var posts []models.Post
	if err := json.Unmarshal(data, &posts); err == nil {
		return posts
	}

	var wrapped struct {
		Posts []models.Post `json:"posts"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		slog.Warn("[Samples] Failed to parse posts file, using embedded samples",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return FallbackPosts()
	}
	return wrapped.Posts
}

// FallbackPosts returns the embedded demo posts.
func FallbackPosts() []models.Post {
	day := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}

	return []models.Post{
		{ID: "1", Text: "Love this product! 😍🎉 Amazing quality! #great #love", Timestamp: at(10, 30)},
		{ID: "2", Text: "Terrible experience 😤😡 Never buying again #fail #terrible", Timestamp: at(11, 45)},
		{ID: "3", Text: "It's okay, nothing special 🤷 #average #meh", Timestamp: at(12, 0)},
		{ID: "4", Text: "Best purchase ever! 🔥💯 Highly recommend! #best #recommended", Timestamp: at(14, 20)},
		{ID: "5", Text: "Product broke after one week 😢💔 Want refund #broken #refund", Timestamp: at(15, 30)},
	}
}
