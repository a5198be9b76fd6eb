package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/sentimeter/sentimeter/config"
	"github.com/sentimeter/sentimeter/internal/analytics"
	"github.com/sentimeter/sentimeter/internal/clients"
	"github.com/sentimeter/sentimeter/internal/logging"
	"github.com/sentimeter/sentimeter/internal/models"
	"github.com/sentimeter/sentimeter/internal/report"
	"github.com/sentimeter/sentimeter/internal/samples"
	"github.com/sentimeter/sentimeter/internal/sentiment"
)

const topKeywords = 50

func main() {
	postsFile := flag.String("posts", "data/sample_posts.json", "path to a JSON posts file")
	reportDir := flag.String("reports", "output/reports", "directory for JSON reports")
	audioFile := flag.String("audio", "", "audio file to transcribe and analyze")
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	posts := samples.LoadPosts(*postsFile)
	slog.Info("[Analyzer] Loaded posts", slog.Int("count", len(posts)))

	fuser := sentiment.NewFuser()

	textResults := make([]models.FusedSentiment, 0, len(posts))
	perPostSymbols := make([][]models.SymbolicMatch, 0, len(posts))
	var allText strings.Builder

	for _, post := range posts {
		unit := post.ToContentUnit()
		text := sentiment.ConvertMarkdownToText(unit.Text)

		fused := fuser.Fuse(unit, sentiment.TextInput{Text: text})
		textResults = append(textResults, fused)

		matches := sentiment.ExtractSymbols(unit.Text)
		perPostSymbols = append(perPostSymbols, matches)

		symbolic := fuser.Fuse(unit, sentiment.SymbolicInput{Matches: matches})

		score := 0.0
		if fused.HasScore() {
			score = *fused.Score
		}
		slog.Info("[Analyzer] Post analyzed",
			slog.String("post_id", post.ID),
			slog.String("label", fused.Label),
			slog.Float64("combined_score", score),
			slog.String("emoji_label", symbolic.Label))

		allText.WriteString(unit.Text)
		allText.WriteString(" ")
	}

	summary := analytics.Summarize(textResults)
	symbolSummary := analytics.SummarizeSymbols(perPostSymbols)
	keywords := sentiment.ExtractKeywords(allText.String(), topKeywords)

	slog.Info("[Analyzer] Sentiment summary",
		slog.Int("total_posts", summary.TotalPosts),
		slog.Int("positive", summary.PositiveCount),
		slog.Int("negative", summary.NegativeCount),
		slog.Int("neutral", summary.NeutralCount),
		slog.Float64("avg_sentiment", summary.AvgSentiment),
		slog.Float64("sentiment_std", summary.SentimentStd))
	slog.Info("[Analyzer] Emoji summary",
		slog.Int("posts_with_emojis", symbolSummary.TotalPostsWithEmojis),
		slog.Int("distinct_emojis", len(symbolSummary.TopEmojis)))

	runModalityDemos(fuser)

	if *audioFile != "" {
		analyzeAudioFile(fuser, *audioFile)
	}

	writer := report.NewWriter(*reportDir)
	fullReport := map[string]any{
		"text_analysis_summary": summary,
		"emoji_analysis": map[string]any{
			"top_emojis":             symbolSummary.TopEmojis,
			"sentiment_distribution": symbolSummary.SentimentDistribution,
		},
		"results": textResults,
	}
	if _, err := writer.WriteFullReport("full_report", fullReport); err != nil {
		slog.Error("[Analyzer] Failed to write full report",
			slog.String("error", err.Error()))
	}
	if _, err := writer.WriteWordCounts(keywords); err != nil {
		slog.Error("[Analyzer] Failed to write word counts",
			slog.String("error", err.Error()))
	}
}

// analyzeAudioFile transcribes an audio file and fuses the transcript. A
// failed transcription degrades to an unknown result instead of aborting.
func analyzeAudioFile(fuser *sentiment.Fuser, path string) {
	unit := models.ContentUnit{
		ContentID: path,
		Modality:  models.ModalityAudio,
		FilePath:  path,
	}

	in := sentiment.AudioInput{}
	transcript, err := clients.GetOpenAIClient().TranscribeAudio(context.Background(), path)
	if err != nil {
		slog.Warn("[Analyzer] Transcription failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
		in.FeatureErr = err.Error()
	} else {
		in.Transcript = transcript
		in.TranscriptOK = true
	}

	fused := fuser.Fuse(unit, in)
	slog.Info("[Analyzer] Audio file analyzed",
		slog.String("path", path),
		slog.String("label", fused.Label))
}

// runModalityDemos fuses canned image, audio and video readings so a run
// exercises every modality even without media extractors attached.
func runModalityDemos(fuser *sentiment.Fuser) {
	imageUnit := models.ContentUnit{ContentID: "demo-image", Modality: models.ModalityImage}
	image := fuser.Fuse(imageUnit, sentiment.ImageInput{
		Colors: []sentiment.ColorShare{
			{Name: "yellow", Percentage: 45.0},
			{Name: "orange", Percentage: 25.0},
			{Name: "blue", Percentage: 12.0},
		},
		Brightness: 152.0,
	})
	brightness := sentiment.BrightnessFeature(152.0)
	slog.Info("[Analyzer] Image demo",
		slog.String("label", image.Label),
		slog.String(brightness.Name, brightness.Category))

	audioUnit := models.ContentUnit{ContentID: "demo-audio", Modality: models.ModalityAudio}
	audio := fuser.Fuse(audioUnit, sentiment.AudioInput{
		Features: &sentiment.AudioFeatures{
			VolumeRatio:      0.25,
			ZeroCrossingRate: 0.14,
		},
	})
	volume := sentiment.VolumeFeature(0.25)
	slog.Info("[Analyzer] Audio demo",
		slog.String("label", audio.Label),
		slog.String(volume.Name, volume.Category))

	videoUnit := models.ContentUnit{ContentID: "demo-video", Modality: models.ModalityVideo}
	video := fuser.Fuse(videoUnit, sentiment.VideoInput{
		Frames: []sentiment.ImageInput{
			{Colors: []sentiment.ColorShare{{Name: "red", Percentage: 60}}, Brightness: 140},
			{Colors: []sentiment.ColorShare{{Name: "blue", Percentage: 55}}, Brightness: 60},
			{Colors: []sentiment.ColorShare{{Name: "orange", Percentage: 50}}, Brightness: 135},
		},
		AvgMotion:     24.5,
		MotionSamples: 29,
	})

	activity := sentiment.ActivityFeature(24.5)
	slog.Info("[Analyzer] Video demo",
		slog.String("label", video.Label),
		slog.String(activity.Name, activity.Category),
		slog.String("energy_level", video.EnergyLevel))
}
