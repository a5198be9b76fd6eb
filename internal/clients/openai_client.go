package clients

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	openAIRequestTimeout = 60 * time.Second
)

var (
	openAIClientInstance *OpenAIClient
	openAIOnce           sync.Once
)

// OpenAIClient wraps the Whisper transcription collaborator for the audio
// modality. Transcription failure is an expected outcome: callers fall back
// to acoustic-feature fusion.
type OpenAIClient struct {
	Client *openai.Client
}

func GetOpenAIClient() *OpenAIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		slog.Error("[OpenAIClient] Missing OPENAI_API_KEY in environment variables")
		panic("[OpenAIClient] Missing OPENAI_API_KEY in environment variables")
	}
	openAIOnce.Do(func() {
		config := openai.DefaultConfig(apiKey)
		config.HTTPClient = &http.Client{
			Timeout: openAIRequestTimeout,
		}

		openAIClientInstance = &OpenAIClient{
			Client: openai.NewClientWithConfig(config),
		}
		slog.Info("[OpenAIClient] OpenAI client initialized with custom HTTP timeout",
			slog.Duration("timeout", openAIRequestTimeout))
	})
	return openAIClientInstance
}

// TranscribeAudio converts an audio file to text. An empty transcript with
// a nil error means the service recognized no speech.
func (c *OpenAIClient) TranscribeAudio(ctx context.Context, audioPath string) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("[OpenAIClient] audio file not found: %s", audioPath)
	}

	resp, err := c.Client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
	})
	if err != nil {
		return "", fmt.Errorf("[OpenAIClient] transcription failed: %w", err)
	}

	return resp.Text, nil
}
