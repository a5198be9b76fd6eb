package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentimeter/sentimeter/internal/models"
)

func textUnit(id, text string) models.ContentUnit {
	return models.ContentUnit{ContentID: id, Modality: models.ModalityText, Text: text}
}

func TestFuseText(t *testing.T) {
	fuser := NewFuser()

	unit := textUnit("p1", "I love this, it is wonderful!")
	fused := fuser.Fuse(unit, TextInput{Text: unit.Text})

	assert.Equal(t, "p1", fused.ContentID)
	assert.Equal(t, models.ModalityText, fused.Modality)
	assert.Equal(t, models.LabelPositive, fused.Label)
	require.True(t, fused.HasScore())
	assert.Greater(t, *fused.Score, 0.0)
	require.NotNil(t, fused.Confidence)
	assert.Equal(t, *fused.Score, *fused.Confidence)
	assert.Empty(t, fused.Error)
}

func TestFuseSymbolic(t *testing.T) {
	fuser := NewFuser()
	unit := models.ContentUnit{ContentID: "p1", Modality: models.ModalityEmoji}

	tests := []struct {
		name      string
		matches   []models.SymbolicMatch
		wantLabel string
		wantScore float64
	}{
		{"no matches", nil, models.CategoryNoEmoji, 0},
		{
			"mostly positive",
			[]models.SymbolicMatch{
				{Sentiment: models.CategoryPositive},
				{Sentiment: models.CategoryPositive},
				{Sentiment: models.CategoryNegative},
			},
			models.CategoryPositive, 1.0 / 3.0,
		},
		{
			"mostly negative",
			[]models.SymbolicMatch{
				{Sentiment: models.CategoryNegative},
				{Sentiment: models.CategoryNegative},
				{Sentiment: models.CategoryPositive},
			},
			models.CategoryNegative, -1.0 / 3.0,
		},
		{
			"balanced is neutral",
			[]models.SymbolicMatch{
				{Sentiment: models.CategoryPositive},
				{Sentiment: models.CategoryNegative},
			},
			models.CategoryNeutral, 0,
		},
		{
			"score inside the neutral band",
			[]models.SymbolicMatch{
				{Sentiment: models.CategoryPositive},
				{Sentiment: models.CategoryNeutral},
				{Sentiment: models.CategoryNeutral},
				{Sentiment: models.CategoryNeutral},
				{Sentiment: models.CategoryNeutral},
				{Sentiment: models.CategoryNeutral},
				{Sentiment: models.CategoryNeutral},
				{Sentiment: models.CategoryNeutral},
				{Sentiment: models.CategoryNeutral},
				{Sentiment: models.CategoryNeutral},
			},
			models.CategoryNeutral, 0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fused := fuser.Fuse(unit, SymbolicInput{Matches: tt.matches})

			assert.Equal(t, models.ModalityEmoji, fused.Modality)
			assert.Equal(t, tt.wantLabel, fused.Label)
			require.True(t, fused.HasScore())
			assert.InDelta(t, tt.wantScore, *fused.Score, 1e-12)
		})
	}
}

func TestImageLabel(t *testing.T) {
	tests := []struct {
		name string
		in   ImageInput
		want string
	}{
		{
			"warm and bright is positive",
			ImageInput{
				Colors: []ColorShare{
					{Name: "yellow", Percentage: 70},
					{Name: "blue", Percentage: 10},
				},
				Brightness: 150,
			},
			models.CategoryPositive,
		},
		{
			"cool and dark is negative",
			ImageInput{
				Colors: []ColorShare{
					{Name: "blue", Percentage: 60},
					{Name: "red", Percentage: 10},
				},
				Brightness: 60,
			},
			models.CategoryNegative,
		},
		{
			"warm but dark is neutral",
			ImageInput{
				Colors:     []ColorShare{{Name: "orange", Percentage: 80}},
				Brightness: 70,
			},
			models.CategoryNeutral,
		},
		{
			"cool but bright is neutral",
			ImageInput{
				Colors:     []ColorShare{{Name: "green", Percentage: 80}},
				Brightness: 150,
			},
			models.CategoryNeutral,
		},
		{
			"brightness exactly at the gate is neutral",
			ImageInput{
				Colors:     []ColorShare{{Name: "red", Percentage: 80}},
				Brightness: 120,
			},
			models.CategoryNeutral,
		},
		{
			"unnamed colors count as neither warm nor cool",
			ImageInput{
				Colors: []ColorShare{
					{Name: "gray", Percentage: 90},
					{Name: "mixed", Percentage: 10},
				},
				Brightness: 150,
			},
			models.CategoryNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ImageLabel(tt.in))
		})
	}
}

func TestFuseImageError(t *testing.T) {
	fuser := NewFuser()
	unit := models.ContentUnit{ContentID: "img1", Modality: models.ModalityImage}

	fused := fuser.Fuse(unit, ImageInput{Err: "failed to decode image"})

	assert.Equal(t, models.CategoryUnknown, fused.Label)
	assert.Equal(t, "failed to decode image", fused.Error)
	assert.False(t, fused.HasScore())
}

func TestFuseAudio(t *testing.T) {
	fuser := NewFuser()
	unit := models.ContentUnit{ContentID: "a1", Modality: models.ModalityAudio}

	t.Run("transcript takes precedence over features", func(t *testing.T) {
		fused := fuser.Fuse(unit, AudioInput{
			Transcript:   "This is absolutely fantastic, I love it!",
			TranscriptOK: true,
			Features:     &AudioFeatures{Tone: "assertive/angry"},
		})

		assert.Equal(t, models.ModalityAudio, fused.Modality)
		assert.Equal(t, models.LabelPositive, fused.Label)
		require.True(t, fused.HasScore())
	})

	t.Run("excited tone is positive", func(t *testing.T) {
		fused := fuser.Fuse(unit, AudioInput{
			Features: &AudioFeatures{Tone: "excited/energetic"},
		})
		assert.Equal(t, models.CategoryPositive, fused.Label)
		assert.False(t, fused.HasScore())
	})

	t.Run("angry tone is negative", func(t *testing.T) {
		fused := fuser.Fuse(unit, AudioInput{
			Features: &AudioFeatures{Tone: "assertive/angry"},
		})
		assert.Equal(t, models.CategoryNegative, fused.Label)
	})

	t.Run("calm tone is neutral", func(t *testing.T) {
		fused := fuser.Fuse(unit, AudioInput{
			Features: &AudioFeatures{Tone: "calm/subdued"},
		})
		assert.Equal(t, models.CategoryNeutral, fused.Label)
	})

	t.Run("missing tone is derived from the raw readings", func(t *testing.T) {
		fused := fuser.Fuse(unit, AudioInput{
			Features: &AudioFeatures{VolumeRatio: 0.25, ZeroCrossingRate: 0.14},
		})
		assert.Equal(t, models.CategoryPositive, fused.Label)
	})

	t.Run("feature error degrades to unknown", func(t *testing.T) {
		fused := fuser.Fuse(unit, AudioInput{FeatureErr: "unsupported codec"})

		assert.Equal(t, models.CategoryUnknown, fused.Label)
		assert.Equal(t, "unsupported codec", fused.Error)
	})

	t.Run("nil features degrade to unknown", func(t *testing.T) {
		fused := fuser.Fuse(unit, AudioInput{})

		assert.Equal(t, models.CategoryUnknown, fused.Label)
		assert.NotEmpty(t, fused.Error)
	})
}

func TestDominantLabel(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   string
	}{
		{"no frames", nil, models.CategoryUnknown},
		{
			"clear majority",
			[]string{
				models.CategoryPositive,
				models.CategoryNegative,
				models.CategoryPositive,
			},
			models.CategoryPositive,
		},
		{
			"tie resolves to the first label seen",
			[]string{
				models.CategoryNegative,
				models.CategoryPositive,
				models.CategoryNegative,
				models.CategoryPositive,
			},
			models.CategoryNegative,
		},
		{"single frame", []string{models.CategoryNeutral}, models.CategoryNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DominantLabel(tt.labels))
		})
	}
}

func TestFuseVideo(t *testing.T) {
	fuser := NewFuser()
	unit := models.ContentUnit{ContentID: "v1", Modality: models.ModalityVideo}

	warmBright := ImageInput{
		Colors:     []ColorShare{{Name: "red", Percentage: 70}},
		Brightness: 150,
	}
	coolDark := ImageInput{
		Colors:     []ColorShare{{Name: "blue", Percentage: 70}},
		Brightness: 50,
	}

	t.Run("majority vote over frames plus energy", func(t *testing.T) {
		fused := fuser.Fuse(unit, VideoInput{
			Frames:        []ImageInput{warmBright, coolDark, warmBright},
			AvgMotion:     25,
			MotionSamples: 29,
		})

		assert.Equal(t, models.CategoryPositive, fused.Label)
		assert.Equal(t, "high", fused.EnergyLevel)
		assert.False(t, fused.HasScore())
	})

	t.Run("failed frames are skipped", func(t *testing.T) {
		fused := fuser.Fuse(unit, VideoInput{
			Frames: []ImageInput{
				{Err: "corrupt frame"},
				coolDark,
			},
			AvgMotion:     5,
			MotionSamples: 10,
		})

		assert.Equal(t, models.CategoryNegative, fused.Label)
		assert.Equal(t, "low", fused.EnergyLevel)
	})

	t.Run("zero usable frames is unknown, not a tie", func(t *testing.T) {
		fused := fuser.Fuse(unit, VideoInput{
			Frames:        []ImageInput{{Err: "corrupt frame"}},
			AvgMotion:     10,
			MotionSamples: 10,
		})

		assert.Equal(t, models.CategoryUnknown, fused.Label)
		assert.Equal(t, "moderate", fused.EnergyLevel)
	})

	t.Run("unmeasured motion reports moderate energy, not low", func(t *testing.T) {
		// No motion samples is distinct from an average of zero.
		fused := fuser.Fuse(unit, VideoInput{
			Frames:        []ImageInput{warmBright},
			AvgMotion:     0,
			MotionSamples: 0,
		})

		assert.Equal(t, models.CategoryPositive, fused.Label)
		assert.Equal(t, "moderate", fused.EnergyLevel)
	})

	t.Run("measured zero motion is low energy", func(t *testing.T) {
		fused := fuser.Fuse(unit, VideoInput{
			Frames:        []ImageInput{warmBright},
			AvgMotion:     0,
			MotionSamples: 12,
		})

		assert.Equal(t, "low", fused.EnergyLevel)
	})

	t.Run("extraction error degrades to unknown", func(t *testing.T) {
		fused := fuser.Fuse(unit, VideoInput{Err: "failed to open video"})

		assert.Equal(t, models.CategoryUnknown, fused.Label)
		assert.Equal(t, "failed to open video", fused.Error)
		assert.Empty(t, fused.EnergyLevel)
	})
}
