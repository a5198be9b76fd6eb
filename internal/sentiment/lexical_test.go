package sentiment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sentimeter/sentimeter/internal/models"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"positive threshold is inclusive", 0.05, models.LabelPositive},
		{"negative threshold is inclusive", -0.05, models.LabelNegative},
		{"just under positive threshold", 0.0499999, models.LabelNeutral},
		{"just above negative threshold", -0.0499999, models.LabelNeutral},
		{"zero", 0, models.LabelNeutral},
		{"strongly positive", 0.97, models.LabelPositive},
		{"strongly negative", -0.97, models.LabelNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.score))
		})
	}
}

func TestScoreSocialEmptyText(t *testing.T) {
	scorer := NewLexicalScorer()

	got := scorer.ScoreSocial("")
	assert.Zero(t, got.Compound)
	assert.Zero(t, got.Positive)
	assert.Zero(t, got.Negative)
	assert.Equal(t, 1.0, got.Neutral)
}

func TestScoreGeneralEmptyText(t *testing.T) {
	scorer := NewLexicalScorer()

	got := scorer.ScoreGeneral("")
	assert.Zero(t, got.Polarity)
	assert.Zero(t, got.Subjectivity)
}

func TestCombinedEmptyText(t *testing.T) {
	scorer := NewLexicalScorer()

	got := scorer.Combined("")
	assert.Zero(t, got.CombinedScore)
	assert.Equal(t, models.LabelNeutral, got.Label)
	assert.Zero(t, got.Confidence)
}

func TestCombinedWeighting(t *testing.T) {
	scorer := NewLexicalScorer()

	text := "I absolutely love this, it is amazing and wonderful!"
	social := scorer.ScoreSocial(text)
	general := scorer.ScoreGeneral(text)
	got := scorer.Combined(text)

	want := 0.6*social.Compound + 0.4*general.Polarity
	assert.InDelta(t, want, got.CombinedScore, 1e-12)
	assert.Equal(t, social.Compound, got.VaderScore)
	assert.Equal(t, general.Polarity, got.Polarity)
	assert.Equal(t, general.Subjectivity, got.Subjectivity)
	assert.Equal(t, math.Abs(got.CombinedScore), got.Confidence)
}

func TestCombinedPolarity(t *testing.T) {
	scorer := NewLexicalScorer()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"positive phrase", "What a fantastic product, I love it!", models.LabelPositive},
		{"negative phrase", "This is horrible, I hate it so much.", models.LabelNegative},
		{"neutral phrase", "The package arrived on a Tuesday.", models.LabelNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Combined(tt.text)
			assert.Equal(t, tt.want, got.Label)
			assert.Equal(t, tt.text, got.Text)
		})
	}
}
