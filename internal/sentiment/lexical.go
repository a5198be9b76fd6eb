package sentiment

import (
	"math"

	"github.com/jonreiter/govader"
	prose "github.com/tsawler/prose/v3"

	"github.com/sentimeter/sentimeter/internal/models"
)

// Classification thresholds shared by every scoring path in the system:
// the social score, the general score and the combined score all use the
// same cutoff pair. Not per-caller configuration.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// Fixed fusion weights for text. The social score dominates because VADER
// is tuned for informal social media language.
const (
	socialWeight  = 0.6
	generalWeight = 0.4
)

// Label classifies a score against the system-wide thresholds.
func Label(score float64) string {
	switch {
	case score >= PositiveThreshold:
		return models.LabelPositive
	case score <= NegativeThreshold:
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}

// LexicalScorer produces two independent polarity estimates for a text
// unit: a social-media-tuned compound score and a general-purpose
// polarity/subjectivity pair.
type LexicalScorer struct {
	vader   *govader.SentimentIntensityAnalyzer
	general *prose.SentimentAnalyzer
}

func NewLexicalScorer() *LexicalScorer {
	cfg := prose.DefaultSentimentConfig()
	cfg.UseML = false // lexicon-only keeps the general estimate deterministic

	return &LexicalScorer{
		vader:   govader.NewSentimentIntensityAnalyzer(),
		general: prose.NewSentimentAnalyzer(prose.English, cfg),
	}
}

// ScoreSocial runs the VADER estimator. Empty text yields a zero-valued
// neutral result rather than an error.
func (s *LexicalScorer) ScoreSocial(text string) models.SocialScore {
	if text == "" {
		return models.SocialScore{Neutral: 1}
	}

	scores := s.vader.PolarityScores(text)
	return models.SocialScore{
		Compound: scores.Compound,
		Positive: scores.Positive,
		Negative: scores.Negative,
		Neutral:  scores.Neutral,
	}
}

// ScoreGeneral runs the general-purpose polarity/subjectivity estimator.
// Empty or untokenizable text yields a zero-valued result.
func (s *LexicalScorer) ScoreGeneral(text string) models.GeneralScore {
	if text == "" {
		return models.GeneralScore{}
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return models.GeneralScore{}
	}

	score := s.general.AnalyzeDocument(doc)
	return models.GeneralScore{
		Polarity:     score.Polarity,
		Subjectivity: score.Subjectivity,
	}
}

// Combined fuses both estimates into the single score every text result in
// the system must reproduce: 0.6*compound + 0.4*polarity.
func (s *LexicalScorer) Combined(text string) models.ScoreResult {
	social := s.ScoreSocial(text)
	general := s.ScoreGeneral(text)

	combined := socialWeight*social.Compound + generalWeight*general.Polarity

	return models.ScoreResult{
		Text:          text,
		VaderScore:    social.Compound,
		Polarity:      general.Polarity,
		Subjectivity:  general.Subjectivity,
		CombinedScore: combined,
		Label:         Label(combined),
		Confidence:    math.Abs(combined),
	}
}
