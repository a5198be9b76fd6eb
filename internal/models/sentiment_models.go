package models

// Labels produced by the lexical scorer and text fusion.
const (
	LabelPositive = "Positive"
	LabelNegative = "Negative"
	LabelNeutral  = "Neutral"
)

// Categorical outcomes produced by the non-text modalities. These are a
// separate vocabulary from the text labels on purpose: downstream report
// consumers rely on the exact casing.
const (
	CategoryPositive = "positive"
	CategoryNegative = "negative"
	CategoryNeutral  = "neutral"
	CategoryNoEmoji  = "no_emoji"
	CategoryUnknown  = "unknown"
)

// SocialScore is the social-media-tuned lexical estimate (VADER).
type SocialScore struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// GeneralScore is the general-purpose polarity/subjectivity estimate.
type GeneralScore struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// ScoreResult is the lexical scorer's combined output for one text unit.
// CombinedScore = 0.6*VaderScore + 0.4*Polarity; Label is always derived
// from the combined score, never from either raw score alone.
type ScoreResult struct {
	Text          string  `json:"text"`
	VaderScore    float64 `json:"vader_score"`
	Polarity      float64 `json:"textblob_polarity"`
	Subjectivity  float64 `json:"textblob_subjectivity"`
	CombinedScore float64 `json:"combined_score"`
	Label         string  `json:"label"`
	Confidence    float64 `json:"confidence"`
}

// SymbolicMatch is one emoji or emoticon occurrence.
type SymbolicMatch struct {
	Glyph     string `json:"glyph"`
	Name      string `json:"name,omitempty"`
	Sentiment string `json:"sentiment"`
}

// ModalityFeature is a categorical reading for one modality together with
// the numeric value it was derived from.
type ModalityFeature struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// FusedSentiment is the unit of output: one sentiment decision per content
// unit. Score and Confidence are nil for category-only modalities (image,
// tone-fallback audio, video). A degraded analysis carries Error and never
// aborts the batch.
type FusedSentiment struct {
	ContentID   string   `json:"content_id"`
	Modality    Modality `json:"modality"`
	Text        string   `json:"text,omitempty"`
	Label       string   `json:"label"`
	Score       *float64 `json:"combined_score"`
	Confidence  *float64 `json:"confidence"`
	EnergyLevel string   `json:"energy_level,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// HasScore reports whether this result carries a numeric channel.
func (f FusedSentiment) HasScore() bool {
	return f.Score != nil && f.Error == ""
}
