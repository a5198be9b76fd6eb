package sentiment

import (
	"strings"

	"github.com/sentimeter/sentimeter/internal/models"
)

// Symbolic fusion uses a wider band than text (0.1 vs 0.05) on purpose:
// emoji counts are discrete and noisier than lexical scores.
const (
	symbolicPositiveThreshold = 0.1
	symbolicNegativeThreshold = -0.1
)

// Image fusion brightness gates.
const (
	brightImageThreshold = 120.0
	darkImageThreshold   = 80.0
)

// Input is the tagged variant the fuser decides over. Each variant carries
// the feature shape its modality needs; upstream extractors fill them in.
type Input interface {
	modality() models.Modality
}

// TextInput fuses lexical scores of a text unit.
type TextInput struct {
	Text string
}

// SymbolicInput fuses emoji/emoticon matches already extracted from a unit.
type SymbolicInput struct {
	Matches []models.SymbolicMatch
}

// ColorShare is one dominant color with its pixel share percentage.
type ColorShare struct {
	Name       string  `json:"color_name"`
	Percentage float64 `json:"percentage"`
}

// ImageInput fuses dominant color shares and mean brightness of an image.
// Err carries an upstream decode failure; it degrades, never raises.
type ImageInput struct {
	Colors     []ColorShare
	Brightness float64
	Err        string
}

// AudioFeatures is the acoustic reading an external extractor produced.
type AudioFeatures struct {
	VolumeRatio      float64 `json:"volume_ratio"`
	ZeroCrossingRate float64 `json:"zero_crossing_rate"`
	Tone             string  `json:"estimated_tone"`
}

// AudioInput fuses an audio unit. When a transcript is available the fusion
// delegates entirely to text fusion; acoustic features are the fallback.
type AudioInput struct {
	Transcript   string
	TranscriptOK bool
	Features     *AudioFeatures
	FeatureErr   string
}

// VideoInput fuses per-frame visual readings plus a motion summary.
// MotionSamples is the number of frame-difference readings behind
// AvgMotion; zero samples means motion could not be measured, which is
// distinct from measuring an average of zero.
type VideoInput struct {
	Frames        []ImageInput
	AvgMotion     float64
	MotionSamples int
	Err           string
}

func (TextInput) modality() models.Modality     { return models.ModalityText }
func (SymbolicInput) modality() models.Modality { return models.ModalityEmoji }
func (ImageInput) modality() models.Modality    { return models.ModalityImage }
func (AudioInput) modality() models.Modality    { return models.ModalityAudio }
func (VideoInput) modality() models.Modality    { return models.ModalityVideo }

// Fuser combines per-modality signals into one sentiment per content unit.
// It never panics: missing or failed upstream features degrade to a result
// carrying an error string.
type Fuser struct {
	lexical *LexicalScorer
}

func NewFuser() *Fuser {
	return &Fuser{lexical: NewLexicalScorer()}
}

// Lexical exposes the underlying scorer for callers that need the raw
// ScoreResult alongside the fused record.
func (f *Fuser) Lexical() *LexicalScorer { return f.lexical }

// Fuse produces one FusedSentiment for a content unit from the given
// modality input.
func (f *Fuser) Fuse(unit models.ContentUnit, in Input) models.FusedSentiment {
	switch v := in.(type) {
	case TextInput:
		return f.fuseText(unit, v.Text)
	case SymbolicInput:
		return fuseSymbolic(unit, v.Matches)
	case ImageInput:
		return fuseImage(unit, v)
	case AudioInput:
		return f.fuseAudio(unit, v)
	case VideoInput:
		return f.fuseVideo(unit, v)
	default:
		return models.FusedSentiment{
			ContentID: unit.ContentID,
			Modality:  unit.Modality,
			Label:     models.CategoryUnknown,
			Error:     "unsupported modality input",
		}
	}
}

func (f *Fuser) fuseText(unit models.ContentUnit, text string) models.FusedSentiment {
	result := f.lexical.Combined(text)

	score := result.CombinedScore
	confidence := result.Confidence
	return models.FusedSentiment{
		ContentID:  unit.ContentID,
		Modality:   models.ModalityText,
		Text:       text,
		Label:      result.Label,
		Score:      &score,
		Confidence: &confidence,
	}
}

// SymbolicScore computes (positive - negative) / total over the matches.
// Zero matches yield score 0; the caller distinguishes that case with the
// no_emoji label.
func SymbolicScore(matches []models.SymbolicMatch) (score float64, total int) {
	var pos, neg int
	for _, m := range matches {
		switch m.Sentiment {
		case models.CategoryPositive:
			pos++
		case models.CategoryNegative:
			neg++
		}
	}
	total = len(matches)
	if total == 0 {
		return 0, 0
	}
	return float64(pos-neg) / float64(total), total
}

func fuseSymbolic(unit models.ContentUnit, matches []models.SymbolicMatch) models.FusedSentiment {
	score, total := SymbolicScore(matches)

	var label string
	switch {
	case total == 0:
		label = models.CategoryNoEmoji
	case score > symbolicPositiveThreshold:
		label = models.CategoryPositive
	case score < symbolicNegativeThreshold:
		label = models.CategoryNegative
	default:
		label = models.CategoryNeutral
	}

	confidence := score
	if confidence < 0 {
		confidence = -confidence
	}
	return models.FusedSentiment{
		ContentID:  unit.ContentID,
		Modality:   models.ModalityEmoji,
		Label:      label,
		Score:      &score,
		Confidence: &confidence,
	}
}

// ImageLabel decides the categorical image sentiment from warm/cool color
// shares and brightness. No numeric score exists for this modality.
func ImageLabel(in ImageInput) string {
	var warm, cool float64
	for _, c := range in.Colors {
		switch {
		case IsWarmColor(c.Name):
			warm += c.Percentage
		case IsCoolColor(c.Name):
			cool += c.Percentage
		}
	}

	switch {
	case warm > cool && in.Brightness > brightImageThreshold:
		return models.CategoryPositive
	case cool > warm && in.Brightness < darkImageThreshold:
		return models.CategoryNegative
	default:
		return models.CategoryNeutral
	}
}

func fuseImage(unit models.ContentUnit, in ImageInput) models.FusedSentiment {
	if in.Err != "" {
		return models.FusedSentiment{
			ContentID: unit.ContentID,
			Modality:  models.ModalityImage,
			Label:     models.CategoryUnknown,
			Error:     in.Err,
		}
	}

	return models.FusedSentiment{
		ContentID: unit.ContentID,
		Modality:  models.ModalityImage,
		Label:     ImageLabel(in),
	}
}

func (f *Fuser) fuseAudio(unit models.ContentUnit, in AudioInput) models.FusedSentiment {
	// Transcript-first: a successful transcription makes this a text problem.
	if in.TranscriptOK {
		fused := f.fuseText(unit, in.Transcript)
		fused.Modality = models.ModalityAudio
		return fused
	}

	if in.FeatureErr != "" || in.Features == nil {
		errMsg := in.FeatureErr
		if errMsg == "" {
			errMsg = "audio features unavailable"
		}
		return models.FusedSentiment{
			ContentID: unit.ContentID,
			Modality:  models.ModalityAudio,
			Label:     models.CategoryUnknown,
			Error:     errMsg,
		}
	}

	tone := in.Features.Tone
	if tone == "" {
		tone = EstimateTone(in.Features.ZeroCrossingRate, in.Features.VolumeRatio)
	}

	var label string
	switch {
	case strings.Contains(tone, "excited") || strings.Contains(tone, "energetic"):
		label = models.CategoryPositive
	case strings.Contains(tone, "angry"):
		label = models.CategoryNegative
	default:
		label = models.CategoryNeutral
	}

	return models.FusedSentiment{
		ContentID: unit.ContentID,
		Modality:  models.ModalityAudio,
		Label:     label,
	}
}

// DominantLabel runs the majority vote over frame labels. Ties resolve to
// the first label reaching the maximum count in extraction order; zero
// frames yield unknown, which is distinct from a tie.
func DominantLabel(frameLabels []string) string {
	if len(frameLabels) == 0 {
		return models.CategoryUnknown
	}

	counts := make(map[string]int, len(frameLabels))
	var order []string
	for _, label := range frameLabels {
		if counts[label] == 0 {
			order = append(order, label)
		}
		counts[label]++
	}

	dominant := order[0]
	for _, label := range order[1:] {
		if counts[label] > counts[dominant] {
			dominant = label
		}
	}
	return dominant
}

func (f *Fuser) fuseVideo(unit models.ContentUnit, in VideoInput) models.FusedSentiment {
	if in.Err != "" {
		return models.FusedSentiment{
			ContentID: unit.ContentID,
			Modality:  models.ModalityVideo,
			Label:     models.CategoryUnknown,
			Error:     in.Err,
		}
	}

	frameLabels := make([]string, 0, len(in.Frames))
	for _, frame := range in.Frames {
		if frame.Err != "" {
			continue
		}
		frameLabels = append(frameLabels, ImageLabel(frame))
	}

	activity := "unknown"
	if in.MotionSamples > 0 {
		activity = ActivityLevel(in.AvgMotion)
	}

	return models.FusedSentiment{
		ContentID:   unit.ContentID,
		Modality:    models.ModalityVideo,
		Label:       DominantLabel(frameLabels),
		EnergyLevel: EnergyLevel(activity),
	}
}
