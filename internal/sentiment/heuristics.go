package sentiment

import "github.com/sentimeter/sentimeter/internal/models"

// Per-modality feature-to-category mappings. Each heuristic turns a numeric
// reading from an upstream extractor into a categorical label; reconciling
// those labels into a sentiment is the fuser's job, not this file's.

// colorMoodMap relates an approximate color name to a mood description.
var colorMoodMap = map[string]string{
	"red":    "energetic/passionate",
	"orange": "enthusiastic/warm",
	"yellow": "happy/optimistic",
	"green":  "calm/natural",
	"blue":   "trustworthy/calm",
	"purple": "creative/luxurious",
	"pink":   "romantic/playful",
	"black":  "sophisticated/serious",
	"white":  "clean/minimal",
	"gray":   "neutral/professional",
	"brown":  "earthy/reliable",
}

var (
	warmColors = glyphSet("red", "orange", "yellow", "pink")
	coolColors = glyphSet("blue", "green", "purple")
)

// ColorName maps an RGB triple to an approximate color name. The threshold
// chain is ordered: earlier rules win.
func ColorName(r, g, b uint8) string {
	switch {
	case r > 200 && g > 200 && b > 200:
		return "white"
	case r < 50 && g < 50 && b < 50:
		return "black"
	case r > 150 && g < 100 && b < 100:
		return "red"
	case r > 200 && g > 150 && b < 100:
		return "orange"
	case r > 200 && g > 200 && b < 100:
		return "yellow"
	case r < 100 && g > 150 && b < 100:
		return "green"
	case r < 100 && g < 100 && b > 150:
		return "blue"
	case r > 150 && g < 100 && b > 150:
		return "purple"
	case r > 200 && g > 100 && b > 150:
		return "pink"
	case r > 100 && r < 200 && g > 100 && g < 200 && b > 100 && b < 200:
		return "gray"
	case r > 150 && g > 100 && b < 80:
		return "brown"
	default:
		return "mixed"
	}
}

// ColorMood returns the mood for a color name, "undefined" when unmapped.
func ColorMood(name string) string {
	if mood, ok := colorMoodMap[name]; ok {
		return mood
	}
	return "undefined"
}

// IsWarmColor and IsCoolColor partition the named colors used by image
// fusion; names outside both groups contribute to neither share.
func IsWarmColor(name string) bool { _, ok := warmColors[name]; return ok }
func IsCoolColor(name string) bool { _, ok := coolColors[name]; return ok }

// BrightnessLevel bands a mean HSV value channel reading.
func BrightnessLevel(brightness float64) string {
	switch {
	case brightness > 170:
		return "very_bright"
	case brightness > 120:
		return "bright"
	case brightness > 80:
		return "moderate"
	case brightness > 40:
		return "dark"
	default:
		return "very_dark"
	}
}

// BrightnessMood suggests a mood from brightness alone.
func BrightnessMood(brightness float64) string {
	if brightness > 120 {
		return "positive/energetic"
	}
	return "moody/dramatic"
}

// VolumeLevel bands the RMS-to-max volume ratio of an audio clip.
func VolumeLevel(ratio float64) string {
	switch {
	case ratio > 0.3:
		return "loud"
	case ratio > 0.1:
		return "moderate"
	default:
		return "quiet"
	}
}

// EstimateTone maps zero-crossing rate and volume ratio to a tone category.
// Rule order matters: high-energy speech is checked before the loudness-only
// angry rule.
func EstimateTone(zcr, volumeRatio float64) string {
	switch {
	case zcr > 0.1 && volumeRatio > 0.2:
		return "excited/energetic"
	case zcr < 0.05 && volumeRatio < 0.1:
		return "calm/subdued"
	case volumeRatio > 0.3:
		return "assertive/angry"
	default:
		return "neutral/conversational"
	}
}

// Motion activity thresholds over mean frame difference.
const (
	highActivityThreshold     = 20.0
	moderateActivityThreshold = 8.0
)

// ActivityLevel bands the average motion score of a video.
func ActivityLevel(avgMotion float64) string {
	switch {
	case avgMotion > highActivityThreshold:
		return "high_activity"
	case avgMotion > moderateActivityThreshold:
		return "moderate_activity"
	default:
		return "low_activity"
	}
}

// BrightnessFeature, VolumeFeature and ActivityFeature pair a banded
// category with the raw reading it was derived from, for reports that
// surface both.
func BrightnessFeature(brightness float64) models.ModalityFeature {
	return models.ModalityFeature{
		Name:     "brightness_level",
		Category: BrightnessLevel(brightness),
		Value:    brightness,
	}
}

func VolumeFeature(ratio float64) models.ModalityFeature {
	return models.ModalityFeature{
		Name:     "volume_level",
		Category: VolumeLevel(ratio),
		Value:    ratio,
	}
}

func ActivityFeature(avgMotion float64) models.ModalityFeature {
	return models.ModalityFeature{
		Name:     "activity_level",
		Category: ActivityLevel(avgMotion),
		Value:    avgMotion,
	}
}

// EnergyLevel maps an activity category onto the energy axis reported
// alongside video sentiment. The two axes are never merged.
func EnergyLevel(activity string) string {
	switch activity {
	case "high_activity":
		return "high"
	case "low_activity":
		return "low"
	default:
		return "moderate"
	}
}
