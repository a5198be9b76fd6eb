package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorName(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    string
	}{
		{"white", 230, 230, 230, "white"},
		{"black", 20, 20, 20, "black"},
		{"red", 200, 50, 50, "red"},
		{"orange", 230, 160, 50, "orange"},
		{"yellow", 230, 230, 50, "yellow"},
		{"green", 50, 200, 50, "green"},
		{"blue", 50, 50, 200, "blue"},
		{"purple", 180, 50, 180, "purple"},
		{"pink", 230, 120, 180, "pink"},
		{"gray", 150, 150, 150, "gray"},
		{"brown", 180, 120, 60, "brown"},
		{"mixed fallback", 250, 30, 120, "mixed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ColorName(tt.r, tt.g, tt.b))
		})
	}
}

func TestColorNameRuleOrder(t *testing.T) {
	// 230/230/230 satisfies both the white and yellow conditions; the
	// earlier rule must win.
	assert.Equal(t, "white", ColorName(230, 230, 230))
}

func TestColorMood(t *testing.T) {
	assert.Equal(t, "happy/optimistic", ColorMood("yellow"))
	assert.Equal(t, "trustworthy/calm", ColorMood("blue"))
	assert.Equal(t, "undefined", ColorMood("mixed"))
	assert.Equal(t, "undefined", ColorMood(""))
}

func TestWarmCoolPartition(t *testing.T) {
	for _, name := range []string{"red", "orange", "yellow", "pink"} {
		assert.True(t, IsWarmColor(name), name)
		assert.False(t, IsCoolColor(name), name)
	}
	for _, name := range []string{"blue", "green", "purple"} {
		assert.True(t, IsCoolColor(name), name)
		assert.False(t, IsWarmColor(name), name)
	}
	for _, name := range []string{"white", "black", "gray", "brown", "mixed"} {
		assert.False(t, IsWarmColor(name), name)
		assert.False(t, IsCoolColor(name), name)
	}
}

func TestBrightnessLevel(t *testing.T) {
	tests := []struct {
		brightness float64
		want       string
	}{
		{200, "very_bright"},
		{170, "bright"},
		{121, "bright"},
		{120, "moderate"},
		{81, "moderate"},
		{80, "dark"},
		{41, "dark"},
		{40, "very_dark"},
		{0, "very_dark"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BrightnessLevel(tt.brightness), "brightness %.0f", tt.brightness)
	}
}

func TestBrightnessMood(t *testing.T) {
	assert.Equal(t, "positive/energetic", BrightnessMood(121))
	assert.Equal(t, "moody/dramatic", BrightnessMood(120))
	assert.Equal(t, "moody/dramatic", BrightnessMood(30))
}

func TestVolumeLevel(t *testing.T) {
	assert.Equal(t, "loud", VolumeLevel(0.31))
	assert.Equal(t, "moderate", VolumeLevel(0.3))
	assert.Equal(t, "moderate", VolumeLevel(0.11))
	assert.Equal(t, "quiet", VolumeLevel(0.1))
	assert.Equal(t, "quiet", VolumeLevel(0))
}

func TestEstimateTone(t *testing.T) {
	tests := []struct {
		name        string
		zcr, volume float64
		want        string
	}{
		{"high zcr and volume", 0.15, 0.25, "excited/energetic"},
		{"low zcr and volume", 0.03, 0.05, "calm/subdued"},
		{"loud but flat", 0.07, 0.35, "assertive/angry"},
		{"middle of the road", 0.07, 0.15, "neutral/conversational"},
		{"loud and busy hits the excited rule first", 0.15, 0.35, "excited/energetic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateTone(tt.zcr, tt.volume))
		})
	}
}

func TestActivityLevel(t *testing.T) {
	assert.Equal(t, "high_activity", ActivityLevel(20.5))
	assert.Equal(t, "moderate_activity", ActivityLevel(20))
	assert.Equal(t, "moderate_activity", ActivityLevel(8.5))
	assert.Equal(t, "low_activity", ActivityLevel(8))
	assert.Equal(t, "low_activity", ActivityLevel(0))
}

func TestModalityFeatures(t *testing.T) {
	brightness := BrightnessFeature(152)
	assert.Equal(t, "brightness_level", brightness.Name)
	assert.Equal(t, "bright", brightness.Category)
	assert.Equal(t, 152.0, brightness.Value)

	volume := VolumeFeature(0.25)
	assert.Equal(t, "volume_level", volume.Name)
	assert.Equal(t, "moderate", volume.Category)
	assert.Equal(t, 0.25, volume.Value)

	activity := ActivityFeature(24.5)
	assert.Equal(t, "activity_level", activity.Name)
	assert.Equal(t, "high_activity", activity.Category)
	assert.Equal(t, 24.5, activity.Value)
}

func TestEnergyLevel(t *testing.T) {
	assert.Equal(t, "high", EnergyLevel("high_activity"))
	assert.Equal(t, "moderate", EnergyLevel("moderate_activity"))
	assert.Equal(t, "low", EnergyLevel("low_activity"))
}
