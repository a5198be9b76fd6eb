package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Modality tags the kind of payload a content unit carries.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityEmoji Modality = "emoji"
	ModalityImage Modality = "image"
	ModalityAudio Modality = "audio"
	ModalityVideo Modality = "video"
)

// ContentUnit is one social media post or an artifact derived from one
// (a key frame, an audio clip). Units are immutable once created and are
// owned by the caller.
type ContentUnit struct {
	ContentID string    `json:"content_id"`
	Modality  Modality  `json:"modality"`
	Text      string    `json:"text,omitempty"`
	FilePath  string    `json:"file_path,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Post is the raw ingestion shape: what the sample data files and the
// raw-posts Kafka topic carry.
type Post struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Older posts exports carry space-separated timestamps instead of RFC 3339.
const legacyTimeLayout = "2006-01-02 15:04:05"

// UnmarshalJSON accepts both the current shape and the older export
// format: ids may be JSON numbers, timestamps may use the legacy layout,
// and both fields may be absent.
func (p *Post) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        json.RawMessage `json:"id"`
		Text      string          `json:"text"`
		Timestamp string          `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Text = raw.Text

	if len(raw.ID) > 0 {
		var s string
		if err := json.Unmarshal(raw.ID, &s); err == nil {
			p.ID = s
		} else {
			var n json.Number
			if err := json.Unmarshal(raw.ID, &n); err != nil {
				return fmt.Errorf("post id must be a string or number, got %s", raw.ID)
			}
			p.ID = n.String()
		}
	}

	if raw.Timestamp == "" {
		p.Timestamp = time.Time{}
		return nil
	}
	ts, err := time.Parse(time.RFC3339, raw.Timestamp)
	if err != nil {
		ts, err = time.Parse(legacyTimeLayout, raw.Timestamp)
		if err != nil {
			return fmt.Errorf("unrecognized post timestamp %q", raw.Timestamp)
		}
	}
	p.Timestamp = ts
	return nil
}

// ToContentUnit converts an ingested post into a text content unit.
func (p Post) ToContentUnit() ContentUnit {
	return ContentUnit{
		ContentID: p.ID,
		Modality:  ModalityText,
		Text:      p.Text,
		Timestamp: p.Timestamp,
	}
}
