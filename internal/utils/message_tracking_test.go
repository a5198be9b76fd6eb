package utils

import (
	"testing"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageTrackingHandsBackOnce(t *testing.T) {
	msg := &kafka.Message{Value: []byte("payload")}
	TrackMessage("unit-1", msg)

	got, found := GetMessageForContent("unit-1")
	require.True(t, found)
	assert.Same(t, msg, got)

	_, found = GetMessageForContent("unit-1")
	assert.False(t, found)
}

func TestMessageTrackingUnknownContent(t *testing.T) {
	got, found := GetMessageForContent("never-tracked")
	assert.False(t, found)
	assert.Nil(t, got)
}
