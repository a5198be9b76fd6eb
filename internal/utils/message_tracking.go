package utils

import (
	"sync"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

// Offsets are committed only after a unit's results are stored, so every
// in-flight content ID keeps a handle to the Kafka message it arrived in.
var (
	trackedMu       sync.Mutex
	trackedMessages = make(map[string]*kafka.Message)
)

func TrackMessage(contentID string, msg *kafka.Message) {
	trackedMu.Lock()
	defer trackedMu.Unlock()
	trackedMessages[contentID] = msg
}

// GetMessageForContent hands the tracked message back exactly once; the
// entry is dropped on retrieval so a unit cannot be committed twice.
func GetMessageForContent(contentID string) (*kafka.Message, bool) {
	trackedMu.Lock()
	defer trackedMu.Unlock()

	msg, ok := trackedMessages[contentID]
	if !ok {
		return nil, false
	}
	delete(trackedMessages, contentID)
	return msg, true
}
