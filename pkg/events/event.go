package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "DOCUMENT_STORED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the standard Event implementation.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Document lifecycle event codes.
const (
	TypeDocumentStored = "DOCUMENT_STORED"
	TypeDocumentFailed = "DOCUMENT_FAILED"
)

// DocumentStored is emitted when background ingestion finished and the
// document became queryable.
func DocumentStored(documentId uuid.UUID, filename string, chunkCount int) Event {
	return BaseEvent{
		Type: TypeDocumentStored,
		Data: map[string]interface{}{
			"document_id": documentId,
			"filename":    filename,
			"chunk_count": chunkCount,
		},
		OccurredAt: time.Now(),
	}
}

// DocumentFailed is emitted when background ingestion gave up on a document.
func DocumentFailed(documentId uuid.UUID, filename string, reason string) Event {
	return BaseEvent{
		Type: TypeDocumentFailed,
		Data: map[string]interface{}{
			"document_id": documentId,
			"filename":    filename,
			"reason":      reason,
		},
		OccurredAt: time.Now(),
	}
}
